package seqfile

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// numericVerb matches a printf-style integer conversion with an optional
// width, e.g. "%d", "%08d", "%4d". Flags other than zero padding are
// rejected: the pattern must be consumable by both Sprintf and Sscanf, and
// fmt's scanner does not implement them.
var numericVerb = regexp.MustCompile(`%[0-9]*d`)

// validatePattern checks that pattern carries exactly one integer verb and no
// other conversions, so it can be used symmetrically with Sprintf and Sscanf.
func validatePattern(pattern string) error {
	stripped := strings.ReplaceAll(pattern, "%%", "")
	if strings.Count(stripped, "%") != 1 || len(numericVerb.FindAllString(stripped, -1)) != 1 {
		return fmt.Errorf("%w: %q must contain exactly one integer verb", ErrBadPattern, pattern)
	}
	return nil
}

// NameWithOptionalExt joins name and ext with a dot. The dot is only added
// when ext is non-empty.
func NameWithOptionalExt(name, ext string) string {
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// NameForNum renders fileNum through the configured pattern, appending the
// configured extension when one is set.
func (q *Queue) NameForNum(fileNum int) string {
	return q.nameWithExt(fileNum, q.ext)
}

// NameForNumExt is NameForNum with the extension overridden, used when a
// queue entry spans multiple files per number (a data file plus a .sha1
// hash, for example). An empty override suppresses the extension entirely.
func (q *Queue) NameForNumExt(fileNum int, overrideExt string) string {
	return q.nameWithExt(fileNum, strings.TrimPrefix(overrideExt, "."))
}

// PathForNum returns the full path of fileNum's file inside the queue
// directory.
func (q *Queue) PathForNum(fileNum int) string {
	return filepath.Join(q.dirPath, q.NameForNum(fileNum))
}

// PathForNumExt is PathForNum with the extension overridden.
func (q *Queue) PathForNumExt(fileNum int, overrideExt string) string {
	return filepath.Join(q.dirPath, q.NameForNumExt(fileNum, overrideExt))
}

func (q *Queue) nameWithExt(fileNum int, ext string) string {
	return NameWithOptionalExt(fmt.Sprintf(q.pattern, fileNum), ext)
}

// parseName reports the file number encoded in name. A name matches the
// queue only if the pattern yields exactly one positive integer and, when an
// extension is configured, the name ends with it.
func (q *Queue) parseName(name string) (int, bool) {
	if q.ext != "" && !strings.HasSuffix(name, "."+q.ext) {
		return 0, false
	}
	return q.parseNum(name)
}

// parseNum parses a file number from name using the pattern alone, ignoring
// any extension filter. Zero and negative numbers never match: zero is the
// empty sentinel and is never allocated.
func (q *Queue) parseNum(name string) (int, bool) {
	var fileNum int
	if n, err := fmt.Sscanf(name, q.pattern, &fileNum); err != nil || n != 1 {
		return 0, false
	}
	if fileNum <= 0 {
		return 0, false
	}
	return fileNum, true
}
