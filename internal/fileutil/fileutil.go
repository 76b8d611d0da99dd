// Package fileutil provides filesystem helpers shared by the seqq tool and
// the queue engine's callers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

// WriteFileAtomic writes data to path by staging it in a uniquely named
// temporary file in the same directory and renaming it into place. A reader
// (or a later directory scan) either sees the complete file under its final
// name or nothing; a crash mid-write leaves only a stray ".tmp-" file that
// never matches a queue filename pattern.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, ".tmp-"+uuid.NewString())

	if err := os.WriteFile(tmp, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// FreeSpace returns the number of bytes available to unprivileged callers on
// the filesystem holding path.
func FreeSpace(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, fmt.Errorf("statfs %s: %w", path, err)
	}
	return stat.Bavail * uint64(stat.Bsize), nil
}
