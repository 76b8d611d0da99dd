package seqfile

import (
	"errors"
	"fmt"
	"os"
)

// maxPathLen bounds the paths produced by recursive walks. Deliberately
// smaller than the 4096 bytes some platforms advertise so paths fit the
// constrained buffers of embedded targets this queue layout originated on.
const maxPathLen = 255

// entryFunc is invoked once per entry during a recursive walk, always after
// the enclosing directory handle has been closed. Returning false stops the
// walk. Deleting the entry from inside the callback is safe.
type entryFunc func(path string, isDir bool) bool

// findLeafEntry walks the tree rooted at dirPath depth-first.
//
// With a nil fn it returns the first removable leaf it finds: a file, or a
// directory that turned out to be empty. With a non-nil fn it instead invokes
// fn for every entry and returns errNotFound once the tree is exhausted (or
// nil if fn stopped the walk).
//
// The listing for each directory is snapshotted and the handle closed before
// any recursion or callback runs. Filesystems that corrupt iteration when
// entries are unlinked mid-walk (littlefs and some embedded FAT stacks) never
// observe a mutation while a handle is open. Callers that delete entries must
// re-walk afterwards rather than reuse results.
func findLeafEntry(dirPath string, fn entryFunc) (string, error) {
	dir, err := os.Open(dirPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", dirPath, err)
	}
	entries, readErr := dir.ReadDir(-1)
	closeErr := dir.Close()
	if readErr != nil {
		return "", fmt.Errorf("read %s: %w", dirPath, readErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("close %s: %w", dirPath, closeErr)
	}

	for _, ent := range entries {
		path := dirPath + "/" + ent.Name()
		if len(path) > maxPathLen {
			return "", fmt.Errorf("%w: %s", ErrPathTooLong, path)
		}
		if ent.IsDir() {
			leaf, err := findLeafEntry(path, fn)
			if err == nil {
				// Leaf found below, or fn stopped the walk.
				return leaf, nil
			}
			if !errors.Is(err, errNotFound) {
				return "", err
			}
			if fn == nil {
				// The subtree is empty, so the directory itself is the
				// removable leaf.
				return path, nil
			}
			if !fn(path, true) {
				return "", nil
			}
			continue
		}
		if fn == nil {
			return path, nil
		}
		if !fn(path, false) {
			return "", nil
		}
	}
	return "", errNotFound
}
