package seqfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"seqq/internal/logging"
)

// RemoveNum deletes fileNum's file (or files) from disk. The in-memory queue
// is not touched; callers typically remove the number with Next first.
//
// With allExtensions false only the single path derived from the configured
// extension is unlinked; a missing file is logged and ignored. With
// allExtensions true the whole tree is walked and every file whose base name
// parses to fileNum is removed regardless of extension, which also catches
// companion files like hashes or metadata sharing the number.
func (q *Queue) RemoveNum(fileNum int, allExtensions bool) error {
	if !allExtensions {
		path := q.PathForNum(fileNum)
		if err := os.Remove(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				q.log.Warn("failed to remove queue file", "path", path, logging.Error(err))
			}
			return nil
		}
		q.log.Debug("removed queue file", "path", path)
		return nil
	}

	if len(q.dirPath) <= 1 {
		return ErrNotConfigured
	}
	if len(q.dirPath) > maxPathLen {
		return fmt.Errorf("%w: %s", ErrPathTooLong, q.dirPath)
	}

	_, err := findLeafEntry(q.dirPath, func(path string, isDir bool) bool {
		if isDir {
			return true
		}
		num, ok := q.parseNum(filepath.Base(path))
		if !ok || num != fileNum {
			return true
		}
		if err := os.Remove(path); err != nil {
			q.log.Warn("failed to remove queue file", "path", path, logging.Error(err))
		} else {
			q.log.Debug("removed queue file", "path", path)
		}
		return true
	})
	if err != nil && !errors.Is(err, errNotFound) {
		return err
	}
	return nil
}

// RemoveAll deletes every file under the queue directory, matching the
// pattern or not, then resets the queue to its unscanned state so the next
// operation rescans. With removeDir set the emptied directory itself is
// removed as well (ignored if it is non-empty or already gone).
//
// The deletion loop asks the walker for a single leaf, removes it, and
// re-walks from the top, so no directory handle is ever held across a
// mutation. Empty subdirectories are returned as leaves and removed the same
// way, which empties arbitrarily deep trees.
func (q *Queue) RemoveAll(removeDir bool) error {
	if len(q.dirPath) <= 1 {
		q.log.Error("queue directory not configured", "dir", q.dirPath)
		return ErrNotConfigured
	}
	if len(q.dirPath) > maxPathLen {
		return fmt.Errorf("%w: %s", ErrPathTooLong, q.dirPath)
	}

	lastFailed := ""
	for {
		leaf, err := findLeafEntry(q.dirPath, nil)
		if errors.Is(err, errNotFound) || errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return err
		}
		if err := os.Remove(leaf); err != nil {
			q.log.Warn("failed to remove entry", "path", leaf, logging.Error(err))
			if leaf == lastFailed {
				// The walker will keep returning the same undeletable leaf;
				// give up instead of spinning.
				return fmt.Errorf("remove %s: %w", leaf, err)
			}
			lastFailed = leaf
			continue
		}
		q.log.Debug("removed entry", "path", leaf)
	}

	q.mu.Lock()
	q.pending = nil
	q.lastFileNum = 0
	q.scanCompleted = false
	q.mu.Unlock()

	if removeDir {
		if err := os.Remove(q.dirPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			q.log.Debug("queue directory not removed", "dir", q.dirPath, logging.Error(err))
		}
	}
	return nil
}
