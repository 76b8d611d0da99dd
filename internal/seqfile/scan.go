package seqfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// ScanDir rebuilds the in-memory queue and the high-water mark from the
// directory listing. The directory is created if absent. Subdirectories and
// names that do not parse through the pattern (or whose extension does not
// match) are ignored. Candidates pass through the admission hook, which runs
// before the queue mutex is taken.
//
// Entries are appended in the order os.ReadDir yields them, which is lexical
// filename order; for zero-padded patterns that coincides with numeric order.
//
// ScanDir runs automatically before the first queue operation; calling it
// again reconciles the mirror with disk, replacing the pending entries.
func (q *Queue) ScanDir() error {
	q.scanMu.Lock()
	defer q.scanMu.Unlock()
	return q.scanDirLocked()
}

func (q *Queue) scanDirLocked() error {
	if len(q.dirPath) <= 1 {
		// Scanning "/" or an unset path would treat the filesystem root as a
		// queue; refuse outright.
		q.log.Error("queue directory not configured", "dir", q.dirPath)
		return ErrNotConfigured
	}
	if err := ensureDir(q.dirPath, q.log); err != nil {
		return err
	}

	q.log.Debug("scanning queue directory", "dir", q.dirPath, "pattern", q.pattern)

	entries, err := os.ReadDir(q.dirPath)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", q.dirPath, err)
	}

	accepted := make([]int, 0, len(entries))
	last := 0
	for _, ent := range entries {
		if !ent.Type().IsRegular() {
			continue
		}
		fileNum, ok := q.parseName(ent.Name())
		if !ok {
			continue
		}
		if q.admit != nil && !q.admit(fileNum, ent.Name()) {
			continue
		}
		if fileNum > last {
			last = fileNum
		}
		q.log.Debug("adding to queue", "num", fileNum, "name", ent.Name())
		accepted = append(accepted, fileNum)
	}

	// Commit in one step so a failed scan leaves the mirror untouched.
	q.mu.Lock()
	q.pending = accepted
	q.lastFileNum = last
	q.scanCompleted = true
	q.mu.Unlock()
	return nil
}

// ensureDir creates the queue directory if it does not exist. A plain file
// squatting on the path is deleted and replaced with a directory. Only the
// final path element is created; parents must already exist.
func ensureDir(path string, log *slog.Logger) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return nil
		}
		log.Warn("file in the way of queue directory, deleting", "path", path)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.Mkdir(path, 0o777); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	log.Info("created queue directory", "path", path)
	return nil
}
