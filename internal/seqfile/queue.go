package seqfile

import (
	"log/slog"
	"strings"
	"sync"

	"seqq/internal/logging"
)

// DefaultPattern is the filename pattern applied when none is configured:
// eight-digit zero-padded decimal.
const DefaultPattern = "%08d"

// AdmissionFunc decides during a scan whether a file matching the pattern
// should enter the in-memory queue. Returning false leaves the file on disk
// but keeps its number out of the queue, which is how callers discard
// partially written entries. The hook runs outside the queue mutex, so it may
// call back into queue operations.
type AdmissionFunc func(fileNum int, name string) bool

// Option configures a Queue during construction.
type Option func(*Queue) error

// WithPattern sets the filename pattern used to format and parse file
// numbers. The pattern must contain exactly one integer conversion verb.
func WithPattern(pattern string) Option {
	return func(q *Queue) error {
		if err := validatePattern(pattern); err != nil {
			return err
		}
		q.pattern = pattern
		return nil
	}
}

// WithExtension sets the filename extension for queue files. A leading dot is
// stripped; the empty string (the default) disables the extension.
func WithExtension(ext string) Option {
	return func(q *Queue) error {
		q.ext = strings.TrimPrefix(ext, ".")
		return nil
	}
}

// WithAdmission installs the scan admission hook.
func WithAdmission(fn AdmissionFunc) Option {
	return func(q *Queue) error {
		q.admit = fn
		return nil
	}
}

// WithLogger sets the logger for scan and removal traces. Defaults to a
// no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(q *Queue) error {
		if logger == nil {
			logger = logging.NewNop()
		}
		q.log = logger
		return nil
	}
}

// Queue is one queue directory. All methods are safe for concurrent use by
// multiple goroutines within the same process; the directory contents are
// assumed to be owned exclusively by this process's Queue instances.
type Queue struct {
	dirPath string
	pattern string
	ext     string
	admit   AdmissionFunc
	log     *slog.Logger

	// scanMu serializes directory scans so two goroutines racing on the
	// first queue operation cannot double-populate the mirror.
	scanMu sync.Mutex

	mu            sync.Mutex // guards the fields below
	scanCompleted bool
	lastFileNum   int
	pending       []int
}

// New creates a queue over dirPath. Trailing path separators are trimmed.
// The directory itself is not touched until the first operation triggers a
// scan, so New cannot fail on filesystem state, only on bad options.
func New(dirPath string, opts ...Option) (*Queue, error) {
	q := &Queue{
		dirPath: strings.TrimRight(dirPath, "/"),
		pattern: DefaultPattern,
		log:     logging.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// DirPath returns the queue directory path, without a trailing separator.
func (q *Queue) DirPath() string { return q.dirPath }

// Pattern returns the configured filename pattern.
func (q *Queue) Pattern() string { return q.pattern }

// Extension returns the configured filename extension, without a leading dot.
func (q *Queue) Extension() string { return q.ext }

// Reserve hands out the next unused file number, scanning the directory
// first if no scan has completed. The reservation exists only in memory:
// the caller must create the file (or Add the number) to make it durable,
// and a crash beforehand simply skips the number on the next scan.
func (q *Queue) Reserve() (int, error) {
	if err := q.ensureScanned(); err != nil {
		return 0, err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lastFileNum++
	return q.lastFileNum, nil
}

// Add appends fileNum to the tail of the queue, raising the high-water mark
// if fileNum exceeds it.
func (q *Queue) Add(fileNum int) error {
	if err := q.ensureScanned(); err != nil {
		return err
	}
	q.mu.Lock()
	if fileNum > q.lastFileNum {
		q.lastFileNum = fileNum
	}
	q.pending = append(q.pending, fileNum)
	q.mu.Unlock()

	q.log.Debug("added to queue", "num", fileNum)
	return nil
}

// Next returns the file number at the head of the queue, or 0 if the queue
// is empty. Zero is never an allocated number, so it doubles as the empty
// sentinel rather than an error: an empty queue is a normal condition.
// With remove set the head is popped; otherwise it stays for a later call.
func (q *Queue) Next(remove bool) (int, error) {
	if err := q.ensureScanned(); err != nil {
		return 0, err
	}
	fileNum := 0
	q.mu.Lock()
	if len(q.pending) > 0 {
		fileNum = q.pending[0]
		if remove {
			q.pending = q.pending[1:]
		}
	}
	q.mu.Unlock()

	if fileNum != 0 {
		q.log.Debug("took from queue head", "num", fileNum, "removed", remove)
	}
	return fileNum, nil
}

// RemoveSecond removes and returns the second entry in the queue, or 0 if
// fewer than two entries exist. It lets a consumer drop a stale retry
// without disturbing the in-flight head entry.
func (q *Queue) RemoveSecond() (int, error) {
	if err := q.ensureScanned(); err != nil {
		return 0, err
	}
	fileNum := 0
	q.mu.Lock()
	if len(q.pending) >= 2 {
		fileNum = q.pending[1]
		q.pending = append(q.pending[:1], q.pending[2:]...)
	}
	q.mu.Unlock()

	if fileNum != 0 {
		q.log.Debug("removed second queue entry", "num", fileNum)
	}
	return fileNum, nil
}

// Pending returns a copy of the pending file numbers in queue order.
func (q *Queue) Pending() []int {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]int, len(q.pending))
	copy(out, q.pending)
	return out
}

// Len returns the number of pending entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// LastFileNum returns the high-water mark: the largest file number observed
// on disk or handed out by Reserve.
func (q *Queue) LastFileNum() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lastFileNum
}

func (q *Queue) ensureScanned() error {
	q.mu.Lock()
	done := q.scanCompleted
	q.mu.Unlock()
	if done {
		return nil
	}

	q.scanMu.Lock()
	defer q.scanMu.Unlock()
	q.mu.Lock()
	done = q.scanCompleted
	q.mu.Unlock()
	if done {
		return nil
	}
	return q.scanDirLocked()
}
