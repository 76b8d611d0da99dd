package seqfile

import "errors"

var (
	// ErrNotConfigured reports a queue whose directory path is unset or would
	// resolve to the filesystem root.
	ErrNotConfigured = errors.New("seqfile: queue directory not configured")

	// ErrBadPattern reports a filename pattern that does not contain exactly
	// one integer conversion verb.
	ErrBadPattern = errors.New("seqfile: invalid filename pattern")

	// ErrPathTooLong reports a path that exceeds the bounded buffer length
	// honored by recursive walks.
	ErrPathTooLong = errors.New("seqfile: path too long")

	// errNotFound signals an exhausted directory during a recursive walk.
	errNotFound = errors.New("seqfile: no entry found")
)
