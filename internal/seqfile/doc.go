// Package seqfile maintains a directory of files as a crash-recoverable FIFO
// queue with unique numeric filenames.
//
// The directory listing itself is the durable state of record: each queue
// entry is one file whose name encodes a monotonically assigned file number
// through a printf-style pattern (default "%08d"). An in-memory mirror of the
// pending numbers is rebuilt lazily from disk on the first operation and kept
// consistent by subsequent mutations, so steady-state operations never
// re-read the directory.
//
// Producers call Reserve to obtain the next file number, create the file at
// PathForNum, and Add the number to the queue. Consumers call Next to take
// the head of the queue and remove the file once it has been handled.
// Reservations live only in memory; a crash between Reserve and file creation
// loses nothing, the number is simply skipped on the next scan.
//
// Removal helpers tolerate filesystems that corrupt directory iteration when
// entries are unlinked mid-walk: every walk snapshots a listing and closes
// the directory handle before mutating or recursing, and bulk removal uses a
// find-one-leaf, delete, re-walk loop that never holds a handle across a
// mutation.
package seqfile
