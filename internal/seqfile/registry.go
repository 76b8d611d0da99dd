package seqfile

import (
	"strings"
	"sync"
)

// Registry hands out one shared Queue per directory path, so independent
// modules (a producer and a consumer, say) operate on a single in-memory
// mirror instead of each maintaining a divergent copy of the same directory.
type Registry struct {
	mu     sync.Mutex
	queues []*Queue
}

// NewRegistry creates an empty registry. Callers own its lifetime; there is
// no ambient process-wide instance.
func NewRegistry() *Registry {
	return &Registry{}
}

// Instance returns the queue registered for dirPath, constructing and
// registering one with opts on first use. Paths are compared exactly after
// trailing separators are trimmed. Options are only applied when the
// instance is first created; later callers share the existing queue as-is.
//
// Lookup is a linear scan: the expected population is a handful of open
// queues on a constrained device.
func (r *Registry) Instance(dirPath string, opts ...Option) (*Queue, error) {
	trimmed := strings.TrimRight(dirPath, "/")

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.queues {
		if q.DirPath() == trimmed {
			return q, nil
		}
	}

	q, err := New(trimmed, opts...)
	if err != nil {
		return nil, err
	}
	r.queues = append(r.queues, q)
	return q, nil
}

// Remove drops the registration for dirPath. The queue itself stays valid
// for callers still holding it; only the shared lookup entry goes away.
func (r *Registry) Remove(dirPath string) {
	trimmed := strings.TrimRight(dirPath, "/")

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, q := range r.queues {
		if q.DirPath() == trimmed {
			r.queues = append(r.queues[:i], r.queues[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered queues.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queues)
}
