package source

import "context"

// Resolver turns a queue item into a local audio file.
type Resolver interface {
	Resolve(ctx context.Context, item string) (*Resolved, error)
}

// Resolved is a local file ready for processing. Cleanup must be called
// once the item is finished, whatever the outcome.
type Resolved struct {
	Item       string
	Path       string
	Downloaded bool
	cleanup    func()
}

// Cleanup releases anything Resolve created. Safe to call more than once.
func (r *Resolved) Cleanup() {
	if r == nil || r.cleanup == nil {
		return
	}
	r.cleanup()
	r.cleanup = nil
}
