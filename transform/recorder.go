package transform

import (
	"context"
	"sync"
)

// Recorder is Service which only remembers requests. It is used when images
// are not needed, for example to test layouts.
type Recorder struct {
	mu       sync.Mutex
	requests []Request
	// Err, when set, is returned by every call after recording it.
	Err error
}

func (r *Recorder) Transform(_ context.Context, req Request) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)
	if r.Err != nil {
		return Result{}, r.Err
	}
	return req.Outputs(), nil
}

// Requests returns copy of recorded requests in call order.
func (r *Recorder) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]Request, len(r.requests))
	copy(res, r.requests)
	return res
}

// Count returns number of calls for given source.
func (r *Recorder) Count(source string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, req := range r.requests {
		if req.Source == source {
			n++
		}
	}
	return n
}
