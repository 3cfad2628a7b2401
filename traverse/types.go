// SPDX-License-Identifier: MIT
// Package: lvmesh/traverse
//
// types.go - search options, results and sentinel errors.

package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Sentinel errors for traversal.
var (
	// ErrNullStart is returned when the start handle is null.
	ErrNullStart = errors.New("traverse: start element is null")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Option configures a search via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when an element is dequeued. Returning an error aborts.
	OnVisit func(idx mesh.Index, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip a step curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor mesh.Index) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(mesh.Index, int) error { return nil },
		FilterNeighbor: func(_, _ mesh.Index) bool { return true },
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visit hook. nil is ignored.
func WithOnVisit(fn func(idx mesh.Index, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours for which fn returns false. nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor mesh.Index) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a search.
type Result struct {
	Order  []mesh.Index
	Depth  map[mesh.Index]int
	Parent map[mesh.Index]mesh.Index
}

// PathTo reconstructs the chain of indices from the start to dest.
func (r *Result) PathTo(dest mesh.Index) ([]mesh.Index, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traverse: %d not reached", dest)
	}
	var path []mesh.Index
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
