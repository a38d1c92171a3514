package linegraph

import (
	"context"
)

// A Sink receives the scene after each redraw, e.g. to paint it onto a
// canvas. It is called on the goroutine running Live.Run.
type Sink func(*Scene) error

// Mutation is a change applied to the graph owned by a Live.
type Mutation func(*Graph) error

type request struct {
	mutate Mutation
	done   chan error // nil for posted requests
}

// Live owns a Graph on a single goroutine. Other goroutines submit
// mutations through Do or Post; Run applies all queued mutations and
// then redraws once.
type Live struct {
	graph *Graph
	sink  Sink
	reqs  chan request

	// OnError is called with the errors of posted mutations. It is
	// called on the goroutine running Run.
	OnError func(error)
}

// NewLive returns a Live for g which hands every redraw to sink.
// Up to queue mutations can be posted without blocking.
func NewLive(g *Graph, sink Sink, queue int) *Live {
	return &Live{
		graph: g,
		sink:  sink,
		reqs:  make(chan request, queue),
	}
}

// Do submits m and waits until it has been applied. It returns the
// error of m or the context's error if ctx is done first.
func (l *Live) Do(ctx context.Context, m Mutation) error {
	req := request{mutate: m, done: make(chan error, 1)}
	select {
	case l.reqs <- req:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Post submits m without waiting for it to be applied. It blocks only
// while the queue is full.
func (l *Live) Post(ctx context.Context, m Mutation) error {
	select {
	case l.reqs <- request{mutate: m}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run draws the graph once and then serves mutations until ctx is done
// or the sink fails. After a batch of queued mutations is applied the
// graph is redrawn if any of them succeeded.
func (l *Live) Run(ctx context.Context) error {
	if err := l.sink(l.graph.Scene()); err != nil {
		return err
	}
	for {
		var req request
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req = <-l.reqs:
		}

		changed := l.apply(req)
	drain:
		for {
			select {
			case req = <-l.reqs:
				if l.apply(req) {
					changed = true
				}
			default:
				break drain
			}
		}

		if !changed {
			continue
		}
		if err := l.sink(l.graph.Scene()); err != nil {
			return err
		}
	}
}

func (l *Live) apply(req request) bool {
	err := req.mutate(l.graph)
	if req.done != nil {
		req.done <- err
	} else if err != nil && l.OnError != nil {
		l.OnError(err)
	}
	return err == nil
}
