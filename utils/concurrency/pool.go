// Package concurrency implements a simple channel based worker pool for
// concurrent operations.
package concurrency

import (
	"sync"
)

// Pool is a struct storing a channel of some given resource (e.g. a
// [shamir.Combiner]) meant to be used concurrently, and a channel
// collecting the errors of the tasks run on it.
type Pool[T any] struct {
	wg        sync.WaitGroup
	resources chan T
	errs      chan error
}

// NewPool instantiates a new [Pool] handing out the given resources. A task
// borrows one resource for its whole run, so len(resources) bounds the
// parallelism.
func NewPool[T any](resources []T) *Pool[T] {
	pool := &Pool[T]{
		resources: make(chan T, len(resources)),
		errs:      make(chan error, 1),
	}
	for i := range resources {
		pool.resources <- resources[i]
	}
	return pool
}

// Task is a function taking as input a resource of the pool.
type Task[T any] func(resource T) (err error)

// Run runs a [Task] concurrently as soon as a resource frees up. A failed
// task does not cancel the others: every submitted task runs, and the first
// error is surfaced by [Pool.Wait].
func (p *Pool[T]) Run(f Task[T]) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		resource := <-p.resources
		defer func() { p.resources <- resource }()
		if err := f(resource); err != nil {
			select {
			case p.errs <- err:
			default:
			}
		}
	}()
}

// Wait blocks until all submitted [Task] have finished and returns the
// first collected error, if any.
func (p *Pool[T]) Wait() (err error) {
	p.wg.Wait()
	select {
	case err = <-p.errs:
	default:
	}
	return
}
