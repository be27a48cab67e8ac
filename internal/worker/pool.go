// Package worker runs a function over many inputs on a fixed number of
// goroutines.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Job is one input with its submission index.
type Job[T any] struct {
	Index int
	Input T
}

// Result is the outcome of one Job.
type Result[T, R any] struct {
	Index  int
	Input  T
	Output R
	Err    error
}

// Func processes one input.
type Func[T, R any] func(T) (R, error)

type settings struct {
	workers int
	buffer  int
}

// Option configures a Pool.
type Option func(*settings)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithBufferSize sets the job and result channel buffer size.
func WithBufferSize(size int) Option {
	return func(s *settings) {
		if size >= 1 {
			s.buffer = size
		}
	}
}

// Pool feeds submitted jobs to its workers. Results arrive in completion
// order, not submission order.
type Pool[T, R any] struct {
	fn      Func[T, R]
	workers int
	jobs    chan Job[T]
	results chan Result[T, R]
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// New creates a Pool. Defaults: 1 worker, buffer size of 10.
func New[T, R any](fn Func[T, R], opts ...Option) *Pool[T, R] {
	s := settings{workers: 1, buffer: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[T, R]{
		fn:      fn,
		workers: s.workers,
		jobs:    make(chan Job[T], s.buffer),
		results: make(chan Result[T, R], s.buffer),
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool[T, R]) work() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.Stopped() {
			continue // drain
		}
		out, err := p.fn(job.Input)
		p.results <- Result[T, R]{Index: job.Index, Input: job.Input, Output: out, Err: err}
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool[T, R]) Submit(index int, input T) {
	p.jobs <- Job[T]{Index: index, Input: input}
}

// Stop makes workers skip every job not yet started.
func (p *Pool[T, R]) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop was called.
func (p *Pool[T, R]) Stopped() bool {
	return p.stopped.Load()
}

// Close stops accepting jobs, waits for the workers, then closes the
// result channel.
func (p *Pool[T, R]) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool[T, R]) Results() <-chan Result[T, R] {
	return p.results
}

// Workers returns the number of workers.
func (p *Pool[T, R]) Workers() int {
	return p.workers
}

// Map runs fn over inputs and returns the results in input order.
func Map[T, R any](inputs []T, fn Func[T, R], opts ...Option) []Result[T, R] {
	p := New(fn, opts...)
	p.Start()

	go func() {
		for i, in := range inputs {
			p.Submit(i, in)
		}
		p.Close()
	}()

	results := make([]Result[T, R], 0, len(inputs))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
