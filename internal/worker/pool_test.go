package worker

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// countingFunc returns a function that counts calls and upper-cases input.
func countingFunc(counter *int32) Func[string, string] {
	return func(s string) (string, error) {
		atomic.AddInt32(counter, 1)
		return strings.ToUpper(s), nil
	}
}

// collect drains the result channel.
func collect[T, R any](p *Pool[T, R]) []Result[T, R] {
	var out []Result[T, R]
	for r := range p.Results() {
		out = append(out, r)
	}
	return out
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	p := New(countingFunc(&processed), WithWorkers(4))
	p.Start()

	const numItems = 10
	go func() {
		for i := 0; i < numItems; i++ {
			p.Submit(i, fmt.Sprintf("save%d", i))
		}
		p.Close()
	}()

	results := collect(p)
	if len(results) != numItems {
		t.Errorf("results = %d; want %d", len(results), numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
	for _, r := range results {
		if r.Output != strings.ToUpper(r.Input) {
			t.Errorf("result %d: Output = %q for Input %q", r.Index, r.Output, r.Input)
		}
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processed int32
	release := make(chan struct{})
	fn := func(s string) (string, error) {
		<-release
		atomic.AddInt32(&processed, 1)
		return s, nil
	}

	p := New(fn, WithWorkers(1), WithBufferSize(20))
	p.Start()
	for i := 0; i < 10; i++ {
		p.Submit(i, "x")
	}
	p.Stop()
	close(release)
	go p.Close()
	collect(p)

	// The worker may have picked up the first job before Stop.
	if got := atomic.LoadInt32(&processed); got > 1 {
		t.Errorf("processed = %d after Stop; want at most 1", got)
	}
	if !p.Stopped() {
		t.Error("Stopped() = false after Stop")
	}
}

func TestPoolErrors(t *testing.T) {
	fn := func(n int) (int, error) {
		if n%2 == 1 {
			return 0, fmt.Errorf("odd %d", n)
		}
		return n * n, nil
	}

	results := Map([]int{0, 1, 2, 3}, fn, WithWorkers(2))
	for _, r := range results {
		if (r.Err != nil) != (r.Input%2 == 1) {
			t.Errorf("input %d: Err = %v", r.Input, r.Err)
		}
	}
	if results[2].Output != 4 {
		t.Errorf("results[2].Output = %d; want 4", results[2].Output)
	}
}

func TestMapPreservesOrder(t *testing.T) {
	inputs := make([]int, 50)
	for i := range inputs {
		inputs[i] = i
	}
	fn := func(n int) (int, error) {
		time.Sleep(time.Duration(50-n) * time.Microsecond)
		return n, nil
	}

	results := Map(inputs, fn, WithWorkers(8), WithBufferSize(4))
	if len(results) != len(inputs) {
		t.Fatalf("results = %d; want %d", len(results), len(inputs))
	}
	for i, r := range results {
		if r.Index != i || r.Output != i {
			t.Fatalf("results[%d] = {Index %d, Output %d}", i, r.Index, r.Output)
		}
	}
}

func TestMapEmpty(t *testing.T) {
	results := Map(nil, func(s string) (string, error) { return s, nil })
	if len(results) != 0 {
		t.Errorf("results = %d; want 0", len(results))
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want int
	}{
		{"default", nil, 1},
		{"four", []Option{WithWorkers(4)}, 4},
		{"zero ignored", []Option{WithWorkers(0)}, 1},
		{"negative ignored", []Option{WithWorkers(-3), WithBufferSize(-1)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(func(s string) (string, error) { return s, nil }, tt.opts...)
			if got := p.Workers(); got != tt.want {
				t.Errorf("Workers() = %d; want %d", got, tt.want)
			}
			if cap(p.jobs) < 1 {
				t.Errorf("job buffer = %d; want at least 1", cap(p.jobs))
			}
		})
	}
}
