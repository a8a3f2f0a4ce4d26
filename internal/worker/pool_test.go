package worker

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// quietLogger discards pool debug output.
func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Name: item.Name}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, Plies: len(item.Moves)}
	}
}

// submit submits item, failing the test if submission is refused.
func submit(t *testing.T, pool *Pool, item WorkItem) {
	t.Helper()
	if err := pool.Submit(context.Background(), item); err != nil {
		t.Errorf("Submit(%d): %v", item.Index, err)
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithLogger(quietLogger()))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		submit(t, pool, WorkItem{Index: i, Moves: []chess.Move{chess.MoveOf(6, 4, 4, 4)}})
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100), WithLogger(quietLogger()))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		submit(t, pool, WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2), WithLogger(quietLogger()))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestPoolSubmit_Cancelled tests that a done context refuses submission.
func TestPoolSubmit_Cancelled(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithBufferSize(1), WithLogger(quietLogger()))

	// Not started, so nothing drains the buffer.
	if err := pool.Submit(context.Background(), WorkItem{Index: 0}); err != nil {
		t.Fatalf("Submit into an empty buffer: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := pool.Submit(ctx, WorkItem{Index: 1}); err != context.DeadlineExceeded {
		t.Errorf("Submit into a full buffer = %v; want %v", err, context.DeadlineExceeded)
	}

	cancelled, stop := context.WithCancel(context.Background())
	stop()
	if err := pool.Submit(cancelled, WorkItem{Index: 2}); err != context.Canceled {
		t.Errorf("Submit with cancelled context = %v; want %v", err, context.Canceled)
	}

	pool.Start()
	go pool.Close()
	if n := collectResults(pool); n != 1 {
		t.Errorf("results = %d; want 1", n)
	}
}

// TestPoolResultOrder tests that all results are received regardless of order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(20), WithLogger(quietLogger()))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		submit(t, pool, WorkItem{Index: i})
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	if len(seen) != numItems {
		t.Errorf("received %d results; want %d", len(seen), numItems)
	}
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50), WithLogger(quietLogger()))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			submit(t, pool, WorkItem{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPoolOptions tests the functional options.
func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative workers ignored", []PoolOption{WithWorkers(-1)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
		{"nil logger ignored", []PoolOption{WithLogger(nil)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
			if pool.log == nil {
				t.Error("logger is nil")
			}
		})
	}
}

func TestPoolRun(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(3), WithBufferSize(2), WithLogger(quietLogger()))

	items := make([]WorkItem, 20)
	for i := range items {
		items[i] = WorkItem{Index: i}
	}

	var calls int32
	results, err := pool.Run(context.Background(), items, func(ProcessResult) {
		atomic.AddInt32(&calls, 1)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(items) {
		t.Fatalf("results = %d; want %d", len(results), len(items))
	}
	for i, res := range results {
		if res.Index != i {
			t.Errorf("results[%d].Index = %d; results not ordered", i, res.Index)
		}
	}
	if got := atomic.LoadInt32(&calls); got != int32(len(items)) {
		t.Errorf("onResult calls = %d; want %d", got, len(items))
	}
}

func TestPoolRun_Cancelled(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithLogger(quietLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := pool.Run(ctx, make([]WorkItem, 100), nil)
	if err != context.Canceled {
		t.Errorf("Run error = %v; want %v", err, context.Canceled)
	}
	if len(results) != 0 {
		t.Errorf("cancelled run produced %d results; want 0", len(results))
	}
}
