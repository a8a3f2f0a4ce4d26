// Package worker replays independent games in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WorkItem is one game to replay from the initial position.
type WorkItem struct {
	Index int    // Original index for tracking
	Name  string // Caller's label for the game, echoed in the result
	Moves []chess.Move
}

// ProcessResult is the outcome of replaying one WorkItem.
type ProcessResult struct {
	Index     int
	Name      string
	SessionID string
	Plies     int              // Number of moves accepted
	ToMove    chess.Colour     // Side to move after the last accepted move
	Status    chess.GameStatus // Status for ToMove
	Board     *chess.Board     // Final position (nil if replay never started)
	Error     error            // First rejected move, if any
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a fixed set of goroutines running a ProcessFunc.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	log         logrus.FieldLogger
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithLogger sets the logger used for per-item debug output.
func WithLogger(log logrus.FieldLogger) PoolOption {
	return func(p *Pool) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPool creates a worker pool. processFunc is required; the defaults are
// one worker, a buffer of 10 and the standard logrus logger.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
		log:         logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	p.log.WithFields(logrus.Fields{
		"workers": p.numWorkers,
		"buffer":  p.bufferSize,
	}).Debug("starting worker pool")

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		res := p.processFunc(item)
		p.log.WithFields(logrus.Fields{
			"worker": id,
			"index":  item.Index,
			"plies":  res.Plies,
			"status": res.Status,
		}).Debug("game replayed")
		p.resultChan <- res
	}
}

// Submit submits a work item for processing, blocking while the work
// channel buffer is full. It returns ctx.Err() without submitting once ctx
// is done.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.workChan <- item:
		return nil
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once the last worker exits.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, feeds it items and returns the results ordered by
// Index. onResult, if non-nil, is called from the collecting goroutine as
// each result arrives. Cancelling ctx stops the pool; results already
// produced are still returned together with ctx.Err().
func (p *Pool) Run(ctx context.Context, items []WorkItem, onResult func(ProcessResult)) ([]ProcessResult, error) {
	p.Start()

	go func() {
		defer p.Close()
		for _, item := range items {
			if err := p.Submit(ctx, item); err != nil {
				p.Stop()
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for res := range p.Results() {
		if onResult != nil {
			onResult(res)
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, ctx.Err()
}
