package rubik

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Dispatcher applies batches of moves to one cube from a single background
// worker, pausing between moves so a renderer can animate each step.
//
// Batches run to completion in submission order. There is no mid-batch
// cancellation: a caller that wants to stop simply submits nothing further.
type Dispatcher struct {
	cube   *Cube
	logger *log.Logger

	mu      sync.Mutex
	pending []batch
	closed  bool
	wake    chan struct{}
	done    chan struct{}
}

type batch struct {
	moves      []Move
	interval   time.Duration
	onComplete func()
	applied    chan Move
}

// NewDispatcher starts a worker that owns all writes to c made through it.
// Call Close to stop the worker once pending batches have drained.
func NewDispatcher(c *Cube, opts ...DispatcherOption) *Dispatcher {
	cfg := defaultDispatcherConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	d := &Dispatcher{
		cube:    c,
		logger:  cfg.logger,
		pending: make([]batch, 0, cfg.backlog),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

// Submit queues moves to be applied with interval between consecutive moves.
//
// The returned channel receives every move right after it is applied, in
// order, and is closed once the batch and onComplete (if non-nil) have
// finished. It is buffered for the whole batch, so callers may ignore it.
//
// Submit never blocks, so it is safe to call from onComplete or from a cube
// observer running on the worker.
func (d *Dispatcher) Submit(moves []Move, interval time.Duration, onComplete func()) (<-chan Move, error) {
	for i, m := range moves {
		if !m.Valid() {
			return nil, fmt.Errorf("move %d: %w", i+1, invalidMoveErr(m))
		}
	}

	b := batch{
		moves:      append([]Move(nil), moves...),
		interval:   interval,
		onComplete: onComplete,
		applied:    make(chan Move, len(moves)),
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, ErrDispatcherClosed
	}
	d.pending = append(d.pending, b)
	d.mu.Unlock()

	d.signal()
	return b.applied, nil
}

// Close stops accepting batches and waits for queued batches to finish.
// It must not be called from onComplete or from an observer on the worker.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.signal()
	<-d.done
}

func (d *Dispatcher) signal() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// next pops the oldest pending batch. ok is false once the dispatcher is
// closed and the queue has drained.
func (d *Dispatcher) next() (b batch, ok bool) {
	for {
		d.mu.Lock()
		if len(d.pending) > 0 {
			b = d.pending[0]
			d.pending[0] = batch{}
			d.pending = d.pending[1:]
			d.mu.Unlock()
			return b, true
		}
		closed := d.closed
		d.mu.Unlock()

		if closed {
			return batch{}, false
		}
		<-d.wake
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for {
		b, ok := d.next()
		if !ok {
			return
		}
		d.runBatch(b)
	}
}

func (d *Dispatcher) runBatch(b batch) {
	d.cube.moving.Store(true)
	d.logger.Debug("batch started", "moves", len(b.moves), "interval", b.interval)

	for i, m := range b.moves {
		// Moves were validated in Submit.
		if err := d.cube.Apply(m); err != nil {
			d.logger.Warn("move rejected", "move", m, "err", err)
			continue
		}
		b.applied <- m

		if i < len(b.moves)-1 && b.interval > 0 {
			time.Sleep(b.interval)
		}
	}

	if b.onComplete != nil {
		b.onComplete()
	}
	d.cube.moving.Store(false)
	close(b.applied)

	d.logger.Debug("batch finished", "moves", len(b.moves), "solved", d.cube.SolvedPieces())
}
