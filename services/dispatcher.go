package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/xairline/xa-datarefs/utils/logger"
)

var (
	ErrDispatcherFull = errors.New("dispatcher queue is full")
	ErrJobPanicked    = errors.New("dispatched job panicked")
)

// Dispatcher runs work on the goroutine that owns the host. XPLM may only be called
// from the sim thread, so requests coming from elsewhere are queued and drained by
// the flight loop.
type Dispatcher interface {
	// Do runs fn and blocks until it has returned or ctx is done. When Do returns
	// a ctx error fn has not run and never will.
	Do(ctx context.Context, fn func()) error
	// Drain runs every queued job on the calling goroutine.
	Drain() int
}

const (
	jobPending int32 = iota
	jobClaimed
	jobCancelled
)

type job struct {
	fn    func()
	state atomic.Int32
	err   error
	done  chan struct{}
}

type queueDispatcher struct {
	Logger logger.Logger
	jobs   chan *job
}

func NewQueueDispatcher(logger logger.Logger, size int) Dispatcher {
	if size <= 0 {
		size = 1
	}
	return &queueDispatcher{Logger: logger, jobs: make(chan *job, size)}
}

func (q *queueDispatcher) Do(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	j := &job{fn: fn, done: make(chan struct{})}
	select {
	case q.jobs <- j:
	default:
		return ErrDispatcherFull
	}
	select {
	case <-j.done:
		return j.err
	case <-ctx.Done():
		if j.state.CompareAndSwap(jobPending, jobCancelled) {
			return ctx.Err()
		}
		// already running on the sim thread
		<-j.done
		return j.err
	}
}

// Drain only runs the jobs queued when it was called, so a busy producer cannot
// stall the frame. Cancelled jobs are dropped and not counted.
func (q *queueDispatcher) Drain() int {
	pending := len(q.jobs)
	ran := 0
	for i := 0; i < pending; i++ {
		j := <-q.jobs
		if !j.state.CompareAndSwap(jobPending, jobClaimed) {
			continue
		}
		q.run(j)
		ran++
	}
	return ran
}

// run never lets a panic escape into the flight loop, which would take the sim down.
func (q *queueDispatcher) run(j *job) {
	defer close(j.done)
	defer func() {
		if r := recover(); r != nil {
			q.Logger.Errorf("Dispatched job panicked: %v", r)
			j.err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()
	j.fn()
}

type inlineDispatcher struct{}

// NewInlineDispatcher runs jobs on the caller's goroutine. Only use it with a
// Backend that is safe for concurrent use, such as Harness.
func NewInlineDispatcher() Dispatcher {
	return inlineDispatcher{}
}

func (inlineDispatcher) Do(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn()
	return nil
}

func (inlineDispatcher) Drain() int {
	return 0
}
