package workerpool

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned when work is submitted after Close.
var ErrPoolClosed = errors.New("worker pool closed")

// Task is a unit of work. Fn must be safe to run concurrently with other tasks.
type Task struct {
	Fn      func(context.Context) (any, error)
	ResultC chan Result
}

// Result carries a task's outcome back to the submitter.
type Result struct {
	Value any
	Err   error
}

// Pool runs tasks on a fixed number of goroutines fed by a bounded queue.
type Pool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPool starts workerCount workers. Non-positive sizes fall back to one worker and an unbuffered queue.
func NewPool(workerCount, queueSize int) *Pool {
	if workerCount <= 0 {
		workerCount = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case task := <-p.tasks:
			value, err := task.Fn(p.ctx)
			if task.ResultC != nil {
				task.ResultC <- Result{Value: value, Err: err}
			}
		}
	}
}

// Submit queues a task, blocking while the queue is full.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	select {
	case <-p.ctx.Done():
		return ErrPoolClosed
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return ErrPoolClosed
	case p.tasks <- task:
		return nil
	}
}

// Do runs fn on the pool and waits for its result.
func (p *Pool) Do(ctx context.Context, fn func(context.Context) (any, error)) (any, error) {
	resultC := make(chan Result, 1)
	if err := p.Submit(ctx, Task{Fn: fn, ResultC: resultC}); err != nil {
		return nil, err
	}
	select {
	case res := <-resultC:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.ctx.Done():
		return nil, ErrPoolClosed
	}
}

// Close stops the workers and waits for running tasks. Queued tasks are dropped.
func (p *Pool) Close() {
	p.cancel()
	p.wg.Wait()
}
