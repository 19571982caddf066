package framework

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/golang/glog"
)

// Runner runs Runnables sharing one context. The first Runnable to
// fail cancels the others.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc

	wg       sync.WaitGroup
	lock     sync.Mutex
	count    int
	errs     AggregatedError
	failed   chan struct{}
	failOnce sync.Once
}

// NewRunner creates a Runner whose Runnables stop with ctx.
func NewRunner(ctx context.Context) *Runner {
	r := &Runner{failed: make(chan struct{})}
	r.ctx, r.cancel = context.WithCancel(ctx)
	return r
}

// Go starts Runnables.
func (r *Runner) Go(runners ...Runnable) *Runner {
	for _, runner := range runners {
		r.lock.Lock()
		name := strconv.Itoa(r.count)
		r.count++
		r.lock.Unlock()
		if named, ok := runner.(Named); ok {
			name = named.Name()
		}
		r.wg.Add(1)
		go r.run(runner, name)
	}
	return r
}

func (r *Runner) run(runner Runnable, name string) {
	defer r.wg.Done()
	glog.V(4).Infof("Runner[%s] started", name)
	err := runner.Run(r.ctx)
	glog.V(4).Infof("Runner[%s] stopped: %v", name, err)
	if err == nil || err == context.Canceled || r.ctx.Err() != nil && err == r.ctx.Err() {
		return
	}
	r.lock.Lock()
	r.errs.Add(fmt.Errorf("%s: %w", name, err))
	r.lock.Unlock()
	r.failOnce.Do(func() {
		close(r.failed)
		r.cancel()
	})
}

// Failed is closed when a Runnable fails.
func (r *Runner) Failed() <-chan struct{} {
	return r.failed
}

// Stop cancels all Runnables, waits for them and returns their failures.
func (r *Runner) Stop() error {
	r.cancel()
	r.wg.Wait()
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.errs.Aggregate()
}

// SignalContext returns a context canceled on interrupt or SIGTERM.
// A second signal exits the process.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			glog.Info("stop requested")
			cancel()
		case <-ctx.Done():
			signal.Stop(sigCh)
			return
		}
		<-sigCh
		glog.Error("stop requested again, force exit")
		glog.Flush()
		os.Exit(1)
	}()
	return ctx, cancel
}

// RunWithContextCancel runs a func with doesn't accept a context.
// cancel is called only when the context is canceled.
func RunWithContextCancel(ctx context.Context, onCancel func(), fn func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
	}()
	select {
	case <-ctx.Done():
		if onCancel != nil {
			onCancel()
		}
		<-errCh
		return context.Canceled
	case err := <-errCh:
		return err
	}
}

// RunWithContextCloser is a convinient wrapper for RunWithContextCancel and
// ensures closer.Close is either called on cancel or exit of fn.
func RunWithContextCloser(ctx context.Context, closer io.Closer, fn func() error) error {
	var closed bool
	err := RunWithContextCancel(ctx, func() {
		closer.Close()
		closed = true
	}, fn)
	if !closed {
		closer.Close()
	}
	return err
}
