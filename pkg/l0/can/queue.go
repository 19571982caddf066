package can

import (
	"context"
	"errors"
)

// Transmitter issues frame transmissions.
type Transmitter interface {
	Transmit(ctx context.Context, slot uint8, f *Frame) error
}

// ErrQueueStopped indicates the TxQueue is not running.
var ErrQueueStopped = errors.New("transmit queue stopped")

type txRequest struct {
	ctx    context.Context
	slot   uint8
	frame  Frame
	result chan txResult
}

type txResult struct {
	frame Frame
	err   error
}

// TxQueue serializes transmits from any number of goroutines onto a single
// Transmitter. It is the only user of the Transmitter while running.
type TxQueue struct {
	tx      Transmitter
	reqCh   chan *txRequest
	stopped chan struct{}
}

// NewTxQueue creates a TxQueue owning tx.
func NewTxQueue(tx Transmitter) *TxQueue {
	return &TxQueue{
		tx:      tx,
		reqCh:   make(chan *txRequest),
		stopped: make(chan struct{}),
	}
}

// Name implements framework.Named.
func (q *TxQueue) Name() string {
	return "can-txq"
}

// Run implements framework.Runnable.
func (q *TxQueue) Run(ctx context.Context) error {
	defer close(q.stopped)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-q.reqCh:
			err := q.tx.Transmit(req.ctx, req.slot, &req.frame)
			req.result <- txResult{frame: req.frame, err: err}
		}
	}
}

// Submit transmits f from slot and waits for the command to be issued.
// The queue works on a copy, f is updated with the outcome when Submit
// returns without a context error.
func (q *TxQueue) Submit(ctx context.Context, slot uint8, f *Frame) error {
	if f == nil {
		return ErrNilFrame
	}
	req := &txRequest{ctx: ctx, slot: slot, frame: *f, result: make(chan txResult, 1)}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-q.stopped:
		return ErrQueueStopped
	case q.reqCh <- req:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-req.result:
		f.Slot, f.Status = res.frame.Slot, res.frame.Status
		return res.err
	}
}
