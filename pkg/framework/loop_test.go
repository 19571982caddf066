package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testMsg struct {
	val int
}

func (m *testMsg) NewMessage() Message { return &testMsg{} }

func TestLoopPriorityOrder(t *testing.T) {
	var order []int
	l := NewLoop()
	for _, lv := range []int{PrLvPostProc, PrLvSense, PrLvControl} {
		lv := lv
		l.AddController(lv, ControlFunc(func(cc ControlContext) error {
			require.Equal(t, lv, cc.PriorityLevel())
			order = append(order, lv)
			return nil
		}))
	}
	l.Step(context.Background())
	require.Equal(t, []int{PrLvSense, PrLvControl, PrLvPostProc}, order)
	require.Equal(t, uint64(1), l.Iterations())
}

func TestLoopMessages(t *testing.T) {
	var seen, leftover []int
	l := NewLoop()
	l.AddController(PrLvSense, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			if m := mc.CurrentMessage().(*testMsg); m.val%2 == 0 {
				seen = append(seen, m.val)
				mc.MessageTaken()
			}
		}))
		return nil
	}))
	l.AddController(PrLvControl, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			leftover = append(leftover, mc.CurrentMessage().(*testMsg).val)
			mc.MessageTaken()
		}))
		return nil
	}))
	for i := 1; i <= 4; i++ {
		l.PostMessage(&testMsg{val: i})
	}
	l.Step(context.Background())
	require.Equal(t, []int{2, 4}, seen)
	require.Equal(t, []int{1, 3}, leftover)

	seen, leftover = nil, nil
	l.Step(context.Background())
	require.Empty(t, seen)
	require.Empty(t, leftover)
}

func TestLoopStopProcessing(t *testing.T) {
	var first []int
	var rest []int
	l := NewLoop()
	l.AddController(PrLvSense, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			first = append(first, mc.CurrentMessage().(*testMsg).val)
			mc.MessageTaken()
			mc.StopProcessing()
		}))
		return nil
	}))
	l.AddController(PrLvControl, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			rest = append(rest, mc.CurrentMessage().(*testMsg).val)
		}))
		return nil
	}))
	l.PostMessage(&testMsg{val: 1})
	l.PostMessage(&testMsg{val: 2})
	l.PostMessage(&testMsg{val: 3})
	l.Step(context.Background())
	require.Equal(t, []int{1}, first)
	require.Equal(t, []int{2, 3}, rest)
}

func TestLoopStopProcessingKeepsUntaken(t *testing.T) {
	calls := 0
	var rest []int
	l := NewLoop()
	l.AddController(PrLvSense, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			calls++
			if calls > 10 {
				panic("message processing did not stop")
			}
			mc.StopProcessing()
		}))
		return nil
	}))
	l.AddController(PrLvControl, ControlFunc(func(cc ControlContext) error {
		cc.Messages().ProcessMessages(ProcessMessageFunc(func(mc MessageProcessingContext) {
			rest = append(rest, mc.CurrentMessage().(*testMsg).val)
			mc.MessageTaken()
		}))
		return nil
	}))
	for i := 1; i <= 3; i++ {
		l.PostMessage(&testMsg{val: i})
	}
	l.Step(context.Background())
	require.Equal(t, 1, calls)
	require.Equal(t, []int{1, 2, 3}, rest)
}

func TestMessageListConcat(t *testing.T) {
	var a, b messageList
	a.append(&messageItem{msg: &testMsg{val: 1}})
	b.append(&messageItem{msg: &testMsg{val: 2}})
	b.append(&messageItem{msg: &testMsg{val: 3}})
	a.concat(&b)
	require.Nil(t, b.head)
	require.Nil(t, b.tail)
	var vals []int
	for item := a.head; item != nil; item = item.next {
		vals = append(vals, item.msg.(*testMsg).val)
	}
	require.Equal(t, []int{1, 2, 3}, vals)
	require.Equal(t, 3, a.tail.msg.(*testMsg).val)
}

func TestLoopHooksAndClock(t *testing.T) {
	at := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	var times []time.Time
	var hooks int
	l := NewLoop()
	l.Clock = TimeFunc(func() time.Time { return at })
	l.AddController(PrLvControl, ControlFunc(func(cc ControlContext) error {
		times = append(times, cc.Time())
		cc.PostRun(ControlFunc(func(ControlContext) error {
			hooks++
			return nil
		}))
		return nil
	}))
	l.PreRunAt(PrLvTop, ControlFunc(func(ControlContext) error {
		hooks += 10
		return errors.New("logged only")
	}))
	l.Step(context.Background())
	require.Equal(t, 11, hooks)
	l.Step(context.Background())
	require.Equal(t, 12, hooks)
	require.Equal(t, []time.Time{at, at}, times)
}

func TestLoopRunTriggerNext(t *testing.T) {
	l := NewLoop()
	l.Interval = time.Hour
	done := make(chan struct{}, 1)
	l.AddController(PrLvControl, ControlFunc(func(cc ControlContext) error {
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	}))
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()
	l.TriggerNext()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("iteration not triggered")
	}
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil).Aggregate())
	e1 := errors.New("e1")
	errs.Add(e1)
	require.Equal(t, "e1", errs.Aggregate().Error())
	errs.Add(errors.New("e2"))
	require.Equal(t, "Multiple errors:\ne1\ne2", errs.Error())
	require.True(t, errors.Is(errs.Aggregate(), e1))
}

type failingRunnable struct {
	err error
}

func (r *failingRunnable) Name() string { return "failing" }

func (r *failingRunnable) Run(ctx context.Context) error { return r.err }

func TestLoopStopsOnRunnableFailure(t *testing.T) {
	boom := errors.New("boom")
	stopped := make(chan struct{})
	l := NewLoop()
	l.Interval = time.Hour
	l.AddRunnable(&failingRunnable{err: boom})
	l.AddRunnable(RunnableFunc(func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return ctx.Err()
	}))
	err := l.Run(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, boom))
	require.Contains(t, err.Error(), "failing: boom")
	select {
	case <-stopped:
	default:
		t.Fatal("other runnables not stopped")
	}
}

func TestRunnerStop(t *testing.T) {
	r := NewRunner(context.Background())
	r.Go(RunnableFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	require.NoError(t, r.Stop())
	select {
	case <-r.Failed():
		t.Fatal("cancellation is not a failure")
	default:
	}
}
