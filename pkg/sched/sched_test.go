package sched

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealTimerFires(t *testing.T) {
	done := make(chan struct{})
	Real(nil).AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestRealTimerStopAfterQueue(t *testing.T) {
	queued := make(chan func(), 1)
	s := Real(DispatchFunc(func(fn func()) { queued <- fn }))

	var fired atomic.Bool
	timer := s.AfterFunc(time.Millisecond, func() { fired.Store(true) })

	var fn func()
	select {
	case fn = <-queued:
	case <-time.After(time.Second):
		t.Fatal("callback was not dispatched")
	}

	assert.True(t, timer.Stop(), "stop should win over a queued callback")
	fn()
	assert.False(t, fired.Load())
}

func TestLoopRunsInOrder(t *testing.T) {
	loop := NewLoop(nil)
	defer loop.Close()

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		loop.Dispatch(func() { got = append(got, i) })
	}
	require.True(t, loop.Do(func() {}))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestLoopSurvivesPanic(t *testing.T) {
	loop := NewLoop(nil)
	defer loop.Close()

	loop.Dispatch(func() { panic("boom") })
	ran := false
	require.True(t, loop.Do(func() { ran = true }))
	assert.True(t, ran)
}

func TestLoopClose(t *testing.T) {
	loop := NewLoop(nil)
	loop.Close()
	loop.Close()

	assert.False(t, loop.Do(func() {}))
}

func TestRealSchedulerOnLoop(t *testing.T) {
	loop := NewLoop(nil)
	defer loop.Close()

	done := make(chan struct{})
	Real(loop).AfterFunc(0, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not run timer callback")
	}
}
