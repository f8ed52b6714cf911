package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFrameLoopTick(t *testing.T) {
	h, store := newTestStore(t)
	h.SetDataRefi(numTanks.DatarefStr, 2)

	log := newMockLogger(t)
	d := NewQueueDispatcher(log, 4)
	w := NewWatcher(log, store, -1)
	w.Watch(numTanks)
	f := NewFrameLoop(log, d, w, -2)

	done := make(chan error, 1)
	go func() {
		done <- d.Do(context.Background(), func() { h.SetDataRefi(numTanks.DatarefStr, 4) })
	}()
	require.Eventually(t, func() bool { return len(d.(*queueDispatcher).jobs) == 1 }, time.Second, time.Millisecond)

	assert.Equal(t, float32(-2), f.Tick())
	require.NoError(t, <-done)
	assert.Equal(t, 1, f.Frames())

	snap := w.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 4, snap[0].Value, "jobs run before the watcher samples")
	log.AssertCalled(t, "Debugf", "Frame %d: %d jobs, %d changes", mock.Anything)
}

func TestFrameLoopDefaults(t *testing.T) {
	log := newMockLogger(t)
	f := NewFrameLoop(log, NewInlineDispatcher(), nil, 0)
	assert.Equal(t, float32(-1), f.Interval)

	for i := 0; i < 3; i++ {
		assert.Equal(t, float32(-1), f.Tick())
	}
	assert.Equal(t, 3, f.Frames())
	log.AssertNotCalled(t, "Debugf", mock.Anything, mock.Anything)
}
