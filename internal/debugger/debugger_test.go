package debugger

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fakeAttach(t *testing.T, after int32) *atomic.Int32 {
	t.Helper()
	calls := &atomic.Int32{}
	previous := attached
	attached = func() bool {
		return calls.Add(1) > after
	}
	t.Cleanup(func() { attached = previous })
	return calls
}

func TestWaitForAttach_AlreadyAttached(t *testing.T) {
	fakeAttach(t, 0)
	assert.True(t, WaitForAttach(context.Background(), 0, 0))
	assert.True(t, Attached())
}

func TestWaitForAttach_NoTimeout(t *testing.T) {
	calls := fakeAttach(t, 100)
	assert.False(t, WaitForAttach(context.Background(), 0, time.Millisecond))
	assert.Equal(t, int32(1), calls.Load())
}

func TestWaitForAttach_AttachesWhileWaiting(t *testing.T) {
	fakeAttach(t, 3)
	assert.True(t, WaitForAttach(context.Background(), time.Minute, time.Millisecond))
}

func TestWaitForAttach_TimesOut(t *testing.T) {
	fakeAttach(t, 1_000_000)
	start := time.Now()
	assert.False(t, WaitForAttach(context.Background(), 20*time.Millisecond, time.Millisecond))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWaitForAttach_ContextCancelled(t *testing.T) {
	fakeAttach(t, 1_000_000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, WaitForAttach(ctx, time.Minute, time.Millisecond))
}
