package host

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnMutationContextRunsWork(t *testing.T) {
	t.Parallel()

	h := New()
	defer h.Close()

	ran := false
	err := h.OnMutationContext(context.Background(), func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestOnMutationContextPropagatesError(t *testing.T) {
	t.Parallel()

	h := New()
	defer h.Close()

	boom := errors.New("boom")
	err := h.OnMutationContext(context.Background(), func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestOnMutationContextSerializes(t *testing.T) {
	t.Parallel()

	h := New()
	defer h.Close()

	var mu sync.Mutex
	var order []int

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = h.OnMutationContext(context.Background(), func() error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}(i)
	}
	wg.Wait()

	assert.Len(t, order, 8)
}

func TestExclusiveBlocksReaders(t *testing.T) {
	t.Parallel()

	h := New()
	defer h.Close()

	value := 0
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_ = h.OnMutationContext(context.Background(), func() error {
			return h.Exclusive(func() error {
				close(started)
				<-release
				value = 42
				return nil
			})
		})
	}()

	<-started
	close(release)

	// the read phase cannot start until the exclusive mutation commits
	err := h.Read(context.Background(), func() error {
		assert.Equal(t, 42, value)
		return nil
	})
	require.NoError(t, err)
}

func TestCloseRejectsWork(t *testing.T) {
	t.Parallel()

	h := New()
	h.Close()

	// the quit path may race the task channel; retry until the worker is gone
	require.Eventually(t, func() bool {
		err := h.OnMutationContext(context.Background(), func() error { return nil })
		return errors.Is(err, ErrClosed)
	}, time.Second, 10*time.Millisecond)
}

func TestReadHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	h := New()
	defer h.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Read(ctx, func() error {
		t.Fatal("read phase ran with cancelled context")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
