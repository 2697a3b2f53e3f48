package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolDoReturnsValues(t *testing.T) {
	pool := NewPool(3, 4)
	defer pool.Close()

	v, err := pool.Do(context.Background(), func(context.Context) (any, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = pool.Do(context.Background(), func(context.Context) (any, error) { return nil, errors.New("failed") })
	assert.EqualError(t, err, "failed")
}

func TestPoolRunsEverySubmittedTask(t *testing.T) {
	pool := NewPool(4, 2)
	defer pool.Close()

	var ran int32
	results := make(chan Result, 20)
	for i := 0; i < 20; i++ {
		require.NoError(t, pool.Submit(context.Background(), Task{
			Fn: func(context.Context) (any, error) {
				atomic.AddInt32(&ran, 1)
				return nil, nil
			},
			ResultC: results,
		}))
	}
	for i := 0; i < 20; i++ {
		<-results
	}
	assert.Equal(t, int32(20), atomic.LoadInt32(&ran))
}

func TestPoolRejectsAfterClose(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Close()

	_, err := pool.Do(context.Background(), func(context.Context) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPoolDoHonoursCallerContext(t *testing.T) {
	pool := NewPool(1, 0)
	defer pool.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _ = pool.Do(context.Background(), func(context.Context) (any, error) {
			close(started)
			<-release
			return nil, nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := pool.Do(ctx, func(context.Context) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
}
