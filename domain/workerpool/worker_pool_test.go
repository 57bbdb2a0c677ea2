package workerpool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/swapquery/domain/workerpool"
)

func TestDispatcherRun(t *testing.T) {
	dispatcher := workerpool.NewDispatcher[int](3)

	var (
		running    atomic.Int32
		maxRunning atomic.Int32
	)

	jobs := make([]workerpool.Job[int], 0, 10)
	for i := 0; i < 10; i++ {
		i := i
		jobs = append(jobs, workerpool.Job[int]{Task: func(ctx context.Context) (int, error) {
			current := running.Add(1)
			defer running.Add(-1)

			for {
				observed := maxRunning.Load()
				if current <= observed || maxRunning.CompareAndSwap(observed, current) {
					break
				}
			}

			if i == 4 {
				return 0, errors.New("test error")
			}
			return i * i, nil
		}})
	}

	results := dispatcher.Run(context.Background(), jobs)

	require.Len(t, results, 10)
	for i, result := range results {
		if i == 4 {
			require.EqualError(t, result.Err, "test error")
			continue
		}
		require.NoError(t, result.Err)
		require.Equal(t, i*i, result.Result)
	}

	require.LessOrEqual(t, maxRunning.Load(), int32(3))
}

func TestDispatcherRun_Cancelled(t *testing.T) {
	dispatcher := workerpool.NewDispatcher[int](1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := dispatcher.Run(ctx, []workerpool.Job[int]{
		{Task: func(ctx context.Context) (int, error) { calls.Add(1); return 1, nil }},
		{Task: func(ctx context.Context) (int, error) { calls.Add(1); return 2, nil }},
	})

	require.Equal(t, int32(0), calls.Load())
	for _, result := range results {
		require.ErrorIs(t, result.Err, context.Canceled)
	}
}

func TestDispatcherRun_NoJobs(t *testing.T) {
	require.Empty(t, workerpool.NewDispatcher[int](0).Run(context.Background(), nil))
}
