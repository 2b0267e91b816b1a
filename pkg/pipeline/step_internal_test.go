package pipeline

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-linereverser/pkg/pipeline/model"
)

func TestRunOneToOne(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		concurrent int
	}{
		"sequential":     {concurrent: 1},
		"sequential v2":  {concurrent: 0},
		"concurrent 2":   {concurrent: 2},
		"concurrent 100": {concurrent: 100},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			input := &model.Step[int]{Output: createInputChan(t, 10)}
			output := &model.Step[int]{Output: make(chan int), Details: &model.StepInfo{Concurrent: tc.concurrent}}
			got := make(chan []int, 1)

			go func() {
				got <- processOutputChan(t, output.Output)
			}()

			var outputs atomic.Int64
			go func() {
				defer close(output.Output)
				err := runOneToOne(ctx, input, output, func(_ context.Context, i int) (int, error) {
					return i * 2, nil
				}, func(_, _ time.Duration) error {
					outputs.Add(1)

					return nil
				})
				assert.NoError(t, err)
			}()

			assert.ElementsMatch(t, []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}, <-got)
			assert.Equal(t, int64(10), outputs.Load())
		})
	}
}

func TestRunOneToOneError(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		concurrent int
	}{
		"sequential":   {concurrent: 1},
		"concurrent 2": {concurrent: 2},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			input := &model.Step[int]{Output: createInputChanWithContext(t, ctx, 10)}
			output := &model.Step[int]{Output: make(chan int), Details: &model.StepInfo{Concurrent: tc.concurrent}}

			go func() {
				processOutputChan(t, output.Output)
			}()

			err := runOneToOne(ctx, input, output, func(_ context.Context, i int) (int, error) {
				if i == 5 {
					return 0, assert.AnError
				}

				return i, nil
			}, nil)
			close(output.Output)
			assert.ErrorIs(t, err, assert.AnError)
		})
	}
}

func TestRunOneToOneCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	// never sends nor closes, only the context can stop the step
	input := &model.Step[int]{Output: make(chan int)}
	output := &model.Step[int]{Output: make(chan int), Details: &model.StepInfo{Concurrent: 1}}

	err := runOneToOne(ctx, input, output, func(_ context.Context, i int) (int, error) {
		return i, nil
	}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
