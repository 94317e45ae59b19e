package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoll_DoneOnFirstAttempt(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := Poll(context.Background(), func(_ context.Context, _ int) (bool, error) {
		attempts++
		return true, nil
	}, WithInterval(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestPoll_DoneAfterSeveralAttempts(t *testing.T) {
	t.Parallel()
	var seen []int

	err := Poll(context.Background(), func(_ context.Context, attempt int) (bool, error) {
		seen = append(seen, attempt)
		return attempt == 3, nil
	}, WithInterval(time.Millisecond), WithMaxAttempts(5))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestPoll_ErrorStopsImmediately(t *testing.T) {
	t.Parallel()
	attempts := 0
	failure := errors.New("stack in failed state")

	err := Poll(context.Background(), func(_ context.Context, _ int) (bool, error) {
		attempts++
		return false, failure
	}, WithInterval(time.Millisecond), WithMaxAttempts(10))

	require.ErrorIs(t, err, failure)
	assert.Equal(t, 1, attempts)
}

func TestPoll_Exhausted(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := Poll(context.Background(), func(_ context.Context, _ int) (bool, error) {
		attempts++
		return false, nil
	}, WithInterval(time.Millisecond), WithMaxAttempts(4))

	require.ErrorIs(t, err, ErrAttemptsExhausted)
	assert.Equal(t, 4, attempts)
	assert.Contains(t, err.Error(), "gave up after 4 attempts")
}

func TestPoll_NoWaitAfterLastAttempt(t *testing.T) {
	t.Parallel()

	start := time.Now()
	err := Poll(context.Background(), func(_ context.Context, _ int) (bool, error) {
		return false, nil
	}, WithInterval(time.Hour), WithMaxAttempts(1))

	require.ErrorIs(t, err, ErrAttemptsExhausted)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestPoll_ZeroAttemptsStillChecksOnce(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := Poll(context.Background(), func(_ context.Context, _ int) (bool, error) {
		attempts++
		return true, nil
	}, WithMaxAttempts(0))

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestPoll_ContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	err := Poll(ctx, func(_ context.Context, _ int) (bool, error) {
		attempts++
		cancel()
		return false, nil
	}, WithInterval(time.Hour), WithMaxAttempts(3))

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	cfg := &Config{}

	WithMaxAttempts(7)(cfg)
	WithInterval(3 * time.Second)(cfg)

	assert.Equal(t, 7, cfg.MaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.Interval)
}
