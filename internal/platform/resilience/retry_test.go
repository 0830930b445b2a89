package resilience

import (
	"context"
	"errors"
	"testing"
)

func TestRetryPolicy_RetriesOnlyRetryable(t *testing.T) {
	transient := errors.New("transient")
	fatal := errors.New("fatal")

	calls := 0
	err := RetryPolicy{MaxRetries: 3}.Do(context.Background(), func(err error) bool {
		return errors.Is(err, transient)
	}, func(int) error {
		calls++
		if calls < 3 {
			return transient
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Fatalf("expected success on third attempt, got err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryPolicy{MaxRetries: 3}.Do(context.Background(), func(err error) bool {
		return errors.Is(err, transient)
	}, func(int) error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) || calls != 1 {
		t.Fatalf("expected single fatal attempt, got err=%v calls=%d", err, calls)
	}
}

func TestRetryPolicy_ZeroRetries(t *testing.T) {
	calls := 0
	_ = RetryPolicy{}.Do(context.Background(), func(error) bool { return true }, func(int) error {
		calls++
		return errors.New("x")
	})
	if calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", calls)
	}
}
