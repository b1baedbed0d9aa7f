package speedtest

import (
	"context"
	"testing"
)

func TestRunFailsFastOnCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Run(ctx)
	if err == nil {
		t.Fatal("expected an error for a canceled context")
	}
	if result != nil {
		t.Fatalf("expected no result, got %#v", result)
	}
}
