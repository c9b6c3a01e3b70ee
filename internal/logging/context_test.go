package logging_test

import (
	"context"
	"testing"

	"github.com/alterxyz/gotelegraph/internal/logging"
)

func TestFromContextReturnsAttachedLogger(t *testing.T) {
	t.Parallel()

	logger := logging.New("error")
	ctx := logging.WithLogger(context.Background(), logger)

	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext did not return the attached logger")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got == nil {
		t.Error("FromContext returned nil for a bare context")
	}

	//nolint:staticcheck // Exercising the nil-context fallback deliberately.
	if got := logging.FromContext(nil); got == nil {
		t.Error("FromContext returned nil for a nil context")
	}
}

func TestWithLoggerNilContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("info")

	//nolint:staticcheck // Exercising the nil-context fallback deliberately.
	ctx := logging.WithLogger(nil, logger)
	if logging.FromContext(ctx) != logger {
		t.Error("WithLogger on nil context did not attach the logger")
	}
}
