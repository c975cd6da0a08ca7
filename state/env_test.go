package state

import (
	"context"
	"testing"
	"time"
)

func TestEnvRoundTrip(t *testing.T) {
	ctx := ContextWithEnv(context.Background())

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("no environment in prepared context")
	}
	if env.Uptime() < 0 || env.Uptime() > time.Minute {
		t.Errorf("implausible uptime: %v", env.Uptime())
	}
	// same context returns the same environment
	if EnvFromContext(ctx) != env {
		t.Error("environment identity not stable")
	}
}

func TestEnvFromContextPanicsWhenAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on context without environment")
		}
	}()
	EnvFromContext(context.Background())
}
