package resilience

import (
	"testing"
	"time"
)

func TestCircuitBreakerConfig_WithDefaults(t *testing.T) {
	got := CircuitBreakerConfig{Enabled: false, OpenTimeout: -time.Second}.WithDefaults()

	if got.Enabled {
		t.Fatal("expected Enabled to be preserved")
	}
	if got.FailureThreshold != defaultFailureThreshold || got.OpenTimeout != defaultOpenTimeout || got.HalfOpenMaxReq != defaultHalfOpenMaxReq {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestCircuitBreakerConfig_Validate(t *testing.T) {
	bad := []CircuitBreakerConfig{
		{FailureThreshold: 0, OpenTimeout: time.Second, HalfOpenMaxReq: 1},
		{FailureThreshold: 1, OpenTimeout: 0, HalfOpenMaxReq: 1},
		{FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxReq: 0},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", cfg)
		}
	}
}
