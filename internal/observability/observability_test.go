package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/courtvision/court-vision/internal/config"
	"github.com/courtvision/court-vision/internal/platform/logging"
)

func TestStart_DisabledComponentsAreSkipped(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "court-vision-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	stack, err := Start(cfg, logging.NewNop(), Options{Profiling: true})
	if err != nil {
		t.Fatalf("start observability: %v", err)
	}
	if running := stack.running(); len(running) != 0 {
		t.Fatalf("expected nothing running, got %v", running)
	}
	if err := stack.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStartTracing_EmptyDSN(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  ", ServiceName: "court-vision-sync"}

	stop, err := startTracing(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start tracing: %v", err)
	}
	if stop != nil {
		t.Fatal("expected tracing to stay off without a DSN")
	}
}

func TestStack_ShutdownReverseOrder(t *testing.T) {
	var order []string
	stack := &Stack{logger: logging.NewNop()}
	for _, name := range []string{"uptrace", "pyroscope", "pprof"} {
		stack.components = append(stack.components, component{name: name, stop: func(context.Context) error {
			order = append(order, name)
			return nil
		}})
	}

	if err := stack.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	want := []string{"pprof", "pyroscope", "uptrace"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected shutdown order %v", order)
		}
	}

	var nilStack *Stack
	if err := nilStack.Shutdown(context.Background()); err != nil {
		t.Fatalf("nil stack shutdown: %v", err)
	}
}

func TestPyroscopeConfig_Tags(t *testing.T) {
	got := pyroscopeConfig(config.Config{
		AppEnv:              config.EnvProd,
		ServiceName:         "court-vision-api",
		ServiceVersion:      "1.4.0",
		PyroscopeAppName:    "court-vision-api",
		PyroscopeUploadRate: 15 * time.Second,
	})

	if got.Tags["env"] != config.EnvProd || got.Tags["version"] != "1.4.0" {
		t.Fatalf("unexpected tags: %v", got.Tags)
	}
	if len(got.ProfileTypes) == 0 {
		t.Fatal("expected profile types")
	}
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from pprof index, got %d", rec.Code)
	}
}
