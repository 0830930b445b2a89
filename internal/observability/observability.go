package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtvision/court-vision/internal/config"
	"github.com/courtvision/court-vision/internal/platform/logging"
)

type Options struct {
	// Profiling starts pyroscope and the pprof listener. The sync CLI
	// only traces.
	Profiling bool
}

type stopFunc func(ctx context.Context) error

type starter struct {
	name  string
	start func(config.Config, *logging.Logger) (stopFunc, error)
}

type component struct {
	name string
	stop stopFunc
}

// Stack holds the exporters started for one process.
type Stack struct {
	components []component
	logger     *logging.Logger
}

// Start brings up tracing and, when requested, profiling. Components that
// are disabled in cfg are skipped. On error the ones already running are
// stopped before returning.
func Start(cfg config.Config, logger *logging.Logger, opts Options) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Stack{logger: logger.Named("observability")}

	starters := []starter{{name: "uptrace", start: startTracing}}
	if opts.Profiling {
		starters = append(starters,
			starter{name: "pyroscope", start: startPyroscope},
			starter{name: "pprof", start: startPprof},
		)
	}

	for _, st := range starters {
		stop, err := st.start(cfg, s.logger)
		if err != nil {
			_ = s.Shutdown(context.Background())
			return nil, fmt.Errorf("start %s: %w", st.name, err)
		}
		if stop != nil {
			s.components = append(s.components, component{name: st.name, stop: stop})
		}
	}
	return s, nil
}

// Shutdown stops components in reverse start order.
func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}

	var errs []error
	for i := len(s.components) - 1; i >= 0; i-- {
		c := s.components[i]
		if err := c.stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", c.name, err))
		}
	}
	s.components = nil
	return errors.Join(errs...)
}

func (s *Stack) running() []string {
	names := make([]string, 0, len(s.components))
	for _, c := range s.components {
		names = append(names, c.name)
	}
	return names
}
