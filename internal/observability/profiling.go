package observability

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/football-career/internal/config"
	"github.com/riskibarqy/football-career/internal/platform/logging"
)

// Profiling owns the optional pprof listener and the pyroscope agent.
// A zero value is valid and stops as a no-op.
type Profiling struct {
	debug    *http.Server
	profiler *pyroscope.Profiler
	logger   *logging.Logger
}

func StartProfiling(cfg config.Config, logger *logging.Logger) (*Profiling, error) {
	if logger == nil {
		logger = logging.Default()
	}
	p := &Profiling{logger: logger}

	if cfg.PyroscopeEnabled {
		profiler, err := pyroscope.Start(pyroscopeConfig(cfg))
		if err != nil {
			return nil, errors.Wrap(err, "start pyroscope")
		}
		p.profiler = profiler
		logger.Info("pyroscope enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)
	}

	if cfg.PprofEnabled {
		p.debug = &http.Server{
			Addr:              cfg.PprofAddr,
			Handler:           pprofMux(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func(srv *http.Server) {
			logger.Info("pprof server starting", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("pprof server failed", "error", err)
			}
		}(p.debug)
	}

	return p, nil
}

func (p *Profiling) Enabled() bool {
	return p != nil && (p.debug != nil || p.profiler != nil)
}

func (p *Profiling) Stop(ctx context.Context) error {
	if p == nil {
		return nil
	}

	var errs error
	if p.debug != nil {
		errs = errors.CombineErrors(errs, errors.Wrap(p.debug.Shutdown(ctx), "stop pprof"))
	}
	if p.profiler != nil {
		errs = errors.CombineErrors(errs, errors.Wrap(p.profiler.Stop(), "stop pyroscope"))
	}
	if errs == nil && p.Enabled() && p.logger != nil {
		p.logger.Info("profiling stopped")
	}
	return errs
}

func pyroscopeConfig(cfg config.Config) pyroscope.Config {
	return pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":     cfg.AppEnv,
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexDuration,
		},
	}
}

func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	return mux
}
