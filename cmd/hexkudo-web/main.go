package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/hexkudo/internal/adapters/http"
	"svw.info/hexkudo/internal/builder"
	"svw.info/hexkudo/internal/config"
	"svw.info/hexkudo/internal/hint"
	"svw.info/hexkudo/internal/infrastructure/storage"
	"svw.info/hexkudo/internal/pathgen"
	"svw.info/hexkudo/internal/solver"
	"svw.info/hexkudo/internal/usecase"
	"svw.info/hexkudo/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func main() {
	cfgPath := flag.String("config", "", "TOML config file (flags override)")
	addr := flag.String("addr", "", "listen address")
	persist := flag.String("persist-path", "", "save directory")
	levelStr := flag.String("log-level", "", "debug|info|warn|error")
	solverKind := flag.String("solver", "propagate", "solver strategy: propagate|backtrack")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			slog.Error("config load failed", "path", *cfgPath, "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *persist != "" {
		cfg.PersistPath = *persist
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}

	lvl := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(cfg.PersistPath, 0o755)

	s := solver.NewWithOptions(solver.Options{
		MaxNodes:    cfg.Engine.SolverMaxNodes,
		NoPropagate: strings.EqualFold(strings.TrimSpace(*solverKind), "backtrack"),
	})
	gen := pathgen.New()
	gen.MaxRestarts = cfg.Engine.PathRestarts
	b := builder.New(gen, s, builder.Options{MaxAttempts: cfg.Engine.BuilderAttempts})
	v := validator.New()
	st := storage.NewFS(cfg.PersistPath)
	hin := hint.NewForced()
	uc := usecase.NewService(s, b, v, hin, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "persist", cfg.PersistPath, "solver", *solverKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
