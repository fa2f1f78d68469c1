package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/togglepath/cache"
	"github.com/katalvlaran/togglepath/config"
	"github.com/katalvlaran/togglepath/input"
	"github.com/katalvlaran/togglepath/metrics"
	"github.com/katalvlaran/togglepath/puzzle"
	"github.com/katalvlaran/togglepath/solver"
)

type solveFlags struct {
	configPath  string
	day         int
	part        string
	sample      bool
	inputPath   string
	dataDir     string
	cacheDir    string
	noCache     bool
	workers     int
	metricsAddr string
}

func (a *app) solveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve every line of a day's input and print the summed minimum cost",
		Long: `Reads one puzzle per line, solves each independently and prints
"Solution to a: N" (toggle variant) and/or "Solution to b: N" (counter variant).

Settings come from --config (YAML or JSON), then TOGGLEPATH_* environment
variables, then flags. Exits non-zero on malformed input or when any instance
has no solution.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "config file (YAML or JSON)")
	fl.IntVar(&f.day, "day", 10, "puzzle day, selects data_dir/day<N>.txt")
	fl.StringVar(&f.part, "part", "both", "variant to solve: a, b or both")
	fl.BoolVar(&f.sample, "sample", false, "read the sample input day<N>_test.txt")
	fl.StringVar(&f.inputPath, "input", "", "read lines from this file instead of the data directory")
	fl.StringVar(&f.dataDir, "data-dir", "", "input directory (overrides data_dir)")
	fl.StringVar(&f.cacheDir, "cache-dir", "", "result cache directory (overrides cache_dir)")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable the result cache")
	fl.IntVar(&f.workers, "workers", 0, "instances solved concurrently (overrides workers)")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f solveFlags) error {
	// 1) Resolve configuration: file, env, then explicit flags.
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("day") {
		cfg.Day = f.day
	}
	if fl.Changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if fl.Changed("cache-dir") {
		cfg.CacheDir = f.cacheDir
	}
	if f.noCache {
		cfg.CacheDir = ""
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	variants, err := parts(f.part)
	if err != nil {
		return err
	}

	// 2) Load input lines.
	var lines []string
	if f.inputPath != "" {
		lines, err = input.ReadFile(f.inputPath)
	} else {
		kind := input.Puzzle
		if f.sample {
			kind = input.Test
		}
		a.logger.Info("loading input", zap.String("path", input.Path(cfg.DataDir, cfg.Day, kind)))
		lines, err = input.Load(cfg.DataDir, cfg.Day, kind)
	}
	if err != nil {
		return err
	}

	// 3) Optional collaborators.
	opts := []solver.Option{solver.WithLogger(a.logger)}
	if cfg.CacheDir != "" {
		store, err := cache.Open(cfg.CacheDir, a.logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				a.logger.Warn("closing cache", zap.Error(err))
			}
		}()
		opts = append(opts, solver.WithCache(store))
	}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		opts = append(opts, solver.WithMetrics(metrics.New(reg)))
		stop, err := a.serveMetrics(cfg.MetricsAddr, reg)
		if err != nil {
			return err
		}
		defer stop()
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 4) Solve each requested part in order.
	s := solver.New(cfg, opts...)
	var failed []error
	for _, v := range variants {
		sum, err := s.Run(ctx, v, lines)
		if err != nil {
			return fmt.Errorf("part %s: %w", partName(v), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Solution to %s: %d\n", partName(v), sum.Total)
		if err := sum.Err(); err != nil {
			failed = append(failed, fmt.Errorf("part %s: %w", partName(v), err))
		}
	}

	return errors.Join(failed...)
}

// serveMetrics exposes reg on addr/metrics and returns a shutdown func.
func (a *app) serveMetrics(addr string, reg *prometheus.Registry) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server", zap.Error(err))
		}
	}()
	a.logger.Info("serving metrics", zap.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

func parts(p string) ([]puzzle.Variant, error) {
	if p == "both" {
		return []puzzle.Variant{puzzle.Toggle, puzzle.Counter}, nil
	}
	v, ok := puzzle.ParseVariant(p)
	if !ok {
		return nil, fmt.Errorf("unknown part %q (want a, b or both)", p)
	}

	return []puzzle.Variant{v}, nil
}

func partName(v puzzle.Variant) string {
	if v == puzzle.Toggle {
		return "a"
	}
	return "b"
}
