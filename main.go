package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lab1702/cellspread/logger"
	"github.com/lab1702/cellspread/server"
	"github.com/sirupsen/logrus"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	port := flag.String("port", envOr("SPREAD_PORT", "8080"), "Server port")
	defsPath := flag.String("defs", "data/warheads.json", "Warhead definitions file")
	scenarioPaths := flag.String("scenario", "data/scenario.json", "Comma separated scenario files")
	replayOut := flag.String("replay-out", "", "Write a msgpack replay of a headless run to this file")
	verify := flag.String("verify", "", "Verify a replay file against the first scenario and exit")
	headless := flag.Bool("headless", false, "Run scenarios to completion without serving")
	geometry := flag.Bool("geometry", false, "Record impact geometry on the debug overlay")
	debug := flag.Bool("debug-impacts", false, "Log every resolved hit")
	flag.Parse()

	logger.Init()
	log := logger.Component("main")

	server.DebugImpacts = *debug
	cfg := server.NewConfig()
	cfg.CombatGeometry = *geometry

	defs, err := server.LoadDefinitions(*defsPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load warhead definitions")
	}
	scenarios, err := loadScenarios(*scenarioPaths)
	if err != nil {
		log.WithError(err).Fatal("failed to load scenarios")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case *verify != "":
		if err := verifyReplay(ctx, *verify, scenarios[0], defs, cfg); err != nil {
			log.WithError(err).Fatal("replay verification failed")
		}
		log.WithField("replay", *verify).Info("replay verified")
	case *headless:
		if err := runHeadless(ctx, defs, cfg, scenarios, *replayOut); err != nil {
			log.WithError(err).Fatal("headless run failed")
		}
	default:
		if err := serve(ctx, *port, defs, cfg, scenarios[0]); err != nil {
			log.WithError(err).Fatal("server failed")
		}
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func loadScenarios(paths string) ([]*server.Scenario, error) {
	var scenarios []*server.Scenario
	for _, p := range splitList(paths) {
		sc, err := server.LoadScenario(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	if len(scenarios) == 0 {
		return nil, errNoScenario
	}
	return scenarios, nil
}

func verifyReplay(ctx context.Context, path string, sc *server.Scenario, defs server.Definitions, cfg server.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return server.VerifyReplay(ctx, sc, defs, cfg, f)
}

func runHeadless(ctx context.Context, defs server.Definitions, cfg server.Config, scenarios []*server.Scenario, replayOut string) error {
	results, err := server.RunScenarios(ctx, defs, cfg, scenarios)
	if err != nil {
		return err
	}

	for _, r := range results {
		logger.Component("main").WithFields(logrus.Fields{
			"scenario":  r.Scenario,
			"ticks":     r.Ticks,
			"impacts":   len(r.Records),
			"survivors": len(r.Survivors),
		}).Info("scenario summary")
	}

	if replayOut == "" {
		return nil
	}
	f, err := os.Create(replayOut)
	if err != nil {
		return err
	}
	if err := server.WriteReplay(f, results[0].Scenario, results[0].Records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func serve(ctx context.Context, port string, defs server.Definitions, cfg server.Config, sc *server.Scenario) error {
	log := logger.Component("main")

	sim, err := server.NewSimulation(sc, defs, cfg)
	if err != nil {
		return err
	}

	// Create simulation server
	simServer := server.NewServer(sim, cfg)
	go simServer.Run()

	mux := http.NewServeMux()

	// Serve static files from the static subdirectory
	fsys, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return err
	}
	mux.Handle("/", http.FileServer(http.FS(fsys)))
	simServer.Routes(mux)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.WithField("scenario", sc.Name).Infof("Server running at http://localhost:%s", port)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		simServer.Shutdown()
		return err
	case <-ctx.Done():
	}
	log.Info("Shutting down server...")

	// Create a context with timeout for graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Signal simulation server to stop background goroutines
	simServer.Shutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("server shutdown error")
	}

	log.Info("Server stopped")
	return nil
}
