package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/breachside/crew-api/internal/config"
	"github.com/breachside/crew-api/internal/engine"
	v1alpha1 "github.com/breachside/crew-api/internal/handlers/api/v1alpha1"
	creworch "github.com/breachside/crew-api/internal/orchestrators/crew"
	"github.com/breachside/crew-api/internal/pkg/idgen"
	redisclient "github.com/breachside/crew-api/internal/redis"
	cardsrepo "github.com/breachside/crew-api/internal/repositories/cards"
	crewlistrepo "github.com/breachside/crew-api/internal/repositories/crewlist"
	objectivesrepo "github.com/breachside/crew-api/internal/repositories/objectives"
)

var configPath string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the crew API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cardRepo, err := cardsrepo.NewMemoryRepositoryFromFile(cfg.Cards.DataPath)
	if err != nil {
		return err
	}

	client, err := redisclient.NewClient(cfg.Redis.Endpoint, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}()

	crewRepo, err := crewlistrepo.NewRedis(&crewlistrepo.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	rosterIDGen := idgen.NewPrefixed("hire")

	suggester, err := engine.NewSuggester(&engine.SuggesterConfig{IDGenerator: rosterIDGen})
	if err != nil {
		return err
	}

	counterCfg := &engine.CounterGeneratorConfig{IDGenerator: rosterIDGen}
	if cfg.Suggest.Seed != 0 {
		counterCfg.Rand = rand.New(rand.NewSource(cfg.Suggest.Seed))
		slog.Info("counter generation seeded", "seed", cfg.Suggest.Seed)
	}
	counterGen, err := engine.NewCounterGenerator(counterCfg)
	if err != nil {
		return err
	}

	orchestrator, err := creworch.New(&creworch.Config{
		CardRepo:          cardRepo,
		ObjectiveRepo:     objectivesrepo.NewStaticRepository(),
		CrewRepo:          crewRepo,
		Suggester:         suggester,
		CounterGen:        counterGen,
		IDGenerator:       idgen.NewPrefixed("crew"),
		RosterIDGenerator: rosterIDGen,
	})
	if err != nil {
		return err
	}

	handler, err := v1alpha1.New(&v1alpha1.Config{Service: orchestrator})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: mux,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "address", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, closing", "error", err.Error())
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
