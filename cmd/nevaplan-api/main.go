// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nevaplan/internal/ai"
	"nevaplan/internal/config"
	httptransport "nevaplan/internal/http"
	"nevaplan/internal/infra"
	"nevaplan/internal/modules/catalog"
	"nevaplan/internal/modules/trip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogSvc, err := buildCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("catalog init: %v", err)
	}
	log.Printf("catalog loaded: %d pois", catalogSvc.Len())

	var planCache *trip.Store
	if cfg.Redis.Addr != "" {
		planCache = trip.NewStore(infra.NewRedis(cfg.Redis.Addr), cfg.Cache.PlanTTL)
	}

	var gen trip.Generator
	credentialSet := cfg.Gemini.APIKey != ""
	if credentialSet {
		provider, err := ai.NewGeminiProvider(ctx, cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		resolver := ai.NewResolver(provider, cfg.Gemini.PreferredModel)
		gen = ai.NewClient(provider, resolver, cfg.Gemini.PreferredModel)
		log.Printf("gemini provider ready (api version %s)", cfg.Gemini.APIVersion)
	} else {
		log.Printf("GEMINI_API_KEY not set; itinerary requests will fail with a credential error")
	}

	tripSvc := trip.NewService(catalogSvc, gen, planCache, credentialSet)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(tripSvc, catalogSvc),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// buildCatalog prefers Postgres when a DSN is configured; the embedded
// dataset is the default source.
func buildCatalog(ctx context.Context, cfg config.Config) (*catalog.Service, error) {
	if cfg.DB.DSN == "" {
		return catalog.NewEmbeddedService()
	}
	pool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}
	return catalog.NewServiceFromStore(ctx, catalog.NewStore(pool))
}
