package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"    // loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/talentflow/recruiting-crm/internal/config"
	"github.com/talentflow/recruiting-crm/internal/database"
	"github.com/talentflow/recruiting-crm/internal/handler"
	"github.com/talentflow/recruiting-crm/internal/middleware"
	"github.com/talentflow/recruiting-crm/internal/queue"
	"github.com/talentflow/recruiting-crm/internal/repository"
	"github.com/talentflow/recruiting-crm/internal/router"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if cfg.SeedDemoData {
		if err := database.SeedDemoData(ctx, db, cfg.BcryptCost); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
	}

	// Repositories.
	clients := repository.NewClientRepo(db)
	recruiters := repository.NewRecruiterRepo(db)
	candidates := repository.NewCandidateRepo(db)
	vacancies := repository.NewVacancyRepo(db)
	applications := repository.NewApplicationRepo(db)
	payments := repository.NewPaymentRepo(db)
	pipeline := repository.NewPipelineRepo(db)
	earnings := repository.NewEarningsRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Old sessions accumulate; drop tokens expired for over a week.
	if n, err := tokens.PurgeExpired(ctx, 7*24*time.Hour); err != nil {
		log.Printf("refresh token purge failed: %v", err)
	} else if n > 0 {
		log.Printf("purged %d expired refresh tokens", n)
	}

	// Redis backs the response cache and the rate limiter; both degrade
	// to pass-through middleware when it is unreachable.
	rdb := config.NewRedisClient()

	// The payment log consumer reconnects on its own; it only stops
	// with the process.
	go func() {
		if err := queue.StartPaymentConsumer(); err != nil {
			log.Printf("payment consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterAPI(e, router.API{
		Clients:      handler.NewClientHandler(clients),
		Recruiters:   handler.NewRecruiterHandler(recruiters),
		Vacancies:    handler.NewVacancyHandler(vacancies),
		Candidates:   handler.NewCandidateHandler(candidates),
		Applications: handler.NewApplicationHandler(applications, candidates, vacancies, clients, recruiters, payments),
		Payments:     handler.NewPaymentHandler(payments, applications, candidates, vacancies, clients, recruiters),
		Pipeline:     handler.NewPipelineHandler(pipeline),
		Reports:      handler.NewReportHandler(earnings),
		Exports:      handler.NewExportHandler(pipeline),
		Users:        handler.NewUserHandler(cfg, users),
	}, cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
