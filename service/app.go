package service

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"noteboard/app/repositories"
	"noteboard/app/routes"
	"noteboard/app/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// RunAppServer starts the note service: web views and the GraphQL API on
// one port. DATABASE_URL selects the Postgres store; without it the
// embedded Badger store at dbPath is used.
func RunAppServer(args []string) {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	repo, closeStore, err := openStore(sugar)
	if err != nil {
		sugar.Fatalw("failed to open store", "error", err)
	}
	defer closeStore()

	svc := services.NewNoteService(repo)
	router, err := routes.SetupRoutes(svc, sugar, "")
	if err != nil {
		sugar.Fatalw("failed to set up routes", "error", err)
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("starting note service", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("shutdown error", "error", err)
	}
}

func openStore(sugar *zap.SugaredLogger) (repositories.NoteRepository, func(), error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := repositories.OpenPostgres(dsn)
		if err != nil {
			return nil, nil, err
		}
		sugar.Info("using postgres store")
		closeStore := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return repositories.NewGormNoteRepository(db), closeStore, nil
	}

	db, err := repositories.OpenBadger(dbPath)
	if err != nil {
		return nil, nil, err
	}
	sugar.Infow("using embedded badger store", "path", dbPath)
	return repositories.NewBadgerNoteRepository(db), func() { db.Close() }, nil
}
