package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linhnt-hub/reflex-flash-cards/internal/config"
	"github.com/linhnt-hub/reflex-flash-cards/internal/repository"
	"github.com/linhnt-hub/reflex-flash-cards/internal/service"
	"github.com/linhnt-hub/reflex-flash-cards/internal/storage/db"
	"github.com/linhnt-hub/reflex-flash-cards/internal/tui"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func setupRepository(cfg *config.Config) (repository.DeckRepositoryI, func(), error) {
	switch cfg.Storage.Backend {
	case "bolt":
		repo, err := repository.NewBoltRepository(cfg.Storage.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { repo.Close() }, nil
	case "postgres":
		conn, err := db.InitDB(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewCardsRepository(conn)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return repo, func() { conn.Close() }, nil
	default:
		return repository.NewFileRepository(cfg.Storage.DataFile), func() {}, nil
	}
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	repo, closeRepo, err := setupRepository(cfg)
	if err != nil {
		logger.Fatal("failed init storage", zap.Error(err))
	}
	defer closeRepo()

	services := service.InitServices(repo, logger)
	services.Deck.Load(context.Background())

	app := tui.NewApp(services.Session)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logger.Fatal("failed running ui", zap.Error(err))
	}
}
