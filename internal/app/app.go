// Package app assembles the resume bot: configuration, logging,
// database, file store, handlers, and the optional digest scheduler.
package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"resumebot/core/database"
	"resumebot/core/logger"
	tg "resumebot/core/telegram"
	"resumebot/core/telegram/router"
	"resumebot/internal/handlers"
	"resumebot/internal/resume"
	"resumebot/internal/scheduler"
	"resumebot/internal/service"
	"resumebot/internal/session"
	"resumebot/internal/storage"
)

// App holds the assembled components for the running bot.
type App struct {
	cfg      *Config
	registry *tg.Registry
	handler  *handlers.Handler
	svc      *service.Service
	db       *sqlx.DB
	digest   *scheduler.Digest
}

// New initialises logging, connects the database, runs migrations, and
// wires the handler set into a registry.
func New(cfg *Config) (*App, error) {
	if err := logger.InitLogger(&cfg.Core); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(cfg.Database); err != nil {
		db.Close()
		return nil, err
	}

	resumes, err := resume.NewStore(cfg.Resume.Dir, map[resume.Variant]string{
		resume.VariantUz:  cfg.Resume.UzFile,
		resume.VariantEng: cfg.Resume.EngFile,
		resume.VariantRus: cfg.Resume.RusFile,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	svc := service.New(storage.NewRepository(db))
	sessions := session.NewManager()
	handler := handlers.New(svc, sessions, resumes, cfg.Core.Telegram.AdminID, handlers.ContactLinks{
		TelegramURL: cfg.Contact.TelegramURL,
		LinkedInURL: cfg.Contact.LinkedInURL,
	})

	registry := tg.NewRegistry()
	handler.Register(registry)

	return &App{
		cfg:      cfg,
		registry: registry,
		handler:  handler,
		svc:      svc,
		db:       db,
	}, nil
}

// botNotifier adapts the bot to the scheduler's Notifier.
type botNotifier struct {
	bot *tele.Bot
}

func (n botNotifier) Notify(userID int64, text string) error {
	_, err := n.bot.Send(&tele.User{ID: userID}, text)
	return err
}

// TelegramRunOptions builds the full run configuration for RunTelegram.
func (a *App) TelegramRunOptions() tg.RunOptions {
	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{
		AdminID:       a.cfg.Core.Telegram.AdminID,
		OnAdminReject: a.handler.NoAccess,
	})
	routes = append(routes, router.CallbackRoute(a.registry, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(a.handler, a.registry, router.TextOptions{})...)

	return tg.RunOptions{
		Config:      &a.cfg.Core,
		Registry:    a.registry,
		Middlewares: tg.DefaultMiddlewares(),
		Routes:      routes,
		OnStart:     a.onStart,
		OnStop:      a.onStop,
	}
}

func (a *App) onStart(_ context.Context, rt tg.Runtime) error {
	if !a.cfg.Digest.Enabled {
		return nil
	}
	digest, err := scheduler.NewDigest(a.svc, botNotifier{bot: rt.Bot}, a.cfg.Core.Telegram.AdminID, a.cfg.Digest.At)
	if err != nil {
		return err
	}
	a.digest = digest
	a.digest.Start()
	return nil
}

func (a *App) onStop(context.Context, tg.Runtime) error {
	if a.digest != nil {
		a.digest.Stop()
	}
	return nil
}

// Close releases resources held by the app.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logger.DB.Warn("db close failed", slog.String("err", err.Error()))
		}
	}
}
