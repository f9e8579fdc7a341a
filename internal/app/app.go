package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ykvlv/coach-bot/internal/ai"
	"github.com/ykvlv/coach-bot/internal/config"
	"github.com/ykvlv/coach-bot/internal/conversation"
	"github.com/ykvlv/coach-bot/internal/scheduler"
	"github.com/ykvlv/coach-bot/internal/store"
	"github.com/ykvlv/coach-bot/internal/telegram"
)

// App owns the bot, the AI client and, once running, the store and scheduler.
type App struct {
	cfg    config.Config
	log    *zap.Logger
	bot    *tgbotapi.BotAPI
	ai     *ai.Client
	repo   store.Repo
	router *telegram.Router
	sched  *scheduler.Scheduler
}

// New connects to Telegram and builds the AI client. Storage is opened in Run.
func New(cfg config.Config, log *zap.Logger) (*App, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	client, err := ai.New(ai.Options{
		APIKey:   cfg.OpenRouterKey,
		Model:    cfg.AIModel,
		Endpoint: cfg.OpenRouterURL,
		Timeout:  cfg.AITimeout,
	})
	if err != nil {
		return nil, err
	}

	return &App{cfg: cfg, log: log, bot: bot, ai: client}, nil
}

// Run opens the store, starts the scheduler and the HTTP server, and handles
// updates until ctx is canceled or SIGINT/SIGTERM arrives.
func (a *App) Run(ctx context.Context) error {
	morning, evening := a.cfg.Schedule()
	loc := a.cfg.Location()
	a.log.Info("starting coach-bot",
		zap.String("bot", a.bot.Self.UserName),
		zap.String("http", a.cfg.HTTPAddr),
		zap.String("tz", loc.String()),
		zap.String("morning", morning.String()),
		zap.String("evening", evening.String()),
	)

	// Open SQLite and run migrations.
	repo, err := store.OpenSQLite(ctx, a.cfg.DBPath)
	if err != nil {
		a.log.Error("open sqlite failed", zap.Error(err))
		return err
	}
	a.repo = repo
	defer func() { _ = a.repo.Close() }()
	a.log.Info("sqlite ready", zap.String("path", a.cfg.DBPath))

	states := conversation.NewStateStore()
	a.router = telegram.NewRouter(a.bot, a.log)
	a.router.SetHandler(conversation.NewController(a.repo, a.ai, a.router, states, a.log))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs := scheduler.NewJobs(a.repo, a.ai, a.router, states, loc, a.log)
	a.sched = scheduler.New(jobs, a.log, morning, evening)
	if err := a.sched.Start(ctx); err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:         a.cfg.HTTPAddr,
		Handler:      newHTTPHandler(a.repo, a.sched, a.cfg.AdminToken, a.log),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 10 * time.Minute, // manual batch runs answer when done
	}
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")
			a.bot.StopReceivingUpdates()
			a.shutdown(httpSrv)
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}

func (a *App) shutdown(httpSrv *http.Server) {
	// Create a short-lived shutdown context and cancel it immediately after use.
	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shCtx); err != nil {
		a.log.Warn("http server shutdown error", zap.Error(err))
	}
	if err := a.sched.Stop(shCtx); err != nil {
		a.log.Warn("scheduler stop error", zap.Error(err))
	}
}

// Migrate opens the database, applies pending migrations and closes it.
func Migrate(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	repo, err := store.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	log.Info("migrations applied", zap.String("path", cfg.DBPath))
	return repo.Close()
}
