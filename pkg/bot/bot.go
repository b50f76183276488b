// Package bot is the Telegram transport around the schedule engine: a
// webhook server, command handlers, and per-chat group selection. It
// contains no timetable logic of its own.
package bot

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Dima111000/shedule-zsm-1/pkg/schedule"
	"github.com/Dima111000/shedule-zsm-1/pkg/scraper"
)

const webhookPath = "/webhook"

// Config is the bot's environment-derived settings.
type Config struct {
	Token      string
	WebhookURL string
	Port       string
	PageSize   int
}

// ConfigFromEnv reads BOT_TOKEN, WEBHOOK_URL, PORT and ITEMS_PER_PAGE.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Token:      os.Getenv("BOT_TOKEN"),
		WebhookURL: os.Getenv("WEBHOOK_URL"),
		Port:       os.Getenv("PORT"),
		PageSize:   5,
	}
	if cfg.Token == "" {
		return Config{}, errors.New("BOT_TOKEN is not set")
	}
	if cfg.WebhookURL == "" {
		return Config{}, errors.New("WEBHOOK_URL is not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := os.Getenv("ITEMS_PER_PAGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	return cfg, nil
}

// Bot wires the Telegram API to the schedule engine.
type Bot struct {
	api      *tgbotapi.BotAPI
	cfg      Config
	dir      *scraper.Directory
	client   *scraper.Client
	engine   *schedule.Engine
	sessions *SessionStore
	log      *zap.Logger
}

// New authorizes against the Telegram API and assembles the bot.
func New(cfg Config, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	logger.Info("authorized", zap.String("username", api.Self.UserName))

	dir, err := scraper.NewDirectory()
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:      api,
		cfg:      cfg,
		dir:      dir,
		client:   scraper.NewClient(),
		engine:   schedule.NewEngine(),
		sessions: NewSessionStore(),
		log:      logger,
	}, nil
}

// Run registers the webhook and command menu, then serves updates until
// the HTTP server dies.
func (b *Bot) Run() error {
	wh, err := tgbotapi.NewWebhook(b.cfg.WebhookURL + webhookPath)
	if err != nil {
		return err
	}
	if _, err := b.api.Request(wh); err != nil {
		return err
	}
	b.log.Info("webhook set", zap.String("url", b.cfg.WebhookURL+webhookPath))

	if _, err := b.api.Request(commandMenu()); err != nil {
		b.log.Warn("failed to register command menu", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.HandleFunc(webhookPath, b.handleWebhook)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// Health endpoint; hosting platforms ping it to keep the dyno warm.
		w.WriteHeader(http.StatusOK)
	})

	b.log.Info("listening", zap.String("port", b.cfg.Port))
	return http.ListenAndServe(":"+b.cfg.Port, mux)
}

// handleWebhook decodes one Telegram update and hands it off. Handling
// runs in its own goroutine so a slow schedule fetch never blocks the
// next webhook delivery.
func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		b.log.Warn("failed to decode update", zap.Error(err))
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	go b.handleUpdate(update)

	w.WriteHeader(http.StatusOK)
}

func commandMenu() tgbotapi.SetMyCommandsConfig {
	return tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Main menu"},
		tgbotapi.BotCommand{Command: "setgroup", Description: "Pick your group"},
		tgbotapi.BotCommand{Command: "bells", Description: "Bell schedule"},
		tgbotapi.BotCommand{Command: "schedule", Description: "Pick a day"},
		tgbotapi.BotCommand{Command: "today", Description: "Today's lessons"},
		tgbotapi.BotCommand{Command: "current", Description: "What lesson is on now"},
		tgbotapi.BotCommand{Command: "profile", Description: "Your selected group"},
		tgbotapi.BotCommand{Command: "help", Description: "Help"},
	)
}
