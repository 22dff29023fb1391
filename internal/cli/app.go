// Package cli implements the interactive terminal frontend: account setup,
// login, the chat loop and recall commands.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/config"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/llm"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/logging"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/repositories/repomanager"
	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/services"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	users         *services.UserService
	conversations *services.ConversationService
	clients       map[string]*llm.Client
	reader        *bufio.Reader

	userID    string
	username  string
	sessionID string
	model     string
	history   []models.Message
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, manager, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	clients := make(map[string]*llm.Client, len(c.Models))
	for _, mc := range c.Models {
		client, err := llm.NewClient(mc.Name, mc.Model, mc.BaseURL, mc.APIKey)
		if err != nil {
			db.Close()
			return nil, err
		}
		clients[mc.Name] = client
	}
	if _, ok := clients[c.DefaultModel]; !ok {
		db.Close()
		return nil, fmt.Errorf("default model %q is not configured", c.DefaultModel)
	}

	app := &App{
		config:        c,
		logger:        logger,
		db:            db,
		users:         services.NewUserService(db, manager),
		conversations: services.NewConversationService(db, manager, logger),
		clients:       clients,
		reader:        bufio.NewReader(os.Stdin),
		model:         c.DefaultModel,
	}
	app.resetSession()
	return app, nil
}

// resetSession starts a fresh session id and drops the in-memory history.
// Past conversations stay in the store under the old session id.
func (a *App) resetSession() {
	a.sessionID = uuid.NewString()
	a.history = nil
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

func (a *App) currentClient() *llm.Client {
	return a.clients[a.model]
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}
