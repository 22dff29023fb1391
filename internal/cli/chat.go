package cli

import (
	"context"
	"fmt"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
)

// Chat runs one turn: store the user message, ask the model, store and print
// the reply. A provider failure becomes an assistant message so the exchange
// stays visible in the history.
func (a *App) Chat(ctx context.Context, content string) {
	if _, err := a.conversations.AppendMessage(ctx, a.sessionID, a.userID, a.model, models.RoleUser, content); err != nil {
		a.logger.Error(ctx, "failed to store user message", "error", err.Error())
		fmt.Println("Failed to store your message.")
		return
	}
	a.history = append(a.history, models.Message{Role: models.RoleUser, Content: content})

	reply, err := a.currentClient().Reply(ctx, a.history)
	if err != nil {
		reply = fmt.Sprintf("Error occured with AI api: %s", err)
	}

	if _, err := a.conversations.AppendMessage(ctx, a.sessionID, a.userID, a.model, models.RoleAssistant, reply); err != nil {
		a.logger.Error(ctx, "failed to store assistant message", "error", err.Error())
	}
	a.history = append(a.history, models.Message{Role: models.RoleAssistant, Content: reply})

	fmt.Println(reply)
}

// SwitchModel changes the active model. The running conversation continues;
// only new messages are attributed to the new model.
func (a *App) SwitchModel(name string) {
	if _, ok := a.clients[name]; !ok {
		fmt.Printf("Unknown model: %s (try 'models')\n", name)
		return
	}
	a.model = name
	fmt.Printf("Switched to %s\n", name)
}

// ListModels prints the configured model roster.
func (a *App) ListModels() {
	for name := range a.clients {
		marker := " "
		if name == a.model {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
}

// ClearChat starts a new session. Old messages stay in the store under the
// previous session id.
func (a *App) ClearChat() {
	a.resetSession()
	fmt.Println("Chat cleared.")
}
