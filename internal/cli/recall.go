package cli

import (
	"context"
	"fmt"
	"strings"
)

// History prints the stored messages of the current session's recent
// conversations, oldest conversation first.
func (a *App) History(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return
	}

	views, err := a.conversations.RecentConversations(ctx, a.sessionID, a.userID, a.config.RecallLimit, "")
	if err != nil {
		a.logger.Error(ctx, "failed to load history", "error", err.Error())
		fmt.Println("Failed to load history.")
		return
	}
	if len(views) == 0 {
		fmt.Println("No conversations found")
		return
	}

	for i := len(views) - 1; i >= 0; i-- {
		v := views[i]
		fmt.Printf("--- %s (%s) ---\n", v.CreatedAt.Format("2006-01-02 15:04:05"), v.ModelUsed)
		for _, msg := range v.Messages {
			fmt.Printf("%s: %s\n", strings.ToUpper(msg.Role), msg.Content)
		}
	}
}

// Summarize asks the active model for a digest of recent conversations and
// stores it on the newest one. "summary current" restricts recall to
// conversations held under the active model; the default covers all models.
func (a *App) Summarize(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return
	}

	modelFilter := ""
	if len(args) > 0 {
		switch args[0] {
		case "all":
		case "current":
			modelFilter = a.model
		default:
			fmt.Println("Usage: summary [all|current]")
			return
		}
	}

	views, err := a.conversations.RecentConversations(ctx, a.sessionID, a.userID, a.config.RecallLimit, modelFilter)
	if err != nil {
		a.logger.Error(ctx, "failed to load conversations", "error", err.Error())
		fmt.Println("Failed to load conversations.")
		return
	}
	if len(views) == 0 {
		fmt.Println("No conversations found")
		return
	}

	summary, err := a.currentClient().Summarize(ctx, views)
	if err != nil {
		fmt.Printf("Error occured with AI api: %s\n", err)
		return
	}

	if err := a.conversations.AttachSummary(ctx, views[0].ID, a.sessionID, a.userID, summary); err != nil {
		a.logger.Error(ctx, "failed to store summary", "error", err.Error())
	}

	fmt.Println(summary)
}
