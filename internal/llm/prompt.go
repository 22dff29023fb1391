package llm

import (
	"fmt"
	"strings"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/models"
)

// BuildSummaryPrompt renders past conversations into a summarization prompt.
// Each conversation is numbered, stamped with its creation time, and lists
// its messages as upper-cased ROLE: content lines.
func BuildSummaryPrompt(convs []models.ConversationView) string {
	texts := make([]string, 0, len(convs))
	for i, conv := range convs {
		var b strings.Builder
		fmt.Fprintf(&b, "Conversation %d (%s) \n", i+1, conv.CreatedAt.Format("2006-01-02 15:04:05"))
		for _, msg := range conv.Messages {
			fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(msg.Role), msg.Content)
		}
		texts = append(texts, b.String())
	}

	return fmt.Sprintf(`
Please provide a concise summary of the following conversations:
%s
Focus on key topics discussed, questions asked, and information provided.
Highlight any recurring themes or important points.
`, strings.Join(texts, "\n\n"))
}
