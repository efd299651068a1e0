package genai

import (
	"context"

	"medassist/internal/core/domain/model/chat"

	genaisdk "google.golang.org/genai"
)

const chatInstruction = "You are MedAssist AI, a friendly healthcare assistant. " +
	"Answer health questions in plain language, keep answers short, " +
	"never give a diagnosis and suggest seeing a doctor when symptoms sound serious."

// Complete implements ports.ChatCompleter. The transcript is sent as
// alternating user and model turns followed by the new message.
func (c *Client) Complete(ctx context.Context, history []*chat.Message, message string) (string, error) {
	contents := make([]*genaisdk.Content, 0, len(history)+1)
	for _, m := range history {
		var role genaisdk.Role = genaisdk.RoleModel
		if m.IsFromUser() {
			role = genaisdk.RoleUser
		}
		contents = append(contents, genaisdk.NewContentFromText(m.Text(), role))
	}
	contents = append(contents, genaisdk.NewContentFromText(message, genaisdk.RoleUser))

	return c.generate(ctx, contents, &genaisdk.GenerateContentConfig{
		SystemInstruction: genaisdk.NewContentFromText(chatInstruction, ""),
	})
}
