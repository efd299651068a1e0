package queries

import (
	"context"
	"errors"
	"time"

	"medassist/internal/core/domain/model/chat"
	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/ports"
	"medassist/internal/pkg/guard"
)

var ErrGetChatTranscriptQueryIsNotConstructed = errors.New(
	"GetChatTranscriptQuery must be created via NewGetChatTranscriptQuery constructor",
)

// GetChatTranscriptQuery retrieves the assistant conversation.
type GetChatTranscriptQuery struct {
	guard guard.ConstructorGuard
}

// NewGetChatTranscriptQuery creates the query.
func NewGetChatTranscriptQuery() GetChatTranscriptQuery {
	return GetChatTranscriptQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetChatTranscriptQuery) Validate() error {
	return q.guard.Validate(ErrGetChatTranscriptQueryIsNotConstructed)
}

// ChatMessageView is one transcript entry.
type ChatMessageView struct {
	ID        kernel.UUID
	Sender    chat.Sender
	Text      string
	CreatedAt time.Time
}

// GetChatTranscriptQueryHandler reads the transcript.
type GetChatTranscriptQueryHandler struct {
	transcript ports.ChatTranscript
}

// NewGetChatTranscriptQueryHandler creates the handler.
func NewGetChatTranscriptQueryHandler(transcript ports.ChatTranscript) GetChatTranscriptQueryHandler {
	return GetChatTranscriptQueryHandler{transcript: transcript}
}

// Handle returns the transcript oldest first.
func (h GetChatTranscriptQueryHandler) Handle(ctx context.Context, query GetChatTranscriptQuery) ([]ChatMessageView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	messages, err := h.transcript.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ChatMessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, ChatMessageView{
			ID:        m.ID(),
			Sender:    m.Sender(),
			Text:      m.Text(),
			CreatedAt: m.CreatedAt(),
		})
	}
	return views, nil
}
