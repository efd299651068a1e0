package memory

import (
	"context"
	"slices"

	"medassist/internal/core/domain/model/chat"
)

// ChatTranscript implements ports.ChatTranscript over a Database.
// Messages are immutable and shared without copying.
type ChatTranscript struct {
	db *Database
}

// NewChatTranscript creates the transcript view of db.
func NewChatTranscript(db *Database) *ChatTranscript {
	return &ChatTranscript{db: db}
}

// Append adds m at the end of the transcript.
func (t *ChatTranscript) Append(_ context.Context, m *chat.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	t.db.messages = append(t.db.messages, m)
	return nil
}

// List returns the transcript oldest first.
func (t *ChatTranscript) List(_ context.Context) ([]*chat.Message, error) {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()

	return slices.Clone(t.db.messages), nil
}
