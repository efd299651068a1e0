// Package chatrepo persists the assistant transcript with GORM.
package chatrepo

import (
	"context"
	"time"

	"medassist/internal/core/domain/model/chat"
	"medassist/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageDTO maps a chat message onto the chat_messages table.
type MessageDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"->"`
	Sender    string
	Text      string
	CreatedAt time.Time
}

// TableName overrides GORM's default naming.
func (MessageDTO) TableName() string {
	return "chat_messages"
}

// GormChatTranscript implements ports.ChatTranscript. Appends are
// autocommitted; the transcript never joins a unit of work.
type GormChatTranscript struct {
	db *gorm.DB
}

// NewGormChatTranscript creates the transcript store.
func NewGormChatTranscript(db *gorm.DB) *GormChatTranscript {
	return &GormChatTranscript{db: db}
}

// Append inserts a message at the end of the transcript.
func (t *GormChatTranscript) Append(ctx context.Context, m *chat.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := MessageDTO{
		ID:        m.ID().Google(),
		Sender:    string(m.Sender()),
		Text:      m.Text(),
		CreatedAt: m.CreatedAt(),
	}
	return t.db.WithContext(ctx).Create(&dto).Error
}

// List returns the transcript oldest first.
func (t *GormChatTranscript) List(ctx context.Context) ([]*chat.Message, error) {
	var dtos []MessageDTO
	if err := t.db.WithContext(ctx).Order("seq ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]*chat.Message, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromGoogle(dto.ID)
		if err != nil {
			return nil, err
		}
		m, err := chat.RestoreMessage(id, chat.Sender(dto.Sender), dto.Text, dto.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
