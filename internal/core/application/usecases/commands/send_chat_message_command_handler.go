package commands

import (
	"context"
	"log/slog"
	"time"

	"medassist/internal/core/domain/model/chat"
	"medassist/internal/core/ports"
)

// ChatFallbackReply is what the assistant says when the completion service fails.
const ChatFallbackReply = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

// SendChatMessageCommandHandler appends the patient message to the transcript,
// asks the completion service for an answer and appends the answer.
// A failing completion service degrades to ChatFallbackReply.
type SendChatMessageCommandHandler struct {
	transcript ports.ChatTranscript
	completer  ports.ChatCompleter
	logger     *slog.Logger
	now        func() time.Time
}

// NewSendChatMessageCommandHandler creates the handler.
func NewSendChatMessageCommandHandler(
	transcript ports.ChatTranscript,
	completer ports.ChatCompleter,
	logger *slog.Logger,
) SendChatMessageCommandHandler {
	return SendChatMessageCommandHandler{
		transcript: transcript,
		completer:  completer,
		logger:     componentLogger(logger, "send_chat_message"),
		now:        time.Now,
	}
}

// Handle returns the bot reply appended to the transcript.
func (h SendChatMessageCommandHandler) Handle(ctx context.Context, cmd SendChatMessageCommand) (*chat.Message, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	history, err := h.transcript.List(ctx)
	if err != nil {
		return nil, err
	}

	question, err := chat.NewMessage(chat.SenderUser, cmd.Text(), h.now())
	if err != nil {
		return nil, err
	}
	if err = h.transcript.Append(ctx, question); err != nil {
		return nil, err
	}

	answer, err := h.completer.Complete(ctx, history, cmd.Text())
	if err != nil || answer == "" {
		h.logger.WarnContext(ctx, "chat completion failed, using fallback reply", "error", err)
		answer = ChatFallbackReply
	}

	reply, err := chat.NewMessage(chat.SenderBot, answer, h.now())
	if err != nil {
		return nil, err
	}
	if err = h.transcript.Append(ctx, reply); err != nil {
		return nil, err
	}

	return reply, nil
}
