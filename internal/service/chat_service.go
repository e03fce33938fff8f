package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wecareapp/wecare/internal/assistant"
	"github.com/wecareapp/wecare/internal/domain"
	"github.com/wecareapp/wecare/internal/session"
)

// ErrEmptyMessage is returned when Send is invoked with whitespace-only text.
// Nothing is appended and the capability is never called.
var ErrEmptyMessage = errors.New("empty message")

// Greeting is the welcome presentation shown when the transcript is empty.
// It is not part of the transcript itself, so clearing always returns the
// screen to this state.
const Greeting = "Hi! I'm your AI skin health assistant. I can help you understand skin " +
	"conditions, provide care tips, and answer your questions. How can I help you today?"

// QuickQuestions are suggested openers shown alongside the greeting.
var QuickQuestions = []string{
	"What causes acne?",
	"How to prevent wrinkles?",
	"Best moisturizer for dry skin?",
	"When to see a dermatologist?",
}

const fallbackReplyTemplate = "I'm having trouble reaching the assistant right now, " +
	"so here is some general guidance instead. Regarding %q: keep the area clean, " +
	"avoid harsh products, and consult a dermatologist for a proper diagnosis. " +
	"Please try asking again in a moment."

// defaultFallbackDelay is the one deterministic pause before a canned reply
// appears, standing in for "thinking" time when the capability is down.
const defaultFallbackDelay = time.Second

// ChatService maintains the session transcript and exchanges turns with the
// assistant capability. One send is outstanding at a time per screen (the
// input is disabled while in flight), so appends are strictly ordered.
type ChatService struct {
	assistant     assistant.Assistant
	fallbackDelay time.Duration
	logger        *slog.Logger
}

func NewChatService(a assistant.Assistant, logger *slog.Logger) *ChatService {
	return &ChatService{assistant: a, fallbackDelay: defaultFallbackDelay, logger: logger}
}

// Send appends the user's message immediately, submits the prior transcript
// plus the new message as one conversational turn, and appends exactly one
// assistant reply: the model's raw text on success, the canned echo reply on
// any failure. The returned message is the assistant's.
func (s *ChatService) Send(ctx context.Context, sess *session.Session, text string) (*domain.ChatMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	history := turnsFrom(sess.Messages())

	sess.AppendMessage(domain.ChatMessage{
		ID:      uuid.NewString(),
		Role:    domain.RoleUser,
		Content: trimmed,
		SentAt:  time.Now(),
	})

	content, err := s.assistant.Chat(ctx, history, trimmed)
	if err != nil {
		s.logger.Warn("capability call failed, using fallback reply", "session_id", sess.ID, "error", err)
		s.pause(ctx)
		content = fmt.Sprintf(fallbackReplyTemplate, trimmed)
	}

	reply := domain.ChatMessage{
		ID:      uuid.NewString(),
		Role:    domain.RoleAssistant,
		Content: content,
		SentAt:  time.Now(),
	}
	sess.AppendMessage(reply)
	return &reply, nil
}

// Clear resets the transcript; clearing twice in a row is harmless.
func (s *ChatService) Clear(sess *session.Session) {
	sess.ClearTranscript()
}

// pause waits the configured fallback delay, cut short if ctx ends first.
func (s *ChatService) pause(ctx context.Context) {
	if s.fallbackDelay <= 0 {
		return
	}
	t := time.NewTimer(s.fallbackDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func turnsFrom(messages []domain.ChatMessage) []assistant.Turn {
	turns := make([]assistant.Turn, 0, len(messages))
	for _, msg := range messages {
		turns = append(turns, assistant.Turn{Role: string(msg.Role), Content: msg.Content})
	}
	return turns
}
