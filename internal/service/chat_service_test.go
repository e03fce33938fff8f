package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wecareapp/wecare/internal/domain"
	"github.com/wecareapp/wecare/internal/session"
)

func newTestChatService(stub *stubAssistant) *ChatService {
	svc := NewChatService(stub, slog.Default())
	svc.fallbackDelay = 0 // keep tests fast; the delay is presentation only
	return svc
}

func TestSendAppendsUserThenAssistant(t *testing.T) {
	stub := &stubAssistant{chatText: "Acne is usually caused by clogged pores."}
	svc := newTestChatService(stub)
	sess := session.NewManager().Create()

	reply, err := svc.Send(context.Background(), sess, "What causes acne?")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAssistant, reply.Role)

	msgs := sess.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
	assert.Equal(t, "What causes acne?", msgs[0].Content)
	assert.Equal(t, domain.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Acne is usually caused by clogged pores.", msgs[1].Content)
	assert.NotEqual(t, msgs[0].ID, msgs[1].ID)
}

func TestSendPassesPriorTranscriptAsHistory(t *testing.T) {
	stub := &stubAssistant{chatText: "reply"}
	svc := newTestChatService(stub)
	sess := session.NewManager().Create()
	ctx := context.Background()

	_, err := svc.Send(ctx, sess, "first question")
	require.NoError(t, err)
	_, err = svc.Send(ctx, sess, "second question")
	require.NoError(t, err)

	// The second call sees the first exchange but not its own message.
	require.Len(t, stub.lastHistory, 2)
	assert.Equal(t, "user", stub.lastHistory[0].Role)
	assert.Equal(t, "first question", stub.lastHistory[0].Content)
	assert.Equal(t, "assistant", stub.lastHistory[1].Role)

	assert.Len(t, sess.Messages(), 4) // exactly +2 per settled turn
}

func TestSendEmptyMessageIsNoOp(t *testing.T) {
	tests := []string{"", "   ", "\n\t  "}
	for _, text := range tests {
		stub := &stubAssistant{chatText: "reply"}
		svc := newTestChatService(stub)
		sess := session.NewManager().Create()

		reply, err := svc.Send(context.Background(), sess, text)
		assert.ErrorIs(t, err, ErrEmptyMessage)
		assert.Nil(t, reply)
		assert.Zero(t, stub.chatCalls)
		assert.Empty(t, sess.Messages())
	}
}

func TestSendFallbackEmbedsUserText(t *testing.T) {
	stub := &stubAssistant{chatErr: errors.New("connection refused")}
	svc := newTestChatService(stub)
	sess := session.NewManager().Create()

	reply, err := svc.Send(context.Background(), sess, "What causes acne?")
	require.NoError(t, err)
	assert.Contains(t, reply.Content, "What causes acne?")

	msgs := sess.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleAssistant, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "What causes acne?")
}

func TestClearIsIdempotent(t *testing.T) {
	stub := &stubAssistant{chatText: "reply"}
	svc := newTestChatService(stub)
	sess := session.NewManager().Create()

	_, err := svc.Send(context.Background(), sess, "hello")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Messages())

	svc.Clear(sess)
	assert.Empty(t, sess.Messages())
	svc.Clear(sess)
	assert.Empty(t, sess.Messages())
}
