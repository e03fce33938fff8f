package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wecareapp/wecare/internal/assistant"
	"github.com/wecareapp/wecare/internal/domain"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager()

	sess := m.Create()
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, "en", sess.Settings().Language)
	assert.True(t, sess.Settings().Notifications)

	found, ok := m.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, found)

	_, ok = m.Get("nope")
	assert.False(t, ok)
}

func TestManagerDelete(t *testing.T) {
	m := NewManager()
	sess := m.Create()

	m.Delete(sess.ID)
	_, ok := m.Get(sess.ID)
	assert.False(t, ok)

	m.Delete(sess.ID) // deleting twice is fine
}

func TestTranscriptOrderAndClear(t *testing.T) {
	sess := NewManager().Create()

	sess.AppendMessage(domain.ChatMessage{ID: "1", Role: domain.RoleUser, Content: "hi", SentAt: time.Now()})
	sess.AppendMessage(domain.ChatMessage{ID: "2", Role: domain.RoleAssistant, Content: "hello", SentAt: time.Now()})

	msgs := sess.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "1", msgs[0].ID)
	assert.Equal(t, "2", msgs[1].ID)

	// Messages returns a copy; mutating it must not touch the transcript.
	msgs[0].Content = "mutated"
	assert.Equal(t, "hi", sess.Messages()[0].Content)

	sess.ClearTranscript()
	assert.Empty(t, sess.Messages())
	sess.ClearTranscript()
	assert.Empty(t, sess.Messages())
}

func TestScanHistoryNewestFirst(t *testing.T) {
	sess := NewManager().Create()

	sess.AppendScan(domain.ScanRecord{ID: "a", PhotoKey: "p1", Report: assistant.FallbackReport()})
	sess.AppendScan(domain.ScanRecord{ID: "b", PhotoKey: "p2", Report: assistant.FallbackReport()})

	scans := sess.Scans()
	require.Len(t, scans, 2)
	assert.Equal(t, "b", scans[0].ID)
	assert.Equal(t, "a", scans[1].ID)

	assert.True(t, sess.OwnsPhoto("p1"))
	assert.False(t, sess.OwnsPhoto("p3"))
}
