package domain

import (
	"time"

	"github.com/wecareapp/wecare/internal/assistant"
)

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one transcript entry. IDs are unique within a transcript and
// insertion order is display order.
type ChatMessage struct {
	ID      string
	Role    ChatRole
	Content string
	SentAt  time.Time
}

// ScanRecord is one settled analysis in a session's history. PhotoKey may be
// empty when the uploaded image could not be stored.
type ScanRecord struct {
	ID       string
	TakenAt  time.Time
	PhotoKey string
	MimeType string
	Report   assistant.AnalysisReport
	Fallback bool
}

// Settings are per-session display preferences; they live and die with the
// session.
type Settings struct {
	DisplayName   string
	Notifications bool
	Language      string
}

type Clinic struct {
	ID       int64
	Name     string
	Type     string
	Distance string
	Rating   float64
	Address  string
	Phone    string
	Hours    string
	Services []string
}

type Tip struct {
	ID       int64
	Category string
	Title    string
	Body     string
	Cadence  string
}
