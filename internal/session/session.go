// Package session holds all per-browser state: the chat transcript, the scan
// history, and display settings. Nothing here survives a process restart;
// cross-session persistence is deliberately out of scope.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wecareapp/wecare/internal/domain"
)

// Session is one browser's in-memory state. All mutating methods are
// mutex-guarded; the web layer serializes scan/chat operations per screen
// (inputs are disabled while a call is in flight), so the lock only protects
// against unrelated concurrent requests such as a history view during a scan.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	transcript []domain.ChatMessage
	scans      []domain.ScanRecord
	settings   domain.Settings
}

// AppendMessage appends one transcript entry, preserving insertion order.
func (s *Session) AppendMessage(msg domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, msg)
}

// Messages returns a copy of the transcript in insertion order.
func (s *Session) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// ClearTranscript empties the transcript. Clearing an already-empty
// transcript is a no-op.
func (s *Session) ClearTranscript() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
}

// AppendScan records a settled analysis at the head of the history so the
// newest scan renders first.
func (s *Session) AppendScan(rec domain.ScanRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scans = append([]domain.ScanRecord{rec}, s.scans...)
}

// Scans returns a copy of the scan history, newest first.
func (s *Session) Scans() []domain.ScanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ScanRecord, len(s.scans))
	copy(out, s.scans)
	return out
}

// OwnsPhoto reports whether a stored photo key belongs to this session's scan
// history. The photo handler uses it to keep sessions from reading each
// other's uploads.
func (s *Session) OwnsPhoto(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.scans {
		if rec.PhotoKey == key {
			return true
		}
	}
	return false
}

func (s *Session) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Session) UpdateSettings(settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Manager is the in-memory session registry, keyed by the session cookie.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create registers a fresh session with default settings.
func (m *Manager) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		settings: domain.Settings{
			Notifications: true,
			Language:      "en",
		},
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return sess
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Delete removes a session; used by logout. Deleting an unknown id is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
