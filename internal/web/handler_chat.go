package web

import (
	"errors"
	"net/http"

	"github.com/wecareapp/wecare/internal/service"
)

func (s *Server) handleChatPage(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	data := map[string]any{
		"ActiveNav":      "chat",
		"Messages":       sess.Messages(),
		"Greeting":       service.Greeting,
		"QuickQuestions": service.QuickQuestions,
	}
	if err := s.renderPage(w, data, "base.html", "pages/chat.html", "partials/chat_messages.html"); err != nil {
		s.logger.Error("render page failed", "page", "chat", "error", err)
	}
}

// handleSendMessage runs one conversational turn and responds with the
// refreshed transcript partial. An empty message is a no-op: the transcript
// is re-rendered unchanged.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	_, err := s.chat.Send(r.Context(), sess, r.FormValue("message"))
	if err != nil && !errors.Is(err, service.ErrEmptyMessage) {
		s.logger.Error("send message failed", "session_id", sess.ID, "error", err)
		http.Error(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	s.renderTranscript(w, r)
}

func (s *Server) handleClearChat(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	s.chat.Clear(sess)
	s.renderTranscript(w, r)
}

func (s *Server) renderTranscript(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	data := map[string]any{
		"Messages":       sess.Messages(),
		"Greeting":       service.Greeting,
		"QuickQuestions": service.QuickQuestions,
	}
	if err := s.renderPartial(w, "partials/chat_messages.html", data); err != nil {
		s.logger.Error("render partial failed", "error", err)
	}
}
