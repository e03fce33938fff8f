package web

import (
	"net/http"
	"strings"

	"github.com/wecareapp/wecare/internal/assistant"
	"github.com/wecareapp/wecare/internal/domain"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if err := s.renderPage(w,
		map[string]any{"ActiveNav": "home"},
		"base.html", "pages/home.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "home", "error", err)
	}
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if err := s.renderPage(w,
		map[string]any{"ActiveNav": "login"},
		"base.html", "pages/login.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "login", "error", err)
	}
}

// handleLogin is an authentication stub: any submission refreshes the session
// and moves on. There is no credential verification by design.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.signIn(w, r)
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if err := s.renderPage(w,
		map[string]any{"ActiveNav": "register"},
		"base.html", "pages/register.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "register", "error", err)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.signIn(w, r)
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	// Take a display name from the form if one was offered.
	settings := sess.Settings()
	if name := strings.TrimSpace(r.FormValue("firstName")); name != "" {
		settings.DisplayName = name
	} else if email := strings.TrimSpace(r.FormValue("email")); email != "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			settings.DisplayName = email[:at]
		}
	}
	sess.UpdateSettings(settings)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	s.sessions.Delete(sess.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	scans := sess.Scans()
	recent := scans
	if len(recent) > 3 {
		recent = recent[:3]
	}

	data := map[string]any{
		"ActiveNav":   "dashboard",
		"Settings":    sess.Settings(),
		"RecentScans": recent,
		"ScanCount":   len(scans),
		"ChatCount":   len(sess.Messages()),
	}
	if err := s.renderPage(w, data, "base.html", "pages/dashboard.html"); err != nil {
		s.logger.Error("render page failed", "page", "dashboard", "error", err)
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var urgent int
	scans := sess.Scans()
	for _, rec := range scans {
		if rec.Report.Urgency == assistant.UrgencyUrgent {
			urgent++
		}
	}

	data := map[string]any{
		"ActiveNav":   "history",
		"Scans":       scans,
		"UrgentCount": urgent,
	}
	if err := s.renderPage(w, data, "base.html", "pages/history.html"); err != nil {
		s.logger.Error("render page failed", "page", "history", "error", err)
	}
}

func (s *Server) handleSettingsPage(w http.ResponseWriter, r *http.Request) {
	s.renderSettings(w, r, false)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	settings := domain.Settings{
		DisplayName:   strings.TrimSpace(r.FormValue("displayName")),
		Notifications: r.FormValue("notifications") == "on",
		Language:      r.FormValue("language"),
	}
	if settings.Language == "" {
		settings.Language = "en"
	}
	sess.UpdateSettings(settings)

	s.renderSettings(w, r, true)
}

func (s *Server) renderSettings(w http.ResponseWriter, r *http.Request, saved bool) {
	sess := sessionFrom(r)
	data := map[string]any{
		"ActiveNav": "settings",
		"Settings":  sess.Settings(),
		"Saved":     saved,
	}
	if err := s.renderPage(w, data, "base.html", "pages/settings.html"); err != nil {
		s.logger.Error("render page failed", "page", "settings", "error", err)
	}
}
