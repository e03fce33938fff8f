package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/wecareapp/wecare/internal/assistant"
	"github.com/wecareapp/wecare/internal/photostore"
	"github.com/wecareapp/wecare/internal/service"
	"github.com/wecareapp/wecare/internal/session"
	"github.com/wecareapp/wecare/internal/store"
)

// adviceProvider is the subset of the advice client the tips screen needs.
type adviceProvider interface {
	TipOfTheDay(ctx context.Context) string
}

type Server struct {
	scans      *service.ScanService
	chat       *service.ChatService
	clinics    *store.ClinicStore
	tips       *store.TipStore
	advice     adviceProvider
	sessions   *session.Manager
	photoStore photostore.PhotoStore
	templates  embed.FS
	mux        *http.ServeMux
	tmplFuncs  template.FuncMap
	logger     *slog.Logger
}

func NewServer(
	scans *service.ScanService,
	chat *service.ChatService,
	clinics *store.ClinicStore,
	tips *store.TipStore,
	advice adviceProvider,
	sessions *session.Manager,
	ps photostore.PhotoStore,
	tmpl embed.FS,
	logger *slog.Logger,
) *Server {
	s := &Server{
		scans:      scans,
		chat:       chat,
		clinics:    clinics,
		tips:       tips,
		advice:     advice,
		sessions:   sessions,
		photoStore: ps,
		templates:  tmpl,
		mux:        http.NewServeMux(),
		logger:     logger,
		tmplFuncs: template.FuncMap{
			"urgencyClass": urgencyClass,
			"riskClass":    riskClass,
			"fmtTime":      func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
			"ucfirst":      ucfirst,
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleHome)
	s.mux.HandleFunc("GET /login", s.handleLoginPage)
	s.mux.HandleFunc("POST /login", s.handleLogin)
	s.mux.HandleFunc("GET /register", s.handleRegisterPage)
	s.mux.HandleFunc("POST /register", s.handleRegister)
	s.mux.HandleFunc("POST /logout", s.handleLogout)
	s.mux.HandleFunc("GET /dashboard", s.handleDashboard)
	s.mux.HandleFunc("GET /scan", s.handleScanPage)
	s.mux.HandleFunc("POST /scan", s.handleAnalyze)
	s.mux.HandleFunc("GET /photos/{key}", s.handleGetPhoto)
	s.mux.HandleFunc("GET /chat", s.handleChatPage)
	s.mux.HandleFunc("POST /chat/messages", s.handleSendMessage)
	s.mux.HandleFunc("POST /chat/clear", s.handleClearChat)
	s.mux.HandleFunc("GET /clinics", s.handleClinics)
	s.mux.HandleFunc("GET /tips", s.handleTips)
	s.mux.HandleFunc("GET /tips/today", s.handleTipOfTheDay)
	s.mux.HandleFunc("GET /history", s.handleHistory)
	s.mux.HandleFunc("GET /settings", s.handleSettingsPage)
	s.mux.HandleFunc("POST /settings", s.handleSaveSettings)
}

const sessionCookie = "wecare_session"

type sessionKey struct{}

// withSession ensures every request carries a live session, creating one and
// setting the cookie when needed.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *session.Session
		if cookie, err := r.Cookie(sessionCookie); err == nil {
			sess, _ = s.sessions.Get(cookie.Value)
		}
		if sess == nil {
			sess = s.sessions.Create()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionKey{}).(*session.Session)
	return sess
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline' https://unpkg.com; "+
				"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; "+
				"font-src https://fonts.gstatic.com; "+
				"img-src 'self' data:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.withSession(s.mux))).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// renderPartial parses and executes a single named partial template.
// The file must contain exactly one {{define "name"}}...{{end}} block.
func (s *Server) renderPartial(w http.ResponseWriter, file string, data any) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, file)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// ParseFS registers both the file-basename template and any {{define}}
	// blocks; the {{define}} block is the one whose name matches neither.
	basename := file
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		basename = file[idx+1:]
	}
	for _, t := range tmpl.Templates() {
		if n := t.Name(); n != "" && n != basename {
			return t.Execute(w, data)
		}
	}
	return tmpl.ExecuteTemplate(w, basename, data)
}

// urgencyClass maps an urgency level to the badge style used across screens.
func urgencyClass(urgency assistant.Urgency) string {
	switch urgency {
	case assistant.UrgencyUrgent:
		return "badge-urgent"
	case assistant.UrgencyMonitor:
		return "badge-monitor"
	default:
		return "badge-low"
	}
}

func riskClass(risk assistant.RiskLevel) string {
	switch risk {
	case assistant.RiskHigh:
		return "risk-high"
	case assistant.RiskModerate:
		return "risk-moderate"
	default:
		return "risk-low"
	}
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
