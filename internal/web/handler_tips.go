package web

import "net/http"

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	tips, err := s.tips.List(r.Context())
	if err != nil {
		http.Error(w, "failed to list tips", http.StatusInternalServerError)
		s.logger.Error("list tips failed", "error", err)
		return
	}

	categories, err := s.tips.Categories(r.Context())
	if err != nil {
		http.Error(w, "failed to list tips", http.StatusInternalServerError)
		s.logger.Error("list tip categories failed", "error", err)
		return
	}

	data := map[string]any{
		"ActiveNav":  "tips",
		"Tips":       tips,
		"Categories": categories,
		"TodaysTip":  s.advice.TipOfTheDay(r.Context()),
	}
	if err := s.renderPage(w, data, "base.html", "pages/tips.html", "partials/tip_of_day.html"); err != nil {
		s.logger.Error("render page failed", "page", "tips", "error", err)
	}
}

// handleTipOfTheDay re-fetches the daily tip for the "get new tip" button.
func (s *Server) handleTipOfTheDay(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"TodaysTip": s.advice.TipOfTheDay(r.Context())}
	if err := s.renderPartial(w, "partials/tip_of_day.html", data); err != nil {
		s.logger.Error("render partial failed", "error", err)
	}
}
