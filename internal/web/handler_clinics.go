package web

import (
	"net/http"
	"strings"

	"github.com/wecareapp/wecare/internal/domain"
)

func (s *Server) handleClinics(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	var (
		clinics []*domain.Clinic
		err     error
	)
	if query != "" {
		clinics, err = s.clinics.Search(r.Context(), query)
	} else {
		clinics, err = s.clinics.List(r.Context())
	}
	if err != nil {
		http.Error(w, "failed to list clinics", http.StatusInternalServerError)
		s.logger.Error("list clinics failed", "error", err)
		return
	}

	data := map[string]any{
		"ActiveNav": "clinics",
		"Clinics":   clinics,
		"Query":     query,
	}

	// HTMX partial update: return only the directory fragment.
	if r.Header.Get("HX-Request") == "true" {
		if err := s.renderPartial(w, "partials/clinic_list.html", data); err != nil {
			s.logger.Error("render partial failed", "error", err)
		}
		return
	}

	if err := s.renderPage(w, data, "base.html", "pages/clinics.html", "partials/clinic_list.html"); err != nil {
		s.logger.Error("render page failed", "page", "clinics", "error", err)
	}
}
