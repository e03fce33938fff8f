package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/wecareapp/wecare/internal/service"
)

const maxScanSize = 10 * 1024 * 1024 // 10 MB

// allowedImageTypes is the set of MIME types accepted for scan uploads.
// net/http.DetectContentType handles JPEG, PNG, and GIF via magic-byte
// sniffing. WebP is detected separately because the WHATWG sniff spec (and
// therefore the stdlib) does not include a WebP signature.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// allowedImageMIME returns the detected MIME type and true if the data is an
// accepted image format, or ("", false) otherwise.
func allowedImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}

func (s *Server) handleScanPage(w http.ResponseWriter, r *http.Request) {
	if err := s.renderPage(w,
		map[string]any{"ActiveNav": "scan"},
		"base.html", "pages/scan.html", "partials/scan_result.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "scan", "error", err)
	}
}

// handleAnalyze runs the image analysis flow and responds with the result
// partial. Input errors (no image, unreadable file, unsupported format) are
// the only ones shown as errors; capability trouble settles into the fallback
// report inside the service and still renders as a result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	if err := r.ParseMultipartForm(maxScanSize); err != nil {
		s.renderScanError(w, "Could not read the upload. Please try a smaller image.")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		// No image selected: input error, nothing was analyzed.
		s.renderScanError(w, "Please choose a photo before analyzing.")
		return
	}
	defer closeWithLog(file, "scan upload", s.logger)

	imageData, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("read upload failed", "session_id", sess.ID, "error", err)
		s.renderScanError(w, "Failed to read the selected file. Please try again.")
		return
	}

	mimeType, ok := allowedImageMIME(imageData)
	if !ok {
		s.renderScanError(w, "Unsupported image format. Please upload a JPEG, PNG, GIF, or WebP photo.")
		return
	}

	record, err := s.scans.Analyze(r.Context(), sess, imageData, mimeType)
	if err != nil {
		if errors.Is(err, service.ErrNoImage) {
			s.renderScanError(w, "Please choose a photo before analyzing.")
			return
		}
		s.logger.Error("analyze failed", "session_id", sess.ID, "error", err)
		s.renderScanError(w, "Failed to analyze image. Please try again.")
		return
	}

	if err := s.renderPartial(w, "partials/scan_result.html", map[string]any{"Record": record}); err != nil {
		s.logger.Error("render partial failed", "error", err)
	}
}

func (s *Server) renderScanError(w http.ResponseWriter, msg string) {
	if err := s.renderPartial(w, "partials/scan_result.html", map[string]any{"Error": msg}); err != nil {
		s.logger.Error("render partial failed", "error", err)
	}
}

// handleGetPhoto serves a stored scan image back to the session that owns it.
func (s *Server) handleGetPhoto(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	key := r.PathValue("key")

	if !sess.OwnsPhoto(key) {
		http.NotFound(w, r)
		return
	}

	reader, mimeType, err := s.photoStore.Get(r.Context(), key)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer closeWithLog(reader, "photo reader", s.logger)

	w.Header().Set("Content-Type", mimeType)
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write photo failed", "key", key, "error", err)
	}
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
