package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wecareapp/wecare/internal/assistant"
	"github.com/wecareapp/wecare/internal/domain"
	"github.com/wecareapp/wecare/internal/photostore"
	"github.com/wecareapp/wecare/internal/session"
)

// ErrNoImage is returned when Analyze is invoked without image data. It is an
// input error: the capability is never called and no state changes.
var ErrNoImage = errors.New("no image supplied")

// ScanService turns one uploaded image into a settled analysis outcome. A
// failing or unparseable capability call is never surfaced as an error; it
// settles into the fixed fallback report instead.
type ScanService struct {
	assistant assistant.Assistant
	photos    photostore.PhotoStore
	logger    *slog.Logger
}

func NewScanService(a assistant.Assistant, photos photostore.PhotoStore, logger *slog.Logger) *ScanService {
	return &ScanService{assistant: a, photos: photos, logger: logger}
}

// Analyze submits the image with the fixed instruction prompt, parses the
// response into a report, and appends the settled outcome to the session's
// history. No automatic retries: re-analysis is a fresh user action.
func (s *ScanService) Analyze(ctx context.Context, sess *session.Session, imageData []byte, mimeType string) (*domain.ScanRecord, error) {
	if len(imageData) == 0 {
		return nil, ErrNoImage
	}

	s.logger.Info("analysis started", "session_id", sess.ID, "mime_type", mimeType, "bytes", len(imageData))

	outcome := s.analyzeOutcome(ctx, sess, imageData, mimeType)

	// Store the upload so the history screen can show it. Storage failure
	// degrades the history entry to text-only; the analysis itself stands.
	photoKey, err := s.photos.Save(ctx, "scan_"+sess.ID, mimeType, bytes.NewReader(imageData))
	if err != nil {
		s.logger.Error("failed to save scan photo", "session_id", sess.ID, "error", err)
		photoKey = ""
	}

	record := domain.ScanRecord{
		ID:       uuid.NewString(),
		TakenAt:  time.Now(),
		PhotoKey: photoKey,
		MimeType: mimeType,
		Report:   outcome.Report,
		Fallback: outcome.Source == assistant.SourceFallback,
	}
	sess.AppendScan(record)

	s.logger.Info("analysis settled", "session_id", sess.ID, "source", outcome.Source, "condition", outcome.Report.Condition)
	return &record, nil
}

func (s *ScanService) analyzeOutcome(ctx context.Context, sess *session.Session, imageData []byte, mimeType string) assistant.Outcome {
	text, err := s.assistant.AnalyzeImage(ctx, imageData, mimeType)
	if err != nil {
		s.logger.Warn("capability call failed, using fallback report", "session_id", sess.ID, "error", err)
		return assistant.Outcome{Report: assistant.FallbackReport(), Source: assistant.SourceFallback}
	}

	report, err := assistant.ParseReport(text)
	if err != nil {
		s.logger.Warn("capability response unparseable, using fallback report", "session_id", sess.ID, "error", err)
		return assistant.Outcome{Report: assistant.FallbackReport(), Source: assistant.SourceFallback}
	}

	return assistant.Outcome{Report: *report, Source: assistant.SourceModel}
}
