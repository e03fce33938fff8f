package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes markdown code-fence markers from model output. Models
// routinely wrap the requested JSON in ```json ... ``` even when asked not to.
func StripFences(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseReport decodes model output into an AnalysisReport after fence
// stripping and validates it against the schema the prompt requested. Any
// structural or range violation is an error; the caller substitutes the
// fallback report.
func ParseReport(raw string) (*AnalysisReport, error) {
	cleaned := StripFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty model response")
	}

	var report AnalysisReport
	dec := json.NewDecoder(strings.NewReader(cleaned))
	if err := dec.Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	if err := validateReport(&report); err != nil {
		return nil, err
	}
	return &report, nil
}

func validateReport(r *AnalysisReport) error {
	if strings.TrimSpace(r.Condition) == "" {
		return fmt.Errorf("report missing condition")
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return fmt.Errorf("confidence %d out of range", r.Confidence)
	}
	switch r.Urgency {
	case UrgencyUrgent, UrgencyMonitor, UrgencyLow:
	default:
		return fmt.Errorf("unknown urgency %q", r.Urgency)
	}
	switch r.RiskLevel {
	case RiskHigh, RiskModerate, RiskLow:
	default:
		return fmt.Errorf("unknown risk level %q", r.RiskLevel)
	}
	return nil
}
