package assistant

import "context"

// AnalysisPrompt instructs the model to answer with a bare JSON object matching
// AnalysisReport. Backends send it together with the inline image.
const AnalysisPrompt = `Analyze this skin image and respond with a JSON object using exactly this structure:
{
  "condition": "Name of the condition",
  "confidence": number between 0 and 100,
  "urgency": "urgent" | "monitor" | "low",
  "description": "Brief description of visual symptoms",
  "nextSteps": "2-3 actionable next steps",
  "riskLevel": "high" | "moderate" | "low"
}
If the image does not show a skin condition or is unclear, say so in "condition".
Respond with the JSON object only.`

// ChatSystemPrompt frames the conversational turns sent to the model.
const ChatSystemPrompt = `You are a helpful AI skin health assistant. You help people understand
skin conditions and skin care, without giving medical diagnoses. Encourage
consulting a dermatologist for anything serious.`

// Turn is one prior exchange entry in a conversation, in display order.
// Role is "user" or "assistant"; backends map it to their own role labels.
type Turn struct {
	Role    string
	Content string
}

// Assistant is the generative capability boundary. Both methods block for one
// complete textual response; there is no streaming contract.
type Assistant interface {
	// AnalyzeImage submits the analysis prompt plus the inline image and
	// returns the model's raw text, which should contain an AnalysisReport
	// JSON object (possibly fenced).
	AnalyzeImage(ctx context.Context, imageData []byte, mimeType string) (string, error)
	// Chat submits the prior transcript plus one new user message and returns
	// the model's raw reply text.
	Chat(ctx context.Context, history []Turn, message string) (string, error)
}

type Urgency string

const (
	UrgencyUrgent  Urgency = "urgent"
	UrgencyMonitor Urgency = "monitor"
	UrgencyLow     Urgency = "low"
)

type RiskLevel string

const (
	RiskHigh     RiskLevel = "high"
	RiskModerate RiskLevel = "moderate"
	RiskLow      RiskLevel = "low"
)

// AnalysisReport is the structured assessment for one analyzed image. It is
// replaced wholesale on every analysis, never merged.
type AnalysisReport struct {
	Condition   string    `json:"condition"`
	Confidence  int       `json:"confidence"`
	Urgency     Urgency   `json:"urgency"`
	Description string    `json:"description"`
	NextSteps   string    `json:"nextSteps"`
	RiskLevel   RiskLevel `json:"riskLevel"`
}

// Source tags where an Outcome's report came from, so callers must handle the
// degraded case explicitly instead of sniffing field values.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Outcome is the settled result of one analysis: a well-formed report plus the
// tag saying whether the model produced it or the fixed fallback did.
type Outcome struct {
	Report AnalysisReport
	Source Source
}

// FallbackReport returns the fixed report substituted whenever the capability
// call fails or its output cannot be parsed. The values are deliberately
// constant so the app stays demonstrable without a working credential.
func FallbackReport() AnalysisReport {
	return AnalysisReport{
		Condition:  "Acne Vulgaris",
		Confidence: 92,
		Urgency:    UrgencyMonitor,
		Description: "Moderate acne vulgaris with comedones and inflammatory papules. " +
			"Commonly affects adolescents and young adults.",
		NextSteps: "Continue gentle skincare routine. Consider topical retinoids. " +
			"Consult dermatologist if condition persists.",
		RiskLevel: RiskLow,
	}
}
