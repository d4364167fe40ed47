package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var (
	// ErrAnalyzerNotConfigured means no API key was provided. Everything
	// else keeps working, only meal analysis is unavailable.
	ErrAnalyzerNotConfigured = errors.New("nutrition analyzer is not configured")
	// ErrMalformedAnalysis means the model answered with something that is
	// not the agreed JSON contract.
	ErrMalformedAnalysis = errors.New("malformed analysis response")
)

// NutritionEstimate is the analyzer's verdict for one described meal. The
// JSON keys are the fixed contract the model is prompted to produce.
type NutritionEstimate struct {
	Description string  `json:"descrizione"`
	Kcal        float64 `json:"kcal"`
	ProteinG    float64 `json:"pro"`
	CarbsG      float64 `json:"carbo"`
	FatG        float64 `json:"fat"`
}

const analysisPrompt = `You are a nutrition assistant. Analyze this meal description: "%s".
Respond with ONLY a valid JSON object, no markdown fences and no prose, with exactly these keys:
"descrizione" (string, a short summary of the meal), "kcal" (integer, estimated calories), "pro" (number, grams of protein), "carbo" (number, grams of carbohydrates), "fat" (number, grams of fat).
If the text does not describe food, use zero values.`

// GeminiService asks Google's generative language API to estimate the
// nutrition of a free-text meal description.
type GeminiService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiService(apiKey, model string) *GeminiService {
	if model == "" {
		model = "gemini-pro"
	}
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an API key is present.
func (service *GeminiService) Configured() bool {
	return strings.TrimSpace(service.apiKey) != ""
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeMeal sends the description to the model and decodes its estimate.
// The call is synchronous; the handler decides what failure maps to.
func (service *GeminiService) AnalyzeMeal(text string) (NutritionEstimate, error) {
	if !service.Configured() {
		return NutritionEstimate{}, ErrAnalyzerNotConfigured
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: fmt.Sprintf(analysisPrompt, text)}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return NutritionEstimate{}, fmt.Errorf("marshal analysis request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		service.baseURL, service.model, url.QueryEscape(service.apiKey))
	request, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return NutritionEstimate{}, fmt.Errorf("build analysis request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := service.client.Do(request)
	if err != nil {
		return NutritionEstimate{}, fmt.Errorf("call analysis service: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return NutritionEstimate{}, fmt.Errorf("read analysis response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return NutritionEstimate{}, fmt.Errorf("analysis service returned %d: %s",
			response.StatusCode, strings.TrimSpace(string(raw)))
	}

	var reply geminiResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		return NutritionEstimate{}, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	if len(reply.Candidates) == 0 || len(reply.Candidates[0].Content.Parts) == 0 {
		return NutritionEstimate{}, ErrMalformedAnalysis
	}

	return DecodeEstimate(reply.Candidates[0].Content.Parts[0].Text)
}

// DecodeEstimate strips the code fences models like to wrap JSON in and
// parses the estimate contract.
func DecodeEstimate(text string) (NutritionEstimate, error) {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var estimate NutritionEstimate
	if err := json.Unmarshal([]byte(clean), &estimate); err != nil {
		return NutritionEstimate{}, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	return estimate, nil
}
