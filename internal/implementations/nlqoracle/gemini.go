package nlqoracle

import (
	e "apptrack/internal/core/domain/errors"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/quickadd"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com"
const DefaultModel = "gemini-3-flash-preview"

// Gemini asks the generateContent API to structure free text into an
// appointment draft. The response schema constrains the model's output shape,
// but the answer is still treated as untrusted by the caller.
type Gemini struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

func NewGemini(
	log logging.Logger,
	httpClient *http.Client,
	apiKey string,
	model string,
	baseURL string,
) *Gemini {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Gemini{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   responseSchema `json:"responseSchema"`
}

type responseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

type schemaProperty struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type rawDraftPayload struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Priority        string   `json:"priority"`
	ReminderMinutes *float64 `json:"reminderMinutes"`
}

func (g *Gemini) Parse(
	ctx context.Context,
	query string,
	referenceTime time.Time,
) (draft quickadd.RawDraft, err error) {
	prompt := fmt.Sprintf(
		"Parse the following natural language text into a structured appointment object. "+
			"If no date is mentioned, assume today is %s. "+
			"Current Text: %q",
		referenceTime.UTC().Format("2006-01-02"),
		query,
	)

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: responseSchema{
				Type: "OBJECT",
				Properties: map[string]schemaProperty{
					"title":           {Type: "STRING"},
					"description":     {Type: "STRING"},
					"startTime":       {Type: "STRING", Description: "ISO 8601 format"},
					"endTime":         {Type: "STRING", Description: "ISO 8601 format"},
					"priority":        {Type: "STRING", Enum: []string{"Low", "Medium", "High"}},
					"reminderMinutes": {Type: "NUMBER"},
				},
				Required: []string{"title", "startTime"},
			},
		},
	})
	if err != nil {
		return draft, fmt.Errorf("could not encode oracle request: %w", err)
	}

	url := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		g.baseURL, g.model, g.apiKey,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return draft, fmt.Errorf("could not create oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return draft, fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return draft, fmt.Errorf("could not read oracle response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return draft, fmt.Errorf("oracle returned status %d", resp.StatusCode)
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return draft, fmt.Errorf("could not decode oracle response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return draft, fmt.Errorf("oracle returned no candidates")
	}

	payload, err := g.decodeDraft(ctx, decoded.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return draft, err
	}
	return quickadd.RawDraft{
		Title:           payload.Title,
		Description:     payload.Description,
		StartTime:       payload.StartTime,
		EndTime:         payload.EndTime,
		Priority:        payload.Priority,
		ReminderMinutes: payload.ReminderMinutes,
	}, nil
}

// decodeDraft decodes the model's JSON answer, running it through jsonrepair
// first when it is not valid JSON. Models occasionally emit trailing commas
// or fenced code blocks; repairing is cheaper than a round trip.
func (g *Gemini) decodeDraft(ctx context.Context, text string) (payload rawDraftPayload, err error) {
	if err = json.Unmarshal([]byte(text), &payload); err == nil {
		return payload, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(text)
	if repairErr != nil {
		return payload, fmt.Errorf("oracle returned malformed JSON: %w", err)
	}
	g.log.Warning(
		ctx,
		"Repaired malformed oracle JSON.",
		logging.Entry("textLength", len(text)),
	)
	if err = json.Unmarshal([]byte(repaired), &payload); err != nil {
		return payload, fmt.Errorf("oracle returned malformed JSON: %w", err)
	}
	return payload, nil
}
