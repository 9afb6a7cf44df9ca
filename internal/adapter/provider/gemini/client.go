// Package gemini is the language model gateway: it looks up new words and
// grades quiz answers through the Gemini API.
//
// Every failure (transport, quota, timeout, unusable output) is reported as
// domain.ErrAIUnavailable. Calls are never retried and results are never cached.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/heartmarshall/vocab-line-bot/internal/config"
	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// contentGenerator is the part of *genai.GenerativeModel the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Client calls Gemini with two preconfigured models, one per task.
type Client struct {
	sdk     *genai.Client
	lookup  contentGenerator
	grade   contentGenerator
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// New creates a Gemini client from configuration. Close releases the
// underlying connection.
func New(ctx context.Context, cfg config.GeminiConfig, log *slog.Logger) (*Client, error) {
	sdk, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	lookup := sdk.GenerativeModel(cfg.Model)
	configure(lookup, cfg.Temperature, lookupInstruction(cfg.NativeLanguage), lookupSchema)

	grade := sdk.GenerativeModel(cfg.Model)
	configure(grade, cfg.Temperature, gradeInstruction(cfg.NativeLanguage), gradeSchema)

	c := newClient(lookup, grade, cfg.Model, cfg.Timeout, log)
	c.sdk = sdk
	return c, nil
}

func newClient(lookup, grade contentGenerator, model string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		lookup:  lookup,
		grade:   grade,
		model:   model,
		timeout: timeout,
		log:     log.With("adapter", "gemini"),
	}
}

func configure(m *genai.GenerativeModel, temperature float32, instruction string, schema *genai.Schema) {
	m.SetTemperature(temperature)
	m.SetCandidateCount(1)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = schema
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(instruction)}}
}

// Close releases the SDK client.
func (c *Client) Close() error {
	if c.sdk == nil {
		return nil
	}
	return c.sdk.Close()
}

type lookupResponse struct {
	Meaning     string `json:"meaning"`
	Translation string `json:"translation"`
	Example     string `json:"example"`
}

// LookupWord asks for a definition, a translation and one example sentence.
// A response missing any of the three is treated as a failure.
func (c *Client) LookupWord(ctx context.Context, word string) (domain.WordLookup, error) {
	var out lookupResponse
	if err := c.generate(ctx, c.lookup, "lookup", lookupPrompt(word), &out); err != nil {
		return domain.WordLookup{}, err
	}

	res := domain.WordLookup{
		Meaning:     trim(out.Meaning),
		Translation: trim(out.Translation),
		Example:     trim(out.Example),
	}
	if !res.Complete() {
		c.log.WarnContext(ctx, "incomplete lookup response", slog.String("word", word))
		return domain.WordLookup{}, fmt.Errorf("gemini: lookup %q: incomplete response: %w", word, domain.ErrAIUnavailable)
	}
	return res, nil
}

type gradeResponse struct {
	IsCorrect bool     `json:"is_correct"`
	Feedback  string   `json:"feedback"`
	Examples  []string `json:"examples"`
}

// Grade judges a free-form answer. Synonyms and punctuation tolerance are
// left to the model.
func (c *Client) Grade(ctx context.Context, req domain.GradeRequest) (domain.GradeResult, error) {
	var out gradeResponse
	if err := c.generate(ctx, c.grade, "grade", gradePrompt(req), &out); err != nil {
		return domain.GradeResult{}, err
	}

	examples := make([]string, 0, maxExamples)
	for _, e := range out.Examples {
		if e = trim(e); e != "" && len(examples) < maxExamples {
			examples = append(examples, e)
		}
	}

	return domain.GradeResult{
		Passed:   out.IsCorrect,
		Feedback: trim(out.Feedback),
		Examples: examples,
		Model:    c.model,
	}, nil
}

func (c *Client) generate(ctx context.Context, m contentGenerator, task, prompt string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.log.ErrorContext(ctx, "gemini request failed",
			slog.String("task", task),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("gemini: %s: %v: %w", task, err, domain.ErrAIUnavailable)
	}

	raw, err := extractJSON(responseText(resp))
	if err != nil {
		c.log.WarnContext(ctx, "gemini returned no JSON", slog.String("task", task))
		return fmt.Errorf("gemini: %s: %v: %w", task, err, domain.ErrAIUnavailable)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("gemini: %s: decode response: %v: %w", task, err, domain.ErrAIUnavailable)
	}

	c.log.DebugContext(ctx, "gemini request done",
		slog.String("task", task),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
