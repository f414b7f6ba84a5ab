// Package llm generates learning dialogs with the Anthropic Messages API.
package llm

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

const (
	dialogToolName        = "generate_dialog"
	dialogToolDescription = "Generates a German A2-level dialog"

	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 16000
)

// ErrInvalidResponse is returned when the model answer cannot be used as a dialog.
var ErrInvalidResponse = errors.New("invalid llm response")

//go:embed templates/dialog_system.tmpl
var dialogSystemText string

var dialogSystemTemplate = template.Must(template.New("dialog_system").Parse(dialogSystemText))

// Config configures the dialog generator.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int64
}

// DialogRequest describes one dialog to generate.
type DialogRequest struct {
	WordForms    []string
	MinLines     int
	SpeechNumber int
}

// DialogGenerator asks Claude for a dialog through a forced tool call.
type DialogGenerator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewDialogGenerator creates a DialogGenerator. Extra request options are
// appended after the API key (tests pass option.WithBaseURL).
func NewDialogGenerator(cfg Config, logger *slog.Logger, opts ...option.RequestOption) *DialogGenerator {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}

	reqOpts := make([]option.RequestOption, 0, len(opts)+1)
	if cfg.APIKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(cfg.APIKey))
	}
	reqOpts = append(reqOpts, opts...)

	return &DialogGenerator{
		client:    anthropic.NewClient(reqOpts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "llm"),
	}
}

// Generate produces a dialog that uses the requested word forms.
func (g *DialogGenerator) Generate(ctx context.Context, req DialogRequest) (domain.DialogData, error) {
	if len(req.WordForms) == 0 {
		return domain.DialogData{}, fmt.Errorf("generate dialog: no word forms: %w", domain.ErrInvalidArgument)
	}
	if req.MinLines <= 0 {
		return domain.DialogData{}, fmt.Errorf("generate dialog: min lines %d: %w", req.MinLines, domain.ErrInvalidArgument)
	}

	system, err := renderSystemPrompt(req)
	if err != nil {
		return domain.DialogData{}, err
	}

	userPrompt, err := json.Marshal(struct {
		WordForms []string `json:"wordForms"`
	}{WordForms: req.WordForms})
	if err != nil {
		return domain.DialogData{}, fmt.Errorf("marshal user prompt: %w", err)
	}

	g.log.InfoContext(ctx, "generating dialog",
		slog.Int("word_forms", len(req.WordForms)),
		slog.Int("min_lines", req.MinLines),
		slog.Int("speech_number", req.SpeechNumber),
	)
	start := time.Now()

	tool := dialogTool()
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(string(userPrompt))),
		},
		Tools:      []anthropic.ToolUnionParam{{OfTool: &tool}},
		ToolChoice: anthropic.ToolChoiceParamOfTool(dialogToolName),
	})
	if err != nil {
		return domain.DialogData{}, fmt.Errorf("llm api call: %w", err)
	}

	if msg.StopReason == anthropic.StopReasonMaxTokens {
		return domain.DialogData{}, fmt.Errorf("dialog truncated at %d tokens: %w", g.maxTokens, ErrInvalidResponse)
	}

	var input json.RawMessage
	for _, block := range msg.Content {
		if block.Type == "tool_use" && block.Name == dialogToolName {
			input = block.Input
			break
		}
	}
	if len(input) == 0 {
		return domain.DialogData{}, fmt.Errorf("no %s tool call in response: %w", dialogToolName, ErrInvalidResponse)
	}

	data, err := decodeDialog(input)
	if err != nil {
		return domain.DialogData{}, err
	}

	if len(data.Dialog) < req.MinLines {
		g.log.WarnContext(ctx, "dialog shorter than requested",
			slog.Int("lines", len(data.Dialog)),
			slog.Int("min_lines", req.MinLines),
		)
	}

	g.log.InfoContext(ctx, "dialog generated",
		slog.Int("lines", len(data.Dialog)),
		slog.Int("word_forms_used", data.UsedWordForms()),
		slog.Duration("duration", time.Since(start)),
	)
	return data, nil
}

func renderSystemPrompt(req DialogRequest) (string, error) {
	var buf bytes.Buffer
	err := dialogSystemTemplate.Execute(&buf, struct {
		MinLines     int
		SpeechNumber int
	}{MinLines: req.MinLines, SpeechNumber: req.SpeechNumber})
	if err != nil {
		return "", fmt.Errorf("render dialog prompt: %w", err)
	}
	return buf.String(), nil
}

func dialogTool() anthropic.ToolParam {
	return anthropic.ToolParam{
		Name:        dialogToolName,
		Description: anthropic.String(dialogToolDescription),
		InputSchema: anthropic.ToolInputSchemaParam{
			Properties: map[string]any{
				"dialog": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":      map[string]any{"type": "integer"},
							"speaker": map[string]any{"type": "string", "enum": []string{string(domain.SpeakerOne), string(domain.SpeakerTwo)}},
							"text":    map[string]any{"type": "string"},
						},
						"required": []string{"id", "speaker", "text"},
					},
				},
				"word_forms_usage": map[string]any{
					"type":                 "object",
					"additionalProperties": map[string]any{"type": "integer"},
				},
			},
			Required: []string{"dialog", "word_forms_usage"},
		},
	}
}

// decodeDialog parses the tool input and checks every line.
func decodeDialog(raw json.RawMessage) (domain.DialogData, error) {
	var data domain.DialogData
	if err := json.Unmarshal(raw, &data); err != nil {
		return domain.DialogData{}, fmt.Errorf("decode dialog: %v: %w", err, ErrInvalidResponse)
	}
	if len(data.Dialog) == 0 {
		return domain.DialogData{}, fmt.Errorf("empty dialog: %w", ErrInvalidResponse)
	}

	for i := range data.Dialog {
		line := &data.Dialog[i]
		line.Speaker = domain.Speaker(strings.TrimSpace(string(line.Speaker)))
		line.Text = strings.TrimSpace(line.Text)
		if !line.Speaker.IsValid() {
			return domain.DialogData{}, fmt.Errorf("line %d: unknown speaker %q: %w", i+1, line.Speaker, ErrInvalidResponse)
		}
		if line.Text == "" {
			return domain.DialogData{}, fmt.Errorf("line %d: empty text: %w", i+1, ErrInvalidResponse)
		}
	}
	if data.WordFormsUsage == nil {
		data.WordFormsUsage = map[string]int{}
	}
	return data, nil
}
