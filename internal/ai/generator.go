package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const maxFieldLength = 1000

// ErrUnknownKind is returned for a generator kind that does not exist.
var ErrUnknownKind = errors.New("unknown generator kind")

// FieldError reports a missing or invalid request field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// Completer produces a completion for a system and user prompt.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Request is the structured input shared by every generator.
type Request struct {
	Situation    string `json:"situation"`
	Relationship string `json:"relationship"`
	Detail       string `json:"detail"`
}

func (r Request) field(name string) string {
	switch name {
	case FieldSituation:
		return r.Situation
	case FieldRelationship:
		return r.Relationship
	case FieldDetail:
		return r.Detail
	}
	return ""
}

// ConsultResult is the structured output of the consult generator.
type ConsultResult struct {
	Summary       string   `json:"summary"`
	Advice        []string `json:"advice"`
	Encouragement string   `json:"encouragement"`
}

// HabitSuggestion is one suggested habit.
type HabitSuggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Frequency   string `json:"frequency"`
}

// HabitResult is the structured output of the habit generator.
type HabitResult struct {
	Habits []HabitSuggestion `json:"habits"`
}

// Response carries either Text or Data depending on the kind.
type Response struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text,omitempty"`
	Data any    `json:"data,omitempty"`
}

// Generator validates requests, builds prompts and parses completions.
type Generator struct {
	completer Completer
	logger    *zap.Logger
}

// NewGenerator creates a generator. A nil logger disables logging.
func NewGenerator(c Completer, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{completer: c, logger: logger}
}

// Validate trims req and checks it against the kind's required fields.
func Validate(kind Kind, req Request) (Request, error) {
	spec, ok := kinds[kind]
	if !ok {
		return req, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	req.Situation = strings.TrimSpace(req.Situation)
	req.Relationship = strings.TrimSpace(req.Relationship)
	req.Detail = strings.TrimSpace(req.Detail)

	for _, f := range spec.required {
		if req.field(f) == "" {
			return req, &FieldError{Field: f, Reason: "required"}
		}
	}
	for _, f := range []string{FieldSituation, FieldRelationship, FieldDetail} {
		if utf8.RuneCountInString(req.field(f)) > maxFieldLength {
			return req, &FieldError{Field: f, Reason: fmt.Sprintf("longer than %d characters", maxFieldLength)}
		}
	}
	return req, nil
}

// Generate runs the generator for kind.
func (g *Generator) Generate(ctx context.Context, kind Kind, req Request) (*Response, error) {
	req, err := Validate(kind, req)
	if err != nil {
		return nil, err
	}
	spec := kinds[kind]

	out, err := g.completer.Complete(ctx, spec.system, spec.build(req))
	if err != nil {
		g.logger.Warn("completion failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, fmt.Errorf("generating %s: %w", kind, err)
	}

	resp := &Response{Kind: kind}
	if !spec.json {
		resp.Text = out
		return resp, nil
	}

	switch kind {
	case KindConsult:
		var result ConsultResult
		if err := ExtractJSON(out, &result); err != nil {
			g.logger.Warn("unparseable completion", zap.String("kind", string(kind)), zap.Int("bytes", len(out)))
			return nil, err
		}
		resp.Data = result
	case KindHabit:
		var result HabitResult
		if err := ExtractJSON(out, &result); err != nil {
			g.logger.Warn("unparseable completion", zap.String("kind", string(kind)), zap.Int("bytes", len(out)))
			return nil, err
		}
		resp.Data = result
	}
	return resp, nil
}
