package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractionError is returned when no JSON object could be read from model output.
type ExtractionError struct {
	Raw string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no JSON object found in model output (%d bytes)", len(e.Raw))
}

// ExtractJSON decodes the JSON object in raw into v. It tries, in order: the
// whole text, the first complete object embedded in it, and the text with
// markdown code fences removed.
func ExtractJSON(raw string, v any) error {
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), v); err == nil {
		return nil
	}

	if obj, ok := firstObject(raw); ok {
		if err := json.Unmarshal(obj, v); err == nil {
			return nil
		}
	}

	if err := json.Unmarshal([]byte(stripCodeFences(raw)), v); err == nil {
		return nil
	}

	return &ExtractionError{Raw: raw}
}

// firstObject returns the first brace-delimited span of s that decodes as a
// complete JSON object.
func firstObject(s string) (json.RawMessage, bool) {
	for i := strings.IndexByte(s, '{'); i >= 0; {
		var obj json.RawMessage
		if err := json.NewDecoder(strings.NewReader(s[i:])).Decode(&obj); err == nil {
			return obj, true
		}
		next := strings.IndexByte(s[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return nil, false
}

// stripCodeFences returns the content of a ```json ... ``` block, or s unchanged.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	start := strings.Index(trimmed, "```")
	if start == -1 {
		return s
	}
	rest := trimmed[start+3:]
	nl := strings.Index(rest, "\n")
	if nl == -1 {
		return s
	}
	rest = rest[nl+1:]
	end := strings.LastIndex(rest, "```")
	if end == -1 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}
