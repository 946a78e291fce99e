package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Greedy: first '{' to last '}'. Can mis-extract when the model emits more
// than one JSON-like fragment; kept as-is for upstream compatibility.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSONObject locates and parses the first JSON object embedded in
// untrusted completion output. Content that already starts with '{' is
// parsed directly; otherwise the first {...} span is scanned out and parsed.
// The returned bytes are the validated object, ready to unmarshal into a
// concrete type.
func ExtractJSONObject(content string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(content)

	candidate := trimmed
	if !strings.HasPrefix(trimmed, "{") {
		candidate = jsonObjectPattern.FindString(trimmed)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, err
	}
	return json.RawMessage(candidate), nil
}
