package report

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSONRegex = regexp.MustCompile("(?s)```json\\s*(.*?)```")

// ExtractPayload locates the JSON document inside a free-form model response.
// Preference order: a ```json fenced block, then the whole trimmed text when
// it is framed like a bare object. Returns *FormatError when neither applies.
func ExtractPayload(raw string) (string, error) {
	if m := fencedJSONRegex.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1]), nil
	}

	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return trimmed, nil
	}

	return "", &FormatError{Reason: "no fenced block or bare JSON object found"}
}

// ParsePayload extracts and parses the payload into a generic document.
// Syntax failures are *ParseError, never a silently partial document.
func ParsePayload(raw string) (map[string]any, error) {
	candidate, err := ExtractPayload(raw)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	return doc, nil
}
