package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrNotObject = errors.New("model reply is not a JSON object")

var (
	jsonFencePattern  = regexp.MustCompile("```json\\s*(\\{[\\s\\S]*?\\})\\s*```")
	plainFencePattern = regexp.MustCompile("```\\s*(\\{[\\s\\S]*?\\})\\s*```")
	bareObjectPattern = regexp.MustCompile(`(\{[\s\S]*\})`)
)

type extractStrategy struct {
	name    string
	extract func(text string) (string, bool)
}

// Tried in order; the first strategy that matches decides the candidate.
var extractStrategies = []extractStrategy{
	{name: "json fence", extract: firstGroup(jsonFencePattern)},
	{name: "plain fence", extract: firstGroup(plainFencePattern)},
	{name: "bare object", extract: firstGroup(bareObjectPattern)},
	{name: "raw text", extract: func(text string) (string, bool) { return text, true }},
}

func firstGroup(re *regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return m[1], true
	}
}

// ExtractJSON pulls the JSON object candidate out of a free-text model reply
// and reports which strategy produced it.
func ExtractJSON(text string) (candidate string, strategy string) {
	for _, s := range extractStrategies {
		if c, ok := s.extract(text); ok {
			return c, s.name
		}
	}
	return text, "raw text"
}

// DecodeJSON extracts the JSON candidate from text and unmarshals it into v.
// Only an object is accepted; null, arrays and scalars yield ErrNotObject.
func DecodeJSON(text string, v any) error {
	candidate, strategy := ExtractJSON(text)
	candidate = strings.TrimSpace(candidate)
	if !strings.HasPrefix(candidate, "{") {
		return fmt.Errorf("%w (%s)", ErrNotObject, strategy)
	}
	return json.Unmarshal([]byte(candidate), v)
}
