package gemini

import (
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

var errNoJSON = errors.New("no JSON object found in response")

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// extractJSON returns the text between the first '{' and the last '}'.
// Models sometimes wrap JSON in Markdown fences even in JSON mode.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errNoJSON
	}
	return s[start : end+1], nil
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
