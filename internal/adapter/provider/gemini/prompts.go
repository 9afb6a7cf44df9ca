package gemini

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

const maxExamples = 3

var lookupSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"meaning":     {Type: genai.TypeString, Description: "short English definition"},
		"translation": {Type: genai.TypeString, Description: "translation into the learner's language"},
		"example":     {Type: genai.TypeString, Description: "one natural English example sentence"},
	},
	Required: []string{"meaning", "translation", "example"},
}

var gradeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"is_correct": {Type: genai.TypeBoolean},
		"feedback":   {Type: genai.TypeString, Description: "one or two sentences for the learner"},
		"examples": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"is_correct", "feedback", "examples"},
}

func lookupInstruction(language string) string {
	return fmt.Sprintf(`You are a concise English vocabulary tutor for %[1]s speakers.
For the word or phrase you receive, reply with a JSON object:
- "meaning": a short, simple English definition (max 20 words)
- "translation": the most common %[1]s translation
- "example": one natural English sentence that uses it
If the input is misspelled, describe the word the learner most likely meant.
Output only JSON.`, language)
}

func gradeInstruction(language string) string {
	return fmt.Sprintf(`You grade vocabulary quiz answers from %[1]s speakers.
The learner sees an English word and must give its meaning, either in %[1]s or in English.
Accept synonyms, paraphrases, minor typos and missing punctuation.
Reply with a JSON object:
- "is_correct": true or false
- "feedback": a short explanation in %[1]s
- "examples": exactly %[2]d short English example sentences using the word
Output only JSON.`, language, maxExamples)
}

func lookupPrompt(word string) string {
	return fmt.Sprintf("Word: %q", word)
}

func gradePrompt(req domain.GradeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Word: %q\n", req.Word)
	if req.Meaning != "" {
		fmt.Fprintf(&b, "Reference meaning: %q\n", req.Meaning)
	}
	if req.Translation != "" {
		fmt.Fprintf(&b, "Reference translation: %q\n", req.Translation)
	}
	fmt.Fprintf(&b, "Learner answer: %q", req.Answer)
	return b.String()
}
