package vocabulary

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// AddWordInput holds the parameters for saving a word.
type AddWordInput struct {
	Word string
}

// Validate checks all fields and collects all errors.
func (i AddWordInput) Validate(maxLen int) error {
	return validateWord(i.Word, maxLen)
}

// DeleteWordInput holds the parameters for deleting a word.
type DeleteWordInput struct {
	Word string
}

// Validate checks all fields and collects all errors.
func (i DeleteWordInput) Validate(maxLen int) error {
	return validateWord(i.Word, maxLen)
}

func validateWord(word string, maxLen int) error {
	var errs []domain.FieldError

	word = strings.TrimSpace(word)
	if word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if utf8.RuneCountInString(word) > maxLen {
		errs = append(errs, domain.FieldError{Field: "word", Message: "too long"})
	}
	if strings.ContainsAny(word, "\n\r") {
		errs = append(errs, domain.FieldError{Field: "word", Message: "must be a single line"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
