package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

// AddWord looks the word up with the language model and saves it.
// Nothing is written when the lookup fails. A word the learner already saved
// is rejected by the database with domain.ErrAlreadyExists.
func (s *Service) AddWord(ctx context.Context, input AddWordInput) (*domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxWordLength); err != nil {
		return nil, err
	}

	word := strings.Join(strings.Fields(input.Word), " ")

	lookup, err := s.ai.LookupWord(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("lookup word: %w", err)
	}

	entry, err := s.entries.Create(ctx, &domain.VocabularyEntry{
		ID:             uuid.New(),
		UserID:         userID,
		Word:           word,
		WordNormalized: domain.NormalizeText(word),
		Meaning:        lookup.Meaning,
		Translation:    lookup.Translation,
		Example:        lookup.Example,
	})
	if err != nil {
		return nil, fmt.Errorf("create vocabulary entry: %w", err)
	}

	s.log.InfoContext(ctx, "word added",
		slog.String("user_id", userID),
		slog.String("entry_id", entry.ID.String()),
		slog.String("word", entry.Word),
	)

	return entry, nil
}
