package quiz

import (
	"fmt"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// Question renders the quiz prompt for an entry. Pushed quizzes and the
// start command use the same text.
func (s *Service) Question(e *domain.VocabularyEntry) string {
	text := fmt.Sprintf("📝 Quiz time!\nWhat does \"%s\" mean?\n\nReply with the meaning.", e.Word)
	if s.cfg.HintPenalty > 0 {
		return text + fmt.Sprintf(" Type \"hint\" for a hint (-%d points).", s.cfg.HintPenalty)
	}
	return text + ` Type "hint" for a hint.`
}
