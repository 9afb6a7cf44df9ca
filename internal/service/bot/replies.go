package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/internal/service/quiz"
)

const (
	welcomeText = "👋 Hi! I'm your vocabulary coach.\n\n" +
		"Send \"add: <word>\" to save a word and I'll explain it.\n" +
		"I'll quiz you on your words a few times a day.\n" +
		"Type \"menu\" to see everything I can do."

	noQuizText          = "🤔 There's no quiz running. Type \"start\" to play, or \"menu\" for the command list."
	emptyVocabularyText = "📭 Your vocabulary is empty! Send \"add: <word>\" to save your first word."
	addUsageText        = "Put the word after the colon, e.g. \"add: resilience\"."
	deleteUsageText     = "Put the word to delete after the colon, e.g. \"delete: resilience\"."
	aiFailedText        = "⚠️ The AI couldn't handle that right now. Check the spelling and try again in a moment."
	gradeFailedText     = "😵‍💫 I couldn't check your answer right now. Please answer again."
	retryLaterText      = "⚠️ Something went wrong on our side. Please try again later."
)

func helpText(stats *domain.LearnerStats) string {
	var b strings.Builder
	b.WriteString("🤖 Commands:\n\n")
	b.WriteString("🎮 start - play a quiz\n")
	b.WriteString("💡 hint - show a hint\n")
	b.WriteString("📊 score - your stats\n")
	b.WriteString("📚 list - your latest words\n")
	b.WriteString("➕ add: <word> - save a word\n")
	b.WriteString("🗑️ delete: <word> - remove a word")
	if stats != nil {
		fmt.Fprintf(&b, "\n\n🏆 Score: %d | Mastered: %d", stats.Score, stats.Mastered)
	}
	return b.String()
}

func statsText(s domain.LearnerStats) string {
	text := fmt.Sprintf("📊 Your stats:\n\n🏆 Score: %d\n✅ Mastered: %d\n📚 Words: %d", s.Score, s.Mastered, s.Total)
	if s.Answers > 0 {
		text += fmt.Sprintf("\n📝 Answers: %d (%d%% correct)", s.Answers, s.PassRate())
	}
	return text
}

func hintText(r *quiz.HintResult) string {
	if !r.Charged {
		return fmt.Sprintf("💡 Hint: %s", r.Entry.Translation)
	}
	return fmt.Sprintf("💡 Hint: %s\n(-%d points, score %d)", r.Entry.Translation, r.Penalty, r.Score)
}

func listText(entries []domain.VocabularyEntry) string {
	if len(entries) == 0 {
		return emptyVocabularyText
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 Your latest %d words:\n", len(entries))
	for _, e := range entries {
		mark := "▫️"
		if e.IsMastered() {
			mark = "✅"
		}
		fmt.Fprintf(&b, "\n%s %s - %s", mark, e.Word, e.Translation)
	}
	return b.String()
}

func addedText(e *domain.VocabularyEntry) string {
	return fmt.Sprintf("✅ Saved!\n🔤 %s\n📖 %s\n🌏 %s\n🗣️ %s", e.Word, e.Meaning, e.Translation, e.Example)
}

func deletedText(e *domain.VocabularyEntry) string {
	return fmt.Sprintf("🗑️ Deleted \"%s\".", e.Word)
}

func alreadySavedText(word string) string {
	return fmt.Sprintf("📌 \"%s\" is already in your vocabulary.", word)
}

func notFoundText(word string) string {
	return fmt.Sprintf("🔍 \"%s\" isn't in your vocabulary.", word)
}

func invalidText(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return fmt.Sprintf("⚠️ %s %s.", ve.Errors[0].Field, ve.Errors[0].Message)
	}
	return "⚠️ I couldn't understand that."
}

func answerText(r *quiz.AnswerResult) string {
	var b strings.Builder
	if r.Grade.Passed {
		fmt.Fprintf(&b, "🎉 Correct! (+%d points)\n\n", r.Delta)
	} else {
		fmt.Fprintf(&b, "❌ Not quite (%d points)\n\n", r.Delta)
	}
	fmt.Fprintf(&b, "%s = %s", r.Entry.Word, r.Entry.Translation)
	if r.Grade.Feedback != "" {
		fmt.Fprintf(&b, "\n💬 %s", r.Grade.Feedback)
	}
	if len(r.Grade.Examples) > 0 {
		b.WriteString("\n\n🗣️ Examples:")
		for _, ex := range r.Grade.Examples {
			fmt.Fprintf(&b, "\n- %s", ex)
		}
	}
	fmt.Fprintf(&b, "\n\n🏆 Score: %d", r.Score)
	return b.String()
}
