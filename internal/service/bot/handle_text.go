package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/internal/service/vocabulary"
)

// HandleText runs the command carried by text and returns the reply. It never
// fails: errors are logged and turned into a user-facing message.
func (s *Service) HandleText(ctx context.Context, text string) string {
	cmd := parseCommand(text)

	reply, err := s.dispatch(ctx, cmd)
	if err != nil {
		return s.errorReply(ctx, cmd, err)
	}
	return reply
}

// HandleFollow greets a learner who added the bot as a friend.
func (s *Service) HandleFollow(ctx context.Context) string {
	return welcomeText
}

func (s *Service) dispatch(ctx context.Context, cmd command) (string, error) {
	switch cmd.kind {
	case cmdHelp:
		stats, err := s.learners.Stats(ctx)
		if err != nil {
			s.log.WarnContext(ctx, "stats for menu", slog.String("error", err.Error()))
			return helpText(nil), nil
		}
		return helpText(&stats), nil

	case cmdStats:
		stats, err := s.learners.Stats(ctx)
		if err != nil {
			return "", err
		}
		return statsText(stats), nil

	case cmdStart:
		entry, err := s.quiz.Start(ctx)
		if err != nil {
			return "", err
		}
		return s.quiz.Question(entry), nil

	case cmdHint:
		res, err := s.quiz.Hint(ctx)
		if err != nil {
			return "", err
		}
		return hintText(res), nil

	case cmdList:
		entries, err := s.words.ListRecent(ctx)
		if err != nil {
			return "", err
		}
		return listText(entries), nil

	case cmdDelete:
		if cmd.arg == "" {
			return deleteUsageText, nil
		}
		entry, err := s.words.DeleteWord(ctx, vocabulary.DeleteWordInput{Word: cmd.arg})
		if err != nil {
			return "", err
		}
		return deletedText(entry), nil

	case cmdAdd:
		if cmd.arg == "" {
			return addUsageText, nil
		}
		entry, err := s.words.AddWord(ctx, vocabulary.AddWordInput{Word: cmd.arg})
		if err != nil {
			return "", err
		}
		return addedText(entry), nil

	default:
		res, err := s.quiz.Answer(ctx, cmd.arg)
		if err != nil {
			return "", err
		}
		return answerText(res), nil
	}
}

func (s *Service) errorReply(ctx context.Context, cmd command, err error) string {
	switch {
	case errors.Is(err, domain.ErrNoPendingQuiz):
		return noQuizText
	case errors.Is(err, domain.ErrEmptyVocabulary):
		return emptyVocabularyText
	case errors.Is(err, domain.ErrAlreadyExists) && cmd.kind == cmdAdd:
		return alreadySavedText(cmd.arg)
	case errors.Is(err, domain.ErrNotFound) && cmd.kind == cmdDelete:
		return notFoundText(cmd.arg)
	case errors.Is(err, domain.ErrValidation):
		return invalidText(err)
	case errors.Is(err, domain.ErrAIUnavailable):
		s.log.WarnContext(ctx, "ai unavailable", slog.String("error", err.Error()))
		if cmd.kind == cmdAnswer {
			return gradeFailedText
		}
		return aiFailedText
	default:
		s.log.ErrorContext(ctx, "command failed", slog.String("error", err.Error()))
		return retryLaterText
	}
}
