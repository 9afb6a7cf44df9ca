package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

type quizSender interface {
	SendQuiz(ctx context.Context) (bool, error)
	Broadcast(ctx context.Context) (domain.BroadcastResult, error)
}

// QuizTriggerHandler lets the external scheduler start a quiz round.
type QuizTriggerHandler struct {
	quiz quizSender
	log  *slog.Logger
}

// NewQuizTriggerHandler creates a QuizTriggerHandler.
func NewQuizTriggerHandler(quiz quizSender, log *slog.Logger) *QuizTriggerHandler {
	return &QuizTriggerHandler{quiz: quiz, log: log.With("handler", "quiz_trigger")}
}

// SendResponse is returned when a single learner was targeted.
type SendResponse struct {
	UserID string `json:"user_id"`
	Sent   bool   `json:"sent"`
}

// ServeHTTP quizzes every learner, or only ?user_id= when given.
func (h *QuizTriggerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if userID := strings.TrimSpace(r.URL.Query().Get("user_id")); userID != "" {
		sent, err := h.quiz.SendQuiz(ctxutil.WithUserID(ctx, userID))
		if err != nil {
			h.log.ErrorContext(ctx, "send quiz", slog.String("user_id", userID), slog.String("error", err.Error()))
			h.writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, SendResponse{UserID: userID, Sent: sent})
		return
	}

	res, err := h.quiz.Broadcast(ctx)
	if err != nil {
		h.log.ErrorContext(ctx, "broadcast", slog.String("error", err.Error()))
		h.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *QuizTriggerHandler) writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMessagingUnavailable):
		writeError(w, http.StatusBadGateway, "messaging unavailable")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "cancelled")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
