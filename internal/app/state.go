package app

import (
	"bingo-quiz-bot/internal/domain"
)

// State transitions for a single question:
//
//	created -> inProgress -> correct | wrong
//
// Terminal states admit no further transitions. Only two events resolve an
// in-progress question: an answer and a timeout. Callers persist the session
// after a successful transition.

// FindInProgress returns the single in-progress question, if any. The
// orchestrator relies on it to enforce one question at a time per session.
func FindInProgress(s *domain.Session) *domain.Question {
	for i := range s.Categories {
		c := &s.Categories[i]
		for j := range c.Questions {
			if c.Questions[j].Status == domain.StatusInProgress {
				return &c.Questions[j]
			}
		}
	}
	return nil
}

// IsComplete reports whether every question in every category is terminal.
func IsComplete(s *domain.Session) bool {
	for _, c := range s.Categories {
		for _, q := range c.Questions {
			if !q.Status.Terminal() {
				return false
			}
		}
	}
	return true
}

// StartQuestion moves the (category, points) question to inProgress and binds
// the correlation id. It fails with ErrQuestionBusy when any other question
// is in progress, and with ErrQuestionNotStartable when the target already
// left the created state or carries a poll id. The session is not mutated on
// failure.
func StartQuestion(s *domain.Session, category string, points int, pollID string) (*domain.Question, error) {
	q, err := s.Question(category, points)
	if err != nil {
		return nil, err
	}
	if busy := FindInProgress(s); busy != nil {
		return nil, domain.ErrQuestionBusy
	}
	if q.Status != domain.StatusCreated || q.PollID != "" {
		return nil, domain.ErrQuestionNotStartable
	}
	q.PollID = pollID
	q.Status = domain.StatusInProgress
	return q, nil
}

// ApplyAnswer resolves the question bound to pollID. An empty choice (a
// retracted vote) counts as wrong; otherwise the first chosen index decides.
// Already-terminal questions are rejected with ErrQuestionFinished so a
// double-delivered answer event cannot re-score.
func ApplyAnswer(s *domain.Session, pollID string, chosen []int) (*domain.Question, *domain.Category, error) {
	q, c, err := s.QuestionByPollID(pollID)
	if err != nil {
		return nil, nil, err
	}
	if q.Status.Terminal() {
		return nil, nil, domain.ErrQuestionFinished
	}
	if len(chosen) == 0 {
		q.Status = domain.StatusWrong
		return q, c, nil
	}
	q.Answer = chosen[0]
	if q.Answer == q.CorrectIndex {
		q.Status = domain.StatusCorrect
	} else {
		q.Status = domain.StatusWrong
	}
	return q, c, nil
}

// ResolveTimeout forces an unanswered in-progress question to wrong. It is a
// no-op on terminal questions, which makes a late timer safe to fire after
// the user already answered. The returned bool reports whether the session
// changed and needs persisting.
func ResolveTimeout(s *domain.Session, category string, points int) (*domain.Question, bool, error) {
	q, err := s.Question(category, points)
	if err != nil {
		return nil, false, err
	}
	if q.Status != domain.StatusInProgress {
		return q, false, nil
	}
	q.Status = domain.StatusWrong
	return q, true, nil
}
