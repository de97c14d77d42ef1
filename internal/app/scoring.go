package app

import "bingo-quiz-bot/internal/domain"

// CategoryProgress returns how many questions are completed (terminal) and
// how many of those are correct, alongside the category size.
func CategoryProgress(c domain.Category) (completed, correct, total int) {
	total = len(c.Questions)
	for _, q := range c.Questions {
		if q.Status.Terminal() {
			completed++
		}
		if q.Status == domain.StatusCorrect {
			correct++
		}
	}
	return completed, correct, total
}

// Score sums the point values of correctly answered questions. Wrong and
// unanswered questions contribute nothing.
func Score(s *domain.Session) int {
	score := 0
	for _, c := range s.Categories {
		for _, q := range c.Questions {
			if q.Status == domain.StatusCorrect {
				score += q.Points
			}
		}
	}
	return score
}

// MaxScore sums every point value in the catalog, independent of any session.
func MaxScore(catalog domain.Catalog) int {
	max := 0
	for _, c := range catalog.Categories {
		for _, q := range c.Questions {
			max += q.Points
		}
	}
	return max
}
