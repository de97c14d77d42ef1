package app_test

import (
	"testing"

	"bingo-quiz-bot/internal/app"
	"bingo-quiz-bot/internal/domain"
)

func TestActionCodecRoundTrip(t *testing.T) {
	actions := []app.Action{
		{Kind: app.ActionMenu},
		{Kind: app.ActionCategory, Category: "Warmup"},
		{Kind: app.ActionQuestion, Category: "Warmup", Points: 200},
		{Kind: app.ActionQuestion, Category: "Movies: classics", Points: 1024},
	}
	for _, a := range actions {
		got, err := app.ParseAction(a.Encode())
		if err != nil {
			t.Fatalf("parse %q: %v", a.Encode(), err)
		}
		if got != a {
			t.Fatalf("round trip %q: got %+v, want %+v", a.Encode(), got, a)
		}
	}
}

func TestParseActionRejectsGarbage(t *testing.T) {
	for _, data := range []string{"", "bogus", "cat:", "q:Warmup", "q:Warmup:NaN"} {
		if _, err := app.ParseAction(data); err == nil {
			t.Fatalf("expected parse error for %q", data)
		}
	}
}

func TestCategoryLabelGlyphs(t *testing.T) {
	category := func(statuses ...domain.Status) domain.Category {
		c := domain.Category{Name: "Warmup"}
		for i, st := range statuses {
			c.Questions = append(c.Questions, domain.Question{Points: (i + 1) * 100, Status: st})
		}
		return c
	}

	cases := []struct {
		name string
		cat  domain.Category
		want string
	}{
		{"untouched", category(domain.StatusCreated, domain.StatusCreated), "Warmup"},
		{"partial", category(domain.StatusCorrect, domain.StatusCreated), "1/2 Warmup"},
		{"done not flawless", category(domain.StatusCorrect, domain.StatusWrong), "\U0001F3AF Warmup"},
		{"flawless", category(domain.StatusCorrect, domain.StatusCorrect), "\U0001F48E Warmup"},
	}
	for _, tc := range cases {
		if got := app.CategoryLabel(tc.cat); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestQuestionLabel(t *testing.T) {
	cases := []struct {
		status domain.Status
		want   string
	}{
		{domain.StatusCreated, "100"},
		{domain.StatusInProgress, "100"},
		{domain.StatusCorrect, "100 ✅"},
		{domain.StatusWrong, "   "},
	}
	for _, tc := range cases {
		q := domain.Question{Points: 100, Status: tc.status}
		if got := app.QuestionLabel(q); got != tc.want {
			t.Fatalf("label for %s: got %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestCategoryViewGroupsQuestionsInRowsOfFour(t *testing.T) {
	c := domain.Category{Name: "Big", Description: "Lots of questions."}
	for i := 0; i < 9; i++ {
		c.Questions = append(c.Questions, domain.Question{Points: (i + 1) * 100})
	}

	view := app.CategoryView(&c)
	if len(view.Rows) != 4 {
		t.Fatalf("expected 3 question rows + back row, got %d rows", len(view.Rows))
	}
	for i, want := range []int{4, 4, 1} {
		if got := len(view.Rows[i]); got != want {
			t.Fatalf("row %d has %d buttons, want %d", i, got, want)
		}
	}

	backRow := view.Rows[len(view.Rows)-1]
	if len(backRow) != 1 || backRow[0].Label != app.BackLabel {
		t.Fatalf("expected single %q button in last row, got %+v", app.BackLabel, backRow)
	}
	if backRow[0].Action != (app.Action{Kind: app.ActionMenu}).Encode() {
		t.Fatalf("back button action = %q", backRow[0].Action)
	}
}

func TestMenuViewOneCategoryPerRow(t *testing.T) {
	s := newTestSession()
	view := app.MenuView(s)
	if len(view.Rows) != len(s.Categories) {
		t.Fatalf("expected %d rows, got %d", len(s.Categories), len(view.Rows))
	}
	for i, row := range view.Rows {
		if len(row) != 1 {
			t.Fatalf("row %d has %d buttons, want 1", i, len(row))
		}
	}
}
