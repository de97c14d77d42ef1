package telegram

import (
	"testing"

	"bingo-quiz-bot/internal/app"
)

func TestViewMarkup(t *testing.T) {
	view := app.View{
		Text: "Pick a category!",
		Rows: [][]app.Button{
			{{Label: "100", Action: "q:Warmup:100"}, {Label: "200", Action: "q:Warmup:200"}},
			{{Label: app.BackLabel, Action: "menu"}},
		},
	}

	markup, ok := viewMarkup(view)
	if !ok {
		t.Fatalf("expected a markup for a view with rows")
	}
	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(markup.InlineKeyboard))
	}
	btn := markup.InlineKeyboard[0][1]
	if btn.Text != "200" || btn.CallbackData == nil || *btn.CallbackData != "q:Warmup:200" {
		t.Fatalf("button mapping broken: %+v", btn)
	}
}

func TestViewMarkupEmpty(t *testing.T) {
	if _, ok := viewMarkup(app.View{Text: "plain"}); ok {
		t.Fatalf("expected no markup for a plain text view")
	}
}
