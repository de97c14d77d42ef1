package telegram

import (
	"context"
	"fmt"
	"log"

	"bingo-quiz-bot/internal/app"
	"bingo-quiz-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Send implements app.Notifier for timer-driven views.
func (b *Bot) Send(_ context.Context, chatID int64, view app.View) error {
	return b.sendView(chatID, view)
}

func (b *Bot) sendView(chatID int64, view app.View) error {
	if view.Image != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(view.Image))
		photo.Caption = view.Text
		if _, err := b.api.Send(photo); err != nil {
			log.Printf("send photo to chat %d: %v", chatID, err)
			// The result text still matters when the illustration is missing.
			return b.sendText(chatID, view.Text)
		}
		return nil
	}

	msg := tgbotapi.NewMessage(chatID, view.Text)
	if markup, ok := viewMarkup(view); ok {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}
	return nil
}

// editOrSendView updates the message the user tapped; falls back to a fresh
// message when editing fails (e.g. the message is too old).
func (b *Bot) editOrSendView(chatID int64, messageID int, view app.View) {
	markup, ok := viewMarkup(view)
	if view.Image != "" || !ok {
		if err := b.sendView(chatID, view); err != nil {
			log.Printf("send view to chat %d: %v", chatID, err)
		}
		return
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, view.Text, markup)
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("edit message %d in chat %d: %v", messageID, chatID, err)
		if err := b.sendView(chatID, view); err != nil {
			log.Printf("send view to chat %d: %v", chatID, err)
		}
	}
}

// sendQuiz presents a question as a native quiz poll and returns its poll id
// as the correlation id.
func (b *Bot) sendQuiz(chatID int64, q domain.Question) (string, error) {
	poll := tgbotapi.NewPoll(chatID, q.Prompt, q.Options...)
	poll.Type = "quiz"
	poll.CorrectOptionID = int64(q.CorrectIndex)
	poll.IsAnonymous = false
	poll.OpenPeriod = q.Duration

	sent, err := b.api.Send(poll)
	if err != nil {
		return "", fmt.Errorf("send quiz poll: %w", err)
	}
	if sent.Poll == nil {
		return "", fmt.Errorf("send quiz poll: response carries no poll")
	}
	return sent.Poll.ID, nil
}

func (b *Bot) sendText(chatID int64, text string) error {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}
	return nil
}

// reportFailure converts any uncaught handler error into one generic
// user-visible message plus a diagnostic log line.
func (b *Bot) reportFailure(chatID int64, op string, err error) {
	log.Printf("%s for chat %d: %v", op, chatID, err)
	if sendErr := b.sendText(chatID, genericFailure); sendErr != nil {
		log.Printf("report failure to chat %d: %v", chatID, sendErr)
	}
}

func (b *Bot) answerCallback(callbackID, text string) {
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := b.api.Request(callback); err != nil {
		log.Printf("answer callback: %v", err)
	}
}

func viewMarkup(view app.View) (tgbotapi.InlineKeyboardMarkup, bool) {
	if len(view.Rows) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(view.Rows))
	for _, row := range view.Rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Action))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}
