package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"bingo-quiz-bot/internal/app"
	"bingo-quiz-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	cmdStart    = "start"
	cmdHelp     = "help"
	cmdMenu     = "menu"
	cmdProgress = "progress"
	cmdBingo    = "bingo"

	genericFailure = "Oops, something went wrong"

	// handlerTimeout bounds one inbound event's read-modify-write cycle.
	handlerTimeout = 15 * time.Second
)

// Bot adapts Telegram updates to orchestrator calls and renders the views it
// gets back. Each update is handled as an independent unit of work.
type Bot struct {
	api  *tgbotapi.BotAPI
	game *app.Game
}

// New creates the bot, registers the command menu, and installs itself as
// the orchestrator's outbound notifier.
func New(token string, game *app.Game) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}

	b := &Bot{api: api, game: game}
	game.SetNotifier(b)

	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: cmdHelp, Description: "What is this?"},
		tgbotapi.BotCommand{Command: cmdMenu, Description: "Main menu"},
		tgbotapi.BotCommand{Command: cmdProgress, Description: "Your current bingo score"},
		tgbotapi.BotCommand{Command: cmdBingo, Description: "Finish the bingo now!"},
	)
	if _, err := api.Request(commands); err != nil {
		log.Printf("set bot commands: %v", err)
	}
	return b, nil
}

// Run consumes updates until the context is done.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "callback_query", "poll_answer"}

	updates := b.api.GetUpdatesChan(u)
	log.Printf("bot %s started", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("recovered from panic in update handler: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	switch {
	case update.PollAnswer != nil:
		b.handlePollAnswer(ctx, update.PollAnswer)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil || !msg.Chat.IsPrivate() {
		return
	}
	if !msg.IsCommand() {
		return
	}

	switch msg.Command() {
	case cmdStart:
		user := domain.User{ID: msg.From.ID, FirstName: msg.From.FirstName}
		view, err := b.game.StartSession(ctx, user, msg.Chat.ID)
		if err != nil {
			b.reportFailure(msg.Chat.ID, "start session", err)
			return
		}
		b.sendView(msg.Chat.ID, view)
	case cmdHelp:
		b.sendText(msg.Chat.ID, helpText())
	case cmdMenu:
		view, err := b.game.Menu(ctx, msg.From.ID)
		if err != nil {
			b.reportFailure(msg.Chat.ID, "menu", err)
			return
		}
		b.sendView(msg.Chat.ID, view)
	case cmdProgress:
		view, err := b.game.Progress(ctx, msg.From.ID)
		if err != nil {
			b.reportFailure(msg.Chat.ID, "progress", err)
			return
		}
		b.sendView(msg.Chat.ID, view)
	case cmdBingo:
		view, chatID, err := b.game.Result(ctx, msg.From.ID)
		if err != nil {
			b.reportFailure(msg.Chat.ID, "bingo", err)
			return
		}
		b.sendView(chatID, view)
	default:
		b.sendText(msg.Chat.ID, "Unknown command. Try /help.")
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	action, err := app.ParseAction(cb.Data)
	if err != nil {
		log.Printf("callback from user %d: %v", cb.From.ID, err)
		b.answerCallback(cb.ID, "Unsupported action")
		return
	}

	switch action.Kind {
	case app.ActionMenu:
		b.answerCallback(cb.ID, "Categories")
		view, err := b.game.Menu(ctx, cb.From.ID)
		if err != nil {
			b.reportFailure(chatID, "menu callback", err)
			return
		}
		b.editOrSendView(chatID, cb.Message.MessageID, view)
	case app.ActionCategory:
		b.answerCallback(cb.ID, "You picked "+action.Category)
		view, err := b.game.CategoryPicker(ctx, cb.From.ID, action.Category)
		if err != nil {
			b.reportFailure(chatID, "category callback", err)
			return
		}
		b.editOrSendView(chatID, cb.Message.MessageID, view)
	case app.ActionQuestion:
		b.startQuestion(ctx, cb, chatID, action)
	}
}

func (b *Bot) startQuestion(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, action app.Action) {
	resumed, err := b.game.StartQuestion(ctx, cb.From.ID, action.Category, action.Points,
		func(session *domain.Session, q domain.Question) (string, error) {
			return b.sendQuiz(session.ChatID, q)
		})
	switch {
	case errors.Is(err, domain.ErrQuestionBusy):
		b.answerCallback(cb.ID, "Finish your current question first")
	case errors.Is(err, domain.ErrQuestionNotStartable):
		b.answerCallback(cb.ID, "This one cannot be started")
	case err != nil:
		b.answerCallback(cb.ID, genericFailure)
		log.Printf("start question %s/%d for user %d: %v", action.Category, action.Points, cb.From.ID, err)
	case resumed != nil:
		b.answerCallback(cb.ID, "Your question is still open")
		b.editOrSendView(chatID, cb.Message.MessageID, *resumed)
	default:
		b.answerCallback(cb.ID, fmt.Sprintf("You picked the %d-point question", action.Points))
	}
}

func (b *Bot) handlePollAnswer(ctx context.Context, pa *tgbotapi.PollAnswer) {
	userID := pa.User.ID
	view, chatID, err := b.game.SubmitAnswer(ctx, userID, pa.PollID, pa.OptionIDs)
	switch {
	case errors.Is(err, domain.ErrQuestionFinished):
		// Duplicate delivery; the question was already resolved.
		return
	case errors.Is(err, domain.ErrQuestionNotFound):
		log.Printf("poll %s not found for user %d", pa.PollID, userID)
		return
	case err != nil:
		if chatID != 0 {
			b.reportFailure(chatID, "poll answer", err)
		} else {
			log.Printf("poll answer for user %d: %v", userID, err)
		}
		return
	}
	b.sendView(chatID, view)
}

func helpText() string {
	return app.WelcomeText + `

Commands:
/help - game description and command list
/menu - show all categories
/progress - your current bingo score!
/bingo - get your bingo right now!`
}
