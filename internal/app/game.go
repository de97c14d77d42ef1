package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"bingo-quiz-bot/internal/domain"
)

// SessionStore abstracts session persistence (Redis, in-memory). Sessions are
// re-read before every mutation and written back after; last write wins.
type SessionStore interface {
	Find(ctx context.Context, userID int64) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
}

// Notifier delivers views the orchestrator produces outside a request, such
// as the follow-up after a timeout fires.
type Notifier interface {
	Send(ctx context.Context, chatID int64, view View) error
}

// PresentFunc shows a question to the user and returns the correlation id of
// the freshly created poll. The transport owns id generation.
type PresentFunc func(session *domain.Session, q domain.Question) (string, error)

// WelcomeText greets a freshly started session.
const WelcomeText = `Bam! Welcome to the thrilling New Year bingo, a chance to test yourself in the style of the classic quiz show!

The rules are simple: answer the questions, and once you have dealt with them all, the New Year Bingo awaits you ⭐️

If the tougher categories start wearing you down, just send /bingo and get your result right away.

Good luck hunting for knowledge and New Year surprises!
🎄🎄🎄`

// timeoutGrace is added on top of the poll duration before the timer fires,
// leaving the platform a moment to deliver a last-second answer.
const timeoutGrace = time.Second

// Game mediates between inbound events, the session state machine, and the
// scoring engine. It holds no per-session state between events.
type Game struct {
	store     SessionStore
	catalog   domain.Catalog
	bands     BandTable
	maxScore  int
	scheduler *Scheduler
	notifier  Notifier
}

// NewGame validates the band table against the catalog and wires the
// orchestrator together.
func NewGame(store SessionStore, catalog domain.Catalog, bands BandTable) (*Game, error) {
	max := MaxScore(catalog)
	if err := bands.Validate(max); err != nil {
		return nil, fmt.Errorf("result bands: %w", err)
	}
	return &Game{
		store:     store,
		catalog:   catalog,
		bands:     bands,
		maxScore:  max,
		scheduler: NewScheduler(),
	}, nil
}

// SetNotifier installs the outbound channel for timer-driven views. The
// transport calls this once it is able to send.
func (g *Game) SetNotifier(n Notifier) {
	g.notifier = n
}

// Shutdown cancels all pending timeout timers.
func (g *Game) Shutdown() {
	g.scheduler.Stop()
}

// StartSession clones the catalog into a new session for the user, replacing
// any previous one, and returns the welcome view.
func (g *Game) StartSession(ctx context.Context, user domain.User, chatID int64) (View, error) {
	s := domain.NewSession(user, chatID, g.catalog)
	if err := g.store.Save(ctx, s); err != nil {
		return View{}, err
	}
	// Timers belonging to the replaced session must not fire into this one.
	g.scheduler.CancelUser(user.ID)
	return View{
		Text: WelcomeText,
		Rows: [][]Button{{{Label: PlayLabel, Action: Action{Kind: ActionMenu}.Encode()}}},
	}, nil
}

// Menu renders the category picker with current progress glyphs.
func (g *Game) Menu(ctx context.Context, userID int64) (View, error) {
	s, err := g.store.Find(ctx, userID)
	if err != nil {
		return View{}, err
	}
	return MenuView(s), nil
}

// CategoryPicker renders the question grid for one category.
func (g *Game) CategoryPicker(ctx context.Context, userID int64, category string) (View, error) {
	s, err := g.store.Find(ctx, userID)
	if err != nil {
		return View{}, err
	}
	c, err := s.Category(category)
	if err != nil {
		return View{}, err
	}
	return CategoryView(c), nil
}

// StartQuestion begins the (category, points) question. The question is
// presented through present, which returns the poll's correlation id; only
// then is the transition persisted and the timeout scheduled.
//
// When the exact same question is already in progress the selection is
// treated as a resume: the category picker is re-rendered and no state
// changes. Any other in-progress question rejects with ErrQuestionBusy.
func (g *Game) StartQuestion(ctx context.Context, userID int64, category string, points int, present PresentFunc) (*View, error) {
	s, err := g.store.Find(ctx, userID)
	if err != nil {
		return nil, err
	}
	q, err := s.Question(category, points)
	if err != nil {
		return nil, err
	}
	if busy := FindInProgress(s); busy != nil {
		if busy == q {
			c, err := s.Category(category)
			if err != nil {
				return nil, err
			}
			v := CategoryView(c)
			return &v, nil
		}
		return nil, domain.ErrQuestionBusy
	}
	if q.Status != domain.StatusCreated || q.PollID != "" {
		return nil, domain.ErrQuestionNotStartable
	}

	pollID, err := present(s, *q)
	if err != nil {
		return nil, err
	}
	if _, err := StartQuestion(s, category, points, pollID); err != nil {
		return nil, err
	}
	if err := g.store.Save(ctx, s); err != nil {
		return nil, err
	}

	g.scheduler.Schedule(userID, pollID, time.Duration(q.Duration)*time.Second+timeoutGrace, func() {
		g.fireTimeout(userID, category, points)
	})
	return nil, nil
}

// SubmitAnswer resolves the question bound to pollID and returns the
// follow-up view together with the chat it belongs to.
func (g *Game) SubmitAnswer(ctx context.Context, userID int64, pollID string, chosen []int) (View, int64, error) {
	s, err := g.store.Find(ctx, userID)
	if err != nil {
		return View{}, 0, err
	}
	_, c, err := ApplyAnswer(s, pollID, chosen)
	if err != nil {
		return View{}, s.ChatID, err
	}
	if err := g.store.Save(ctx, s); err != nil {
		return View{}, s.ChatID, err
	}
	// Cancelled only once the write sticks: after a failed save the timer
	// still fires and forces the persisted question to wrong.
	g.scheduler.Cancel(userID, pollID)
	return g.followUp(s, c.Name), s.ChatID, nil
}

// ResolveTimeout forces an unanswered question to wrong. It returns nil when
// the question was already terminal and nothing happened.
func (g *Game) ResolveTimeout(ctx context.Context, userID int64, category string, points int) (*View, int64, error) {
	s, err := g.store.Find(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	q, changed, err := ResolveTimeout(s, category, points)
	if err != nil {
		return nil, s.ChatID, err
	}
	if !changed {
		return nil, s.ChatID, nil
	}
	g.scheduler.Cancel(userID, q.PollID)
	if err := g.store.Save(ctx, s); err != nil {
		return nil, s.ChatID, err
	}
	v := g.followUp(s, category)
	return &v, s.ChatID, nil
}

// Progress reports the current score out of the catalog maximum.
func (g *Game) Progress(ctx context.Context, userID int64) (View, error) {
	s, err := g.store.Find(ctx, userID)
	if err != nil {
		return View{}, err
	}
	return View{Text: fmt.Sprintf("Your current bingo score: %d / %d", Score(s), g.maxScore)}, nil
}

// Result computes the final result view immediately, complete or not.
func (g *Game) Result(ctx context.Context, userID int64) (View, int64, error) {
	s, err := g.store.Find(ctx, userID)
	if err != nil {
		return View{}, 0, err
	}
	return ResultView(g.bands.Resolve(Score(s))), s.ChatID, nil
}

// followUp decides what comes after a resolved question: the final result
// once everything is terminal, otherwise the affected category's picker.
func (g *Game) followUp(s *domain.Session, category string) View {
	if IsComplete(s) {
		return ResultView(g.bands.Resolve(Score(s)))
	}
	c, err := s.Category(category)
	if err != nil {
		return MenuView(s)
	}
	return CategoryView(c)
}

func (g *Game) fireTimeout(userID int64, category string, points int) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	view, chatID, err := g.ResolveTimeout(ctx, userID, category, points)
	if err != nil {
		log.Printf("timeout for user %d %s/%d: %v", userID, category, points, err)
		return
	}
	if view == nil || g.notifier == nil {
		return
	}
	if err := g.notifier.Send(ctx, chatID, *view); err != nil {
		log.Printf("timeout notify user %d: %v", userID, err)
	}
}
