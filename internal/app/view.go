package app

import (
	"fmt"
	"strconv"
	"strings"

	"bingo-quiz-bot/internal/domain"
)

// View is a transport-agnostic response descriptor: a text (or caption when
// Image is set) plus an optional grid of labeled actions.
type View struct {
	Text  string
	Image string
	Rows  [][]Button
}

// Button pairs a label with an encoded action payload.
type Button struct {
	Label  string
	Action string
}

// ActionKind discriminates decoded callback payloads.
type ActionKind string

const (
	ActionMenu     ActionKind = "menu"
	ActionCategory ActionKind = "cat"
	ActionQuestion ActionKind = "q"
)

// Action is the decoded form of a callback payload. One parametrized handler
// dispatches on it instead of registering a handler per content item.
type Action struct {
	Kind     ActionKind
	Category string
	Points   int
}

// Encode renders the action as a compact callback string.
func (a Action) Encode() string {
	switch a.Kind {
	case ActionCategory:
		return string(ActionCategory) + ":" + a.Category
	case ActionQuestion:
		return string(ActionQuestion) + ":" + a.Category + ":" + strconv.Itoa(a.Points)
	default:
		return string(ActionMenu)
	}
}

// ParseAction decodes a callback payload produced by Encode.
func ParseAction(data string) (Action, error) {
	switch {
	case data == string(ActionMenu):
		return Action{Kind: ActionMenu}, nil
	case strings.HasPrefix(data, string(ActionCategory)+":"):
		name := strings.TrimPrefix(data, string(ActionCategory)+":")
		if name == "" {
			return Action{}, fmt.Errorf("empty category in action %q", data)
		}
		return Action{Kind: ActionCategory, Category: name}, nil
	case strings.HasPrefix(data, string(ActionQuestion)+":"):
		rest := strings.TrimPrefix(data, string(ActionQuestion)+":")
		sep := strings.LastIndex(rest, ":")
		if sep <= 0 {
			return Action{}, fmt.Errorf("malformed question action %q", data)
		}
		points, err := strconv.Atoi(rest[sep+1:])
		if err != nil {
			return Action{}, fmt.Errorf("malformed points in action %q: %w", data, err)
		}
		return Action{Kind: ActionQuestion, Category: rest[:sep], Points: points}, nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", data)
	}
}

// Observable keyboard contract: question buttons are grouped four per row,
// with a final single-button row going back to the category menu.
const (
	QuestionsPerRow = 4
	BackLabel       = "Back"
	PlayLabel       = "Play"

	glyphFlawless = "\U0001F48E" // 💎 every question correct
	glyphDone     = "\U0001F3AF" // 🎯 every question completed
	glyphCorrect  = "✅"     // ✅ suffix on a correct question
)

// CategoryLabel decorates a category name with its progress glyph.
func CategoryLabel(c domain.Category) string {
	completed, correct, total := CategoryProgress(c)
	switch {
	case completed > 0 && completed == total && completed == correct:
		return glyphFlawless + " " + c.Name
	case completed > 0 && completed == total:
		return glyphDone + " " + c.Name
	case completed > 0:
		return fmt.Sprintf("%d/%d %s", completed, total, c.Name)
	default:
		return c.Name
	}
}

// QuestionLabel renders the point-value button for a question: a checkmark
// suffix once correct, a blank label once wrong, the plain value otherwise.
func QuestionLabel(q domain.Question) string {
	switch q.Status {
	case domain.StatusCorrect:
		return strconv.Itoa(q.Points) + " " + glyphCorrect
	case domain.StatusWrong:
		return "   "
	default:
		return strconv.Itoa(q.Points)
	}
}

// MenuView lists the session's categories, one per row.
func MenuView(s *domain.Session) View {
	rows := make([][]Button, 0, len(s.Categories))
	for _, c := range s.Categories {
		rows = append(rows, []Button{{
			Label:  CategoryLabel(c),
			Action: Action{Kind: ActionCategory, Category: c.Name}.Encode(),
		}})
	}
	return View{Text: "Pick a category!", Rows: rows}
}

// CategoryView is the question picker for one category.
func CategoryView(c *domain.Category) View {
	buttons := make([]Button, 0, len(c.Questions))
	for _, q := range c.Questions {
		buttons = append(buttons, Button{
			Label:  QuestionLabel(q),
			Action: Action{Kind: ActionQuestion, Category: c.Name, Points: q.Points}.Encode(),
		})
	}
	rows := chunkButtons(buttons, QuestionsPerRow)
	rows = append(rows, []Button{{Label: BackLabel, Action: Action{Kind: ActionMenu}.Encode()}})
	return View{
		Text: fmt.Sprintf("%s. %s", c.Name, c.Description),
		Rows: rows,
	}
}

// ResultView wraps a resolved band into a final-result descriptor.
func ResultView(b Band) View {
	return View{Text: b.Text, Image: b.Image}
}

func chunkButtons(buttons []Button, size int) [][]Button {
	var rows [][]Button
	for i := 0; i < len(buttons); i += size {
		end := i + size
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, buttons[i:end])
	}
	return rows
}
