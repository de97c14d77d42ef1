package domain

// Status tracks a question through its lifecycle. The values double as the
// JSON representation inside persisted session documents.
type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "inProgress"
	StatusCorrect    Status = "correct"
	StatusWrong      Status = "wrong"
)

// Terminal reports whether the question reached a final state.
func (s Status) Terminal() bool {
	return s == StatusCorrect || s == StatusWrong
}

// NoAnswer is the Answer value of a question nobody has answered yet.
const NoAnswer = -1

// User identifies the session owner on the chat platform.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
}

// Question is one quiz item. Within a category it is identified by its point
// value; PollID binds it to the outbound quiz poll once started.
type Question struct {
	PollID       string   `json:"pollId"`
	Prompt       string   `json:"question"`
	Points       int      `json:"points"`
	Status       Status   `json:"status"`
	Answer       int      `json:"answer"`
	Duration     int      `json:"duration"` // seconds the poll stays open
	CorrectIndex int      `json:"correctIndex"`
	Options      []string `json:"options"`
}

// Category groups questions under a unique name.
type Category struct {
	Name        string     `json:"categoryName"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Catalog is the static category tree sessions are cloned from.
type Catalog struct {
	ID         string     `json:"id"`
	Categories []Category `json:"categories"`
}

// Session is one user's private play-through, keyed by user id in the store.
type Session struct {
	User       User       `json:"user"`
	ChatID     int64      `json:"chatId"`
	Categories []Category `json:"categories"`
}

// NewSession deep-copies the catalog into a fresh session for the user.
// The copy shares nothing with the catalog; question state is reset.
func NewSession(user User, chatID int64, catalog Catalog) *Session {
	categories := make([]Category, len(catalog.Categories))
	for i, c := range catalog.Categories {
		questions := make([]Question, len(c.Questions))
		for j, q := range c.Questions {
			q.Options = append([]string(nil), q.Options...)
			q.PollID = ""
			q.Status = StatusCreated
			q.Answer = NoAnswer
			questions[j] = q
		}
		categories[i] = Category{
			Name:        c.Name,
			Description: c.Description,
			Questions:   questions,
		}
	}
	return &Session{User: user, ChatID: chatID, Categories: categories}
}

// Category returns the named category or ErrCategoryNotFound.
func (s *Session) Category(name string) (*Category, error) {
	for i := range s.Categories {
		if s.Categories[i].Name == name {
			return &s.Categories[i], nil
		}
	}
	return nil, ErrCategoryNotFound
}

// Question returns the question identified by (category, points).
func (s *Session) Question(category string, points int) (*Question, error) {
	c, err := s.Category(category)
	if err != nil {
		return nil, err
	}
	return c.Question(points)
}

// QuestionByPollID searches all categories for the question bound to the
// given correlation id.
func (s *Session) QuestionByPollID(pollID string) (*Question, *Category, error) {
	if pollID == "" {
		return nil, nil, ErrQuestionNotFound
	}
	for i := range s.Categories {
		c := &s.Categories[i]
		for j := range c.Questions {
			if c.Questions[j].PollID == pollID {
				return &c.Questions[j], c, nil
			}
		}
	}
	return nil, nil, ErrQuestionNotFound
}

// Question returns the question worth the given points or ErrQuestionNotFound.
func (c *Category) Question(points int) (*Question, error) {
	for i := range c.Questions {
		if c.Questions[i].Points == points {
			return &c.Questions[i], nil
		}
	}
	return nil, ErrQuestionNotFound
}
