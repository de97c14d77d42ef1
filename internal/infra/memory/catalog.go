package memory

import (
	"context"

	"bingo-quiz-bot/internal/domain"
)

// StaticCatalogLoader serves catalogs from an in-memory map (demo runs and
// tests; production swaps in the Postgres loader).
type StaticCatalogLoader struct {
	catalogs map[string]domain.Catalog
}

func NewStaticCatalogLoader(catalogs map[string]domain.Catalog) *StaticCatalogLoader {
	return &StaticCatalogLoader{catalogs: catalogs}
}

func (l *StaticCatalogLoader) LoadCatalog(_ context.Context, id string) (domain.Catalog, error) {
	if catalog, ok := l.catalogs[id]; ok {
		return catalog, nil
	}
	return domain.Catalog{}, domain.ErrCatalogNotFound
}

// DefaultCatalog is the built-in demo content used when no Postgres is
// configured. Point values sum to 30720, inside the default band table.
func DefaultCatalog() domain.Catalog {
	return domain.Catalog{
		ID: "newyear-bingo",
		Categories: []domain.Category{
			{
				Name:        "Holiday classics",
				Description: "Traditions, movies, and songs of the season.",
				Questions: []domain.Question{
					{
						Prompt:       "Which plant do people traditionally kiss under?",
						Options:      []string{"Holly", "Mistletoe", "Ivy", "Fir"},
						CorrectIndex: 1,
						Points:       1024,
						Duration:     30,
					},
					{
						Prompt:       "In 'Home Alone', where does Kevin's family fly without him?",
						Options:      []string{"London", "Rome", "Paris", "Madrid"},
						CorrectIndex: 2,
						Points:       2048,
						Duration:     30,
					},
					{
						Prompt:       "Which country started the tradition of decorating fir trees?",
						Options:      []string{"Germany", "Russia", "Norway", "USA"},
						CorrectIndex: 0,
						Points:       4096,
						Duration:     45,
					},
					{
						Prompt:       "How many reindeer pull Santa's sleigh, Rudolph included?",
						Options:      []string{"7", "8", "9", "12"},
						CorrectIndex: 2,
						Points:       8192,
						Duration:     45,
					},
				},
			},
			{
				Name:        "Brain teasers",
				Description: "Warm up the gray matter before midnight.",
				Questions: []domain.Question{
					{
						Prompt:       "What is 2 to the 10th power?",
						Options:      []string{"512", "1024", "2048", "4096"},
						CorrectIndex: 1,
						Points:       1024,
						Duration:     30,
					},
					{
						Prompt:       "Which planet has the shortest year?",
						Options:      []string{"Mercury", "Venus", "Mars", "Neptune"},
						CorrectIndex: 0,
						Points:       2048,
						Duration:     30,
					},
					{
						Prompt:       "A clock shows 23:45. How many minutes until the New Year, if it is December 31?",
						Options:      []string{"10", "15", "25", "45"},
						CorrectIndex: 1,
						Points:       4096,
						Duration:     45,
					},
					{
						Prompt:       "Which of these is NOT a leap year?",
						Options:      []string{"2000", "2024", "2100", "2400"},
						CorrectIndex: 2,
						Points:       8192,
						Duration:     60,
					},
				},
			},
		},
	}
}
