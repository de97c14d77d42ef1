package app

import (
	"fmt"
	"sort"
)

// Band maps a half-open score range [Min, Max) to a themed result. The last
// band of a table additionally covers its Max, so the tables stay exhaustive
// over [0, maxScore].
type Band struct {
	Min   int    `yaml:"min" json:"min"`
	Max   int    `yaml:"max" json:"max"`
	Text  string `yaml:"text" json:"text"`
	Image string `yaml:"image" json:"image"`
}

// BandTable is an ordered, contiguous set of result bands.
type BandTable []Band

// Validate checks that the bands are sorted, contiguous, start at zero, and
// cover every reachable score up to maxScore.
func (t BandTable) Validate(maxScore int) error {
	if len(t) == 0 {
		return fmt.Errorf("no result bands configured")
	}
	if !sort.SliceIsSorted(t, func(i, j int) bool { return t[i].Min < t[j].Min }) {
		return fmt.Errorf("result bands are not sorted by min")
	}
	if t[0].Min != 0 {
		return fmt.Errorf("first band starts at %d, want 0", t[0].Min)
	}
	for i, b := range t {
		if b.Max <= b.Min {
			return fmt.Errorf("band %d has empty range [%d, %d)", i, b.Min, b.Max)
		}
		if i > 0 && b.Min != t[i-1].Max {
			return fmt.Errorf("gap between band %d (ends %d) and band %d (starts %d)",
				i-1, t[i-1].Max, i, b.Min)
		}
	}
	if last := t[len(t)-1]; last.Max < maxScore {
		return fmt.Errorf("bands end at %d but max score is %d", last.Max, maxScore)
	}
	return nil
}

// Resolve maps a score to its band. Scores at or below zero, or otherwise
// outside the table, fall back to the lowest band.
func (t BandTable) Resolve(score int) Band {
	if len(t) == 0 {
		return Band{}
	}
	for i, b := range t {
		if score >= b.Min && score < b.Max {
			return b
		}
		// The top band is closed so the maximum score resolves.
		if i == len(t)-1 && score == b.Max {
			return b
		}
	}
	return t[0]
}

// DefaultBands is the built-in six-band result table used when the config
// file does not override it.
func DefaultBands() BandTable {
	return BandTable{
		{
			Min:   0,
			Max:   8192,
			Text:  "0 to 8192. Your mascot for the coming year is the chill guy!\n\nYou meet trouble with a shrug and a grin. Every worry can wait until tomorrow, the only thing that cannot is New Year's Eve. Next year finds you in a cozy spot, surrounded by cookies and the other small joys of life, solving whatever comes up without a drop of stress.",
			Image: "assets/results/chill-guy.jpeg",
		},
		{
			Min:   8192,
			Max:   16384,
			Text:  "8192 to 16384. Your mascot is Astro Boy.\n\nThis year you pushed through and came out tougher, and your restless mind dragged you into adventures your friends only dream about. You will charge into the next year just as bravely, though like Astro Boy you could use a steady mentor's hand nearby.",
			Image: "assets/results/astro-boy.jpeg",
		},
		{
			Min:   16384,
			Max:   20480,
			Text:  "16384 to 20480. Your mascot is Akira.\n\nYou break patterns and crack puzzles in your head. Passion for adventure meets raw brainpower: like your character you dive straight into problems and sort them out on the move. Next year brings projects of absurd difficulty, and the reward that follows them.",
			Image: "assets/results/akira.jpeg",
		},
		{
			Min:   20480,
			Max:   24576,
			Text:  "20480 to 24576. Your mascot is HAL 9000 from the Space Odyssey.\n\nYou are an analytical engine; your calm and your mind are hard to measure on a human scale. You probe the secrets of the universe and the nature of people. Next year you keep unraveling tangled riddles in fractions of a second, no matter how twisted the conditions.",
			Image: "assets/results/hal-9000.jpeg",
		},
		{
			Min:   24576,
			Max:   28672,
			Text:  "24576 to 28672. Your mascot is professor Dumbledore!\n\nYou reached mastery in your craft and are ready to pass wisdom to the next generation. Your insight inspires young talents to feats you will gladly recount over a mug of wheat ale. Next year you harvest the fruits of your work; expect discoveries, good company, and a little magic.",
			Image: "assets/results/dumbledore.jpeg",
		},
		{
			Min:   28672,
			Max:   33000,
			Text:  "28672 to 33000. Your mascot is Rick from Rick and Morty!\n\nYou did not even break a sweat: halfway through you were reciting Lobachevsky geometry and multiplying thousand-by-thousand matrices to stay awake. Everything comes to you as a game, everything you do is for the laughs. Next year throws every possible challenge at you, and you win them all, as usual. Fortune favors the bold!",
			Image: "assets/results/rick.jpeg",
		},
	}
}
