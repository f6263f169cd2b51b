package challenge

import (
	"math/rand"

	"github.com/pixeldare/darekit/pkg/constraint"
)

// Catalog is an ordered challenge collection, typically the read-side
// projection of the persistence collaborator's challenge records.
type Catalog struct {
	Challenges []Challenge
}

// Defaults returns the built-in starter catalog used when no external
// catalog document is supplied.
func Defaults() Catalog {
	return Catalog{Challenges: []Challenge{
		{
			Title:             "Minimalist Logo",
			Description:       "Design a simple, memorable logo using two shapes and one accent color.",
			Constraints:       constraint.LegacyStrings{"2 shapes max", "1 accent color", "No text"},
			SuggestedFormat:   "logo",
			SuggestedDuration: 20,
		},
		{
			Title:             "Bold Instagram Post",
			Description:       "Create an attention-grabbing IG post with a limited palette.",
			Constraints:       constraint.LegacyStrings{"3 colors only", "Asymmetrical layout", "No stock photos"},
			SuggestedFormat:   "instagram",
			SuggestedDuration: 30,
		},
		{
			Title:             "YouTube Thumbnail — Dramatic",
			Description:       "Design a high-contrast thumbnail that reads clearly at small sizes.",
			Constraints:       constraint.LegacyStrings{"Large type", "High contrast", "Single focal point"},
			SuggestedFormat:   "youtube_thumbnail",
			SuggestedDuration: 25,
		},
	}}
}

// ByTitle returns the first challenge with the given title.
func (c Catalog) ByTitle(title string) (Challenge, bool) {
	for _, ch := range c.Challenges {
		if ch.Title == title {
			return ch, true
		}
	}
	return Challenge{}, false
}

// Titles returns the challenge titles in catalog order.
func (c Catalog) Titles() []string {
	titles := make([]string, 0, len(c.Challenges))
	for _, ch := range c.Challenges {
		titles = append(titles, ch.Title)
	}
	return titles
}

// Random picks one challenge using the supplied source. Reports false for an
// empty catalog.
func (c Catalog) Random(r *rand.Rand) (Challenge, bool) {
	if len(c.Challenges) == 0 {
		return Challenge{}, false
	}
	return c.Challenges[r.Intn(len(c.Challenges))], true
}
