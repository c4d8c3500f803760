package model

// DefaultAgeRating is the conservative fallback for games without an
// age-rating fact: an unlisted game is treated as adults-only.
const DefaultAgeRating = 18

// Age bounds accepted from user input.
const (
	MinAge = 3
	MaxAge = 100
)

// Game is one catalog entry. Name is the unique key.
type Game struct {
	Name       string
	Genre      Genre
	AgeRating  int
	Difficulty Difficulty
	Popularity Popularity
	Platforms  []string
}

// Profile is what the extractor hands the engine: a validated age and
// preferred genres.
type Profile struct {
	Age    int
	Genres []Genre
}

// Recommendation is one ranked entry of a recommendation result.
// Produced fresh on every request; never cached.
type Recommendation struct {
	Name      string
	Genre     Genre
	AgeRating int
	Score     float64
	Platforms []string
}

// Result bundles a ranked recommendation list with its rationale and
// diagnostic set sizes.
type Result struct {
	Recommendations []Recommendation
	Reasoning       string
	TotalFound      int

	// Raw candidate-set sizes before intersection. Diagnostic only,
	// nothing downstream consumes them.
	AgeEligibleCount   int
	GenreEligibleCount int
}

// Top returns the first n recommendations (all of them if fewer).
func (r Result) Top(n int) []Recommendation {
	if n >= len(r.Recommendations) {
		return r.Recommendations
	}
	return r.Recommendations[:n]
}
