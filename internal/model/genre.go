// Package model defines the core domain types shared across the
// catalog, parser, and recommendation engine.
package model

import "strings"

// Genre is a closed enumeration of catalog genres.
// Free-form strings are converted at the parsing boundary via ParseGenre;
// everything past that boundary works with Genre values only.
type Genre string

const (
	GenreRPG        Genre = "RPG"
	GenreAction     Genre = "Action"
	GenreAdventure  Genre = "Adventure"
	GenreStrategy   Genre = "Strategy"
	GenreSimulation Genre = "Simulation"
	GenrePuzzle     Genre = "Puzzle"
	GenreIndie      Genre = "Indie"
	GenreHorror     Genre = "Horror"
	GenreRacing     Genre = "Racing"
	GenreSports     Genre = "Sports"

	// GenreUnknown is the sentinel for games that appear in tier tables
	// but not in the genre table.
	GenreUnknown Genre = "unknown"
)

// allGenres lists the canonical genres in declaration order.
var allGenres = []Genre{
	GenreRPG,
	GenreAction,
	GenreAdventure,
	GenreStrategy,
	GenreSimulation,
	GenrePuzzle,
	GenreIndie,
	GenreHorror,
	GenreRacing,
	GenreSports,
}

// AllGenres returns the canonical genres in a fixed order.
// The returned slice is a copy; callers may modify it.
func AllGenres() []Genre {
	out := make([]Genre, len(allGenres))
	copy(out, allGenres)
	return out
}

// ParseGenre matches a label against the genre enumeration,
// case-insensitively. Returns GenreUnknown, false on no match.
func ParseGenre(s string) (Genre, bool) {
	s = strings.TrimSpace(s)
	for _, g := range allGenres {
		if strings.EqualFold(s, string(g)) {
			return g, true
		}
	}
	return GenreUnknown, false
}

func (g Genre) String() string { return string(g) }

// Difficulty is a game's difficulty tier. The zero value means the
// catalog has no difficulty fact for the game.
type Difficulty string

const (
	DifficultyUnset  Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty matches a difficulty label case-insensitively.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return DifficultyUnset, false
}

// Popularity is a game's popularity tier. The zero value means the
// catalog has no popularity fact for the game.
type Popularity string

const (
	PopularityUnset Popularity = ""
	PopularityVery  Popularity = "very_popular"
	PopularityMid   Popularity = "popular"
	PopularityNiche Popularity = "niche"
)

// ParsePopularity matches a popularity label case-insensitively.
func ParsePopularity(s string) (Popularity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "very_popular":
		return PopularityVery, true
	case "popular":
		return PopularityMid, true
	case "niche":
		return PopularityNiche, true
	}
	return PopularityUnset, false
}
