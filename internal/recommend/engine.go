package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/virxdxk/gamerec/internal/catalog"
	"github.com/virxdxk/gamerec/internal/model"
)

// youngUserAge is the age below which the family-friendly fallback
// strategy and the easy-difficulty scoring bonus apply.
const youngUserAge = 16

// Engine produces ranked recommendations from the catalog.
// The catalog is injected at construction and only read.
type Engine struct {
	store  *catalog.Store
	scorer *Additive
}

// NewEngine creates an engine over a catalog with the default scorer.
func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store, scorer: DefaultScorer()}
}

// Recommend ranks games for a user profile.
//
// Candidates are the intersection of the age-eligible and genre-eligible
// sets; when that intersection is empty the pool is broadened to
// age-eligible very-popular games, age-eligible easy games, and (for
// young users) age-eligible family-friendly genres. Candidates are
// scored by the additive heuristic and sorted score-descending with ties
// broken by name ascending.
func (e *Engine) Recommend(profile model.Profile) (model.Result, error) {
	ageEligible, err := e.ageEligible(profile.Age)
	if err != nil {
		return model.Result{}, err
	}
	genreEligible, err := e.genreEligible(profile.Genres)
	if err != nil {
		return model.Result{}, err
	}

	candidates := intersect(ageEligible, genreEligible)
	if len(candidates) == 0 {
		candidates, err = e.expand(profile.Age, ageEligible)
		if err != nil {
			return model.Result{}, err
		}
	}

	ranked, err := e.rank(candidates, profile)
	if err != nil {
		return model.Result{}, err
	}

	return model.Result{
		Recommendations:    ranked,
		Reasoning:          e.reasoning(profile, ranked),
		TotalFound:         len(ranked),
		AgeEligibleCount:   len(ageEligible),
		GenreEligibleCount: len(genreEligible),
	}, nil
}

// Alternatives ranks games from every genre except the excluded ones.
// Same algorithm as Recommend, invoked with the complement genre set.
func (e *Engine) Alternatives(age int, excluded []model.Genre) (model.Result, error) {
	skip := make(map[model.Genre]bool, len(excluded))
	for _, g := range excluded {
		skip[g] = true
	}

	var alternatives []model.Genre
	for _, g := range e.store.AllGenres() {
		if !skip[g] {
			alternatives = append(alternatives, g)
		}
	}

	return e.Recommend(model.Profile{Age: age, Genres: alternatives})
}

// ageEligible is the set of games whose minimum age rating is <= age.
func (e *Engine) ageEligible(age int) (map[string]bool, error) {
	names, err := e.store.GamesByMaxAge(age)
	if err != nil {
		return nil, fmt.Errorf("query age-eligible games: %w", err)
	}
	return toSet(names), nil
}

// genreEligible is the union of games across the preferred genres.
func (e *Engine) genreEligible(genres []model.Genre) (map[string]bool, error) {
	set := make(map[string]bool)
	for _, genre := range genres {
		names, err := e.store.GamesByGenre(genre)
		if err != nil {
			return nil, fmt.Errorf("query genre %s: %w", genre, err)
		}
		for _, name := range names {
			set[name] = true
		}
	}
	return set, nil
}

// expand broadens an empty primary intersection. Each strategy is itself
// intersected with the age-eligible set, so the fallback never offers an
// age-inappropriate game.
func (e *Engine) expand(age int, ageEligible map[string]bool) (map[string]bool, error) {
	expanded := make(map[string]bool)

	// Strategy 1: very popular games.
	popular, err := e.store.GamesByPopularity(model.PopularityVery)
	if err != nil {
		return nil, fmt.Errorf("query very-popular games: %w", err)
	}
	for _, name := range popular {
		if ageEligible[name] {
			expanded[name] = true
		}
	}

	// Strategy 2: easy games.
	easy, err := e.store.GamesByDifficulty(model.DifficultyEasy)
	if err != nil {
		return nil, fmt.Errorf("query easy games: %w", err)
	}
	for _, name := range easy {
		if ageEligible[name] {
			expanded[name] = true
		}
	}

	// Strategy 3: family-friendly genres for young users.
	if age < youngUserAge {
		family, err := e.genreEligible(catalog.FamilyFriendlyGenres)
		if err != nil {
			return nil, err
		}
		for name := range family {
			if ageEligible[name] {
				expanded[name] = true
			}
		}
	}

	return expanded, nil
}

// rank scores every candidate and sorts score-descending. Ties order
// lexicographically by name: the tie-break is a deliberate, documented
// choice so identical requests always produce identical lists.
func (e *Engine) rank(candidates map[string]bool, profile model.Profile) ([]model.Recommendation, error) {
	ctx := NewContext(profile.Age, profile.Genres)

	ranked := make([]model.Recommendation, 0, len(candidates))
	for name := range candidates {
		game, _, err := e.store.Game(name)
		if err != nil {
			return nil, fmt.Errorf("load game %q: %w", name, err)
		}
		ranked = append(ranked, model.Recommendation{
			Name:      game.Name,
			Genre:     game.Genre,
			AgeRating: game.AgeRating,
			Score:     e.scorer.Score(game, ctx),
			Platforms: game.Platforms,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})

	return ranked, nil
}

// reasoning builds the human-readable rationale for a ranked list.
func (e *Engine) reasoning(profile model.Profile, ranked []model.Recommendation) string {
	var parts []string

	parts = append(parts,
		fmt.Sprintf("Considering your age (%d), I selected games with an age rating of %d or below.", profile.Age, profile.Age))

	if len(profile.Genres) > 0 {
		labels := make([]string, len(profile.Genres))
		for i, g := range profile.Genres {
			labels[i] = string(g)
		}
		parts = append(parts,
			fmt.Sprintf("Based on your genre preferences (%s), I included matching games.", strings.Join(labels, ", ")))
	}

	if len(ranked) > 0 {
		parts = append(parts,
			fmt.Sprintf("Found %d suitable games, sorted by relevance.", len(ranked)))
		top := ranked[0]
		parts = append(parts,
			fmt.Sprintf("Top pick: %s (%s) - relevance %.2f.", top.Name, top.Genre, top.Score))
	} else {
		parts = append(parts,
			"No exact matches were found, so alternative options are suggested.")
	}

	return strings.Join(parts, " ")
}

func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for name := range a {
		if b[name] {
			out[name] = true
		}
	}
	return out
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
