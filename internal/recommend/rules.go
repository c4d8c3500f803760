// Package recommend ranks catalog games for a user profile.
//
// Scoring is rule evaluation, not a learned model: each Rule inspects one
// fact of a game and returns a score in [0, 1]; the Additive combiner
// sums the weighted rule scores and clamps the total. Rules are stateless
// and don't mutate games.
package recommend

import (
	"math"

	"github.com/virxdxk/gamerec/internal/model"
)

// Context provides the user profile rules score against.
type Context struct {
	Age       int
	Preferred map[model.Genre]bool
}

// NewContext builds a scoring context for an age and preferred genres.
func NewContext(age int, genres []model.Genre) *Context {
	preferred := make(map[model.Genre]bool, len(genres))
	for _, g := range genres {
		preferred[g] = true
	}
	return &Context{Age: age, Preferred: preferred}
}

// Rule scores one aspect of a game's fit for the user.
type Rule interface {
	// Name returns a unique identifier for this rule
	Name() string

	// Score returns this rule's fit score in [0, 1]
	Score(game model.Game, ctx *Context) float64
}

// AgeFitRule scores whether the game's rating admits the user's age.
type AgeFitRule struct{}

func (AgeFitRule) Name() string { return "age_fit" }

func (AgeFitRule) Score(game model.Game, ctx *Context) float64 {
	if game.AgeRating <= ctx.Age {
		return 1.0
	}
	return 0
}

// GenreFitRule scores whether the game's genre is one the user asked for.
type GenreFitRule struct{}

func (GenreFitRule) Name() string { return "genre_fit" }

func (GenreFitRule) Score(game model.Game, ctx *Context) float64 {
	if ctx.Preferred[game.Genre] {
		return 1.0
	}
	return 0
}

// PopularityRule gives the very-popular tier full score and the popular
// tier half, so with weight 0.2 the tiers contribute +0.2 and +0.1.
type PopularityRule struct{}

func (PopularityRule) Name() string { return "popularity" }

func (PopularityRule) Score(game model.Game, ctx *Context) float64 {
	switch game.Popularity {
	case model.PopularityVery:
		return 1.0
	case model.PopularityMid:
		return 0.5
	}
	return 0
}

// DifficultyFitRule scores age-appropriate difficulty: easy games for
// users under 16, medium games from 16 up.
type DifficultyFitRule struct{}

func (DifficultyFitRule) Name() string { return "difficulty_fit" }

func (DifficultyFitRule) Score(game model.Game, ctx *Context) float64 {
	if ctx.Age < 16 && game.Difficulty == model.DifficultyEasy {
		return 1.0
	}
	if ctx.Age >= 16 && game.Difficulty == model.DifficultyMedium {
		return 1.0
	}
	return 0
}

// Additive combines weighted rules by summation, clamped to Max.
// The standard rule set tops out at exactly 1.0, but the clamp bounds
// any future rule combination that would exceed it.
type Additive struct {
	rules   []Rule
	weights []float64

	// Max is the score ceiling.
	Max float64
}

// NewAdditive creates an empty additive combiner with a ceiling of 1.0.
func NewAdditive() *Additive {
	return &Additive{Max: 1.0}
}

// Add appends a rule with a weight.
func (a *Additive) Add(rule Rule, weight float64) *Additive {
	a.rules = append(a.rules, rule)
	a.weights = append(a.weights, weight)
	return a
}

// Score sums the weighted rule scores for a game, clamped to Max.
// The sum is rounded to two decimals, the precision the weights and the
// display use, so 0.3+0.4+0.2+0.1 is exactly 1.0 rather than just under.
func (a *Additive) Score(game model.Game, ctx *Context) float64 {
	var sum float64
	for i, rule := range a.rules {
		sum += rule.Score(game, ctx) * a.weights[i]
	}
	sum = math.Round(sum*100) / 100
	if sum > a.Max {
		return a.Max
	}
	return sum
}

// DefaultScorer returns the relevance heuristic: genre fit weighs most,
// then age fit, popularity, and difficulty fit.
func DefaultScorer() *Additive {
	return NewAdditive().
		Add(AgeFitRule{}, 0.3).
		Add(GenreFitRule{}, 0.4).
		Add(PopularityRule{}, 0.2).
		Add(DifficultyFitRule{}, 0.1)
}
