// Package parse extracts an age and a set of genre preferences from a
// free-text self-description. Extraction is cheap regex matching, no NLP:
// an ordered pattern cascade for the age, a two-phase scan for genres.
// Failures are data, not errors - callers inspect the validity flags.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/virxdxk/gamerec/internal/model"
)

// Parsed is the per-input extraction result. Created per user input,
// discarded after use.
type Parsed struct {
	Age    int
	HasAge bool
	Genres []model.Genre
	Raw    string

	// Set by Validate, never by Parse.
	AgeValid    bool
	AgeError    string
	GenresValid bool
	GenresError string
	Valid       bool
}

// agePatterns is the age cascade, tried in priority order. The first
// pattern whose captured digits parse to an age inside [MinAge, MaxAge]
// wins; an out-of-range capture falls through to later patterns.
// English phrasings first, then the Russian ones. The English patterns
// are word-anchored so "claim 12" or "average 5" never read as ages;
// \b is ASCII-only in Go regexp, so the Russian patterns stay unanchored.
var agePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bi\s+am\s+(\d+)\b`),
	regexp.MustCompile(`\bi'?m\s+(\d+)\b`),
	regexp.MustCompile(`\bage\s*:?\s*(\d+)\b`),
	regexp.MustCompile(`\b(\d+)\s+years\b`),
	regexp.MustCompile(`мне\s+(\d+)\s+лет`),
	regexp.MustCompile(`возраст\s*:?\s*(\d+)`),
	regexp.MustCompile(`(\d+)\s+лет`),
	regexp.MustCompile(`я\s+(\d+)\s+лет`),
}

// genrePatterns are the preference-introducing phrases. Each capture is
// the trailing span up to the next period. All matching patterns
// contribute; results are de-duplicated.
var genrePatterns = []*regexp.Regexp{
	regexp.MustCompile(`i\s+like\s*:?\s*([^.]+)`),
	regexp.MustCompile(`i\s+love\s*:?\s*([^.]+)`),
	regexp.MustCompile(`interests?\s*:?\s*([^.]+)`),
	regexp.MustCompile(`preferences?\s*:?\s*([^.]+)`),
	regexp.MustCompile(`genres?\s*:?\s*([^.]+)`),
	regexp.MustCompile(`мне\s+нравятся?\s*:?\s*([^.]+)`),
	regexp.MustCompile(`люблю\s*:?\s*([^.]+)`),
	regexp.MustCompile(`интересы?\s*:?\s*([^.]+)`),
	regexp.MustCompile(`предпочтения?\s*:?\s*([^.]+)`),
	regexp.MustCompile(`жанры?\s*:?\s*([^.]+)`),
}

// spanSplit separates listed genres inside a preference span.
var spanSplit = regexp.MustCompile(`[,.\-;]`)

// Extractor turns raw input lines into Parsed values. Stateless; safe
// for reuse across inputs.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Parse extracts age and genres from text. It never fails: missing
// values surface later as validity flags.
func (e *Extractor) Parse(text string) Parsed {
	text = strings.TrimSpace(text)
	age, hasAge := extractAge(text)
	return Parsed{
		Age:    age,
		HasAge: hasAge,
		Genres: extractGenres(text),
		Raw:    text,
	}
}

// Profile converts a validated Parsed into the profile the
// recommendation engine consumes.
func (p Parsed) Profile() model.Profile {
	return model.Profile{Age: p.Age, Genres: p.Genres}
}

// Validate annotates a Parsed with validity flags and human-readable
// error reasons. It never mutates the extracted values.
func (e *Extractor) Validate(p Parsed) Parsed {
	if p.HasAge {
		p.AgeValid = true
		p.AgeError = ""
	} else {
		p.AgeValid = false
		p.AgeError = "no age found in input"
	}

	if len(p.Genres) > 0 {
		p.GenresValid = true
		p.GenresError = ""
	} else {
		p.GenresValid = false
		p.GenresError = "no genres found in input"
	}

	p.Valid = p.AgeValid && p.GenresValid
	return p
}

func extractAge(text string) (int, bool) {
	lower := strings.ToLower(text)

	for _, pattern := range agePatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		age, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if age >= model.MinAge && age <= model.MaxAge {
			return age, true
		}
	}
	return 0, false
}

func extractGenres(text string) []model.Genre {
	lower := strings.ToLower(text)

	var found []model.Genre

	// Phase 1: preference-introducing phrases with a trailing genre span.
	for _, pattern := range genrePatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		found = append(found, genresFromSpan(m[1])...)
	}

	// Phase 2: no phrase matched anything - scan the whole input for
	// direct mentions of canonical labels.
	if len(found) == 0 {
		for _, genre := range model.AllGenres() {
			if strings.Contains(lower, strings.ToLower(string(genre))) {
				found = append(found, genre)
			}
		}
	}

	return dedupGenres(found)
}

// genresFromSpan resolves a preference span: localized synonyms first,
// then delimiter-split tokens matched by substring against the canonical
// labels.
func genresFromSpan(span string) []model.Genre {
	lower := strings.ToLower(span)

	var found []model.Genre
	for _, syn := range genreSynonyms {
		if strings.Contains(lower, syn.token) {
			found = append(found, syn.genre)
		}
	}

	for _, part := range spanSplit.Split(lower, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, genre := range model.AllGenres() {
			if strings.Contains(part, strings.ToLower(string(genre))) {
				found = append(found, genre)
			}
		}
	}

	return found
}

func dedupGenres(genres []model.Genre) []model.Genre {
	if len(genres) == 0 {
		return nil
	}
	seen := make(map[model.Genre]struct{}, len(genres))
	out := genres[:0]
	for _, g := range genres {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

// Examples returns canonical well-formed inputs for the help pane in the
// requested language ("ru" for the Russian phrasings, English otherwise).
func Examples(lang string) []string {
	if lang == "ru" {
		return []string{
			"Мне 13 лет, мне нравятся ролевые игры и инди",
			"Возраст: 25, люблю экшен и стратегии",
			"Мне 18 лет, интересы: ужасы, приключения",
			"Мне 30 лет, предпочтения: симуляторы, головоломки",
			"Возраст: 16, люблю гонки и спорт",
		}
	}
	return []string{
		"I am 13 years old, I like: RPG, indie",
		"Age: 25, I love Action and Strategy",
		"I'm 18, interests: Horror, Adventure",
		"I am 30 years old, preferences: Simulation, Puzzle",
		"Age 16, I like Racing and Sports",
	}
}
