package parse

import "github.com/virxdxk/gamerec/internal/model"

// synonym maps a localized colloquial genre name to its canonical genre.
// Evaluated in order, before the generic substring scan, so explicit
// synonyms always win over accidental substring hits.
type synonym struct {
	token string
	genre model.Genre
}

// genreSynonyms carries the Russian colloquial names the original user
// base writes genres with. Tokens are matched by substring containment
// against the lowercased preference span.
var genreSynonyms = []synonym{
	{"инди-игры", model.GenreIndie},
	{"инди игры", model.GenreIndie},
	{"инди", model.GenreIndie},
	{"ролевые игры", model.GenreRPG},
	{"ролевые", model.GenreRPG},
	{"экшен", model.GenreAction},
	{"экшн", model.GenreAction},
	{"приключения", model.GenreAdventure},
	{"стратегия", model.GenreStrategy},
	{"стратегии", model.GenreStrategy},
	{"симулятор", model.GenreSimulation},
	{"симуляторы", model.GenreSimulation},
	{"головоломки", model.GenrePuzzle},
	{"головоломка", model.GenrePuzzle},
	{"ужасы", model.GenreHorror},
	{"хоррор", model.GenreHorror},
	{"гонки", model.GenreRacing},
	{"спортивные", model.GenreSports},
	{"спорт", model.GenreSports},
}
