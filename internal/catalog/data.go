package catalog

import "github.com/virxdxk/gamerec/internal/model"

// The catalog facts are compiled into the binary as five independent
// tables. The tables are maintained independently and are allowed to be
// inconsistent: a game mentioned only in a tier or platform table has no
// genre or age-rating fact, and lookups for it fall back to the sentinel
// genre and the conservative default rating.

// genreTable maps each genre to its games.
var genreTable = map[model.Genre][]string{
	model.GenreRPG:        {"The Witcher 3", "Skyrim", "Final Fantasy XV", "Persona 5", "Divinity: Original Sin 2"},
	model.GenreAction:     {"Grand Theft Auto V", "Assassin's Creed Valhalla", "Call of Duty: Modern Warfare", "Cyberpunk 2077"},
	model.GenreAdventure:  {"The Legend of Zelda: Breath of the Wild", "Uncharted 4", "Tomb Raider", "Life is Strange"},
	model.GenreStrategy:   {"Civilization VI", "Total War: Warhammer III", "Age of Empires IV", "Crusader Kings III"},
	model.GenreSimulation: {"The Sims 4", "Cities: Skylines", "Euro Truck Simulator 2", "Farming Simulator 22"},
	model.GenrePuzzle:     {"Portal 2", "Tetris Effect", "The Witness", "Baba is You"},
	model.GenreIndie:      {"Hollow Knight", "Celeste", "Stardew Valley", "Among Us", "Cuphead"},
	model.GenreHorror:     {"Resident Evil Village", "Silent Hill", "Outlast", "Amnesia: The Dark Descent"},
	model.GenreRacing:     {"Forza Horizon 5", "Gran Turismo 7", "Mario Kart 8", "Need for Speed Heat"},
	model.GenreSports:     {"FIFA 23", "NBA 2K23", "Rocket League", "Tony Hawk's Pro Skater 1+2"},
}

// ageTable maps a game to its minimum age rating. Games missing here are
// treated as adults-only by lookups but never appear in age-eligible sets.
var ageTable = map[string]int{
	"The Witcher 3":                           18,
	"Skyrim":                                  17,
	"Final Fantasy XV":                        13,
	"Persona 5":                               17,
	"Divinity: Original Sin 2":                17,
	"Grand Theft Auto V":                      18,
	"Assassin's Creed Valhalla":               17,
	"Call of Duty: Modern Warfare":            17,
	"Cyberpunk 2077":                          18,
	"The Legend of Zelda: Breath of the Wild": 10,
	"Uncharted 4":                             13,
	"Tomb Raider":                             17,
	"Life is Strange":                         13,
	"Civilization VI":                         10,
	"Total War: Warhammer III":                16,
	"Age of Empires IV":                       10,
	"Crusader Kings III":                      16,
	"The Sims 4":                              12,
	"Cities: Skylines":                        10,
	"Euro Truck Simulator 2":                  3,
	"Farming Simulator 22":                    3,
	"Portal 2":                                10,
	"Tetris Effect":                           3,
	"The Witness":                             10,
	"Baba is You":                             3,
	"Hollow Knight":                           10,
	"Celeste":                                 10,
	"Stardew Valley":                          10,
	"Among Us":                                10,
	"Cuphead":                                 10,
	"Resident Evil Village":                   18,
	"Silent Hill":                             17,
	"Outlast":                                 18,
	"Amnesia: The Dark Descent":               17,
	"Forza Horizon 5":                         3,
	"Gran Turismo 7":                          3,
	"Mario Kart 8":                            3,
	"Need for Speed Heat":                     13,
	"FIFA 23":                                 3,
	"NBA 2K23":                                3,
	"Rocket League":                           3,
	"Tony Hawk's Pro Skater 1+2":              10,
}

// difficultyTable maps each difficulty tier to its games.
var difficultyTable = map[model.Difficulty][]string{
	model.DifficultyEasy:   {"The Sims 4", "Cities: Skylines", "Stardew Valley", "Mario Kart 8", "FIFA 23", "Rocket League"},
	model.DifficultyMedium: {"Skyrim", "The Legend of Zelda: Breath of the Wild", "Uncharted 4", "Civilization VI", "Hollow Knight"},
	model.DifficultyHard:   {"The Witcher 3", "Dark Souls", "Cuphead", "Celeste", "Total War: Warhammer III"},
}

// popularityTable maps each popularity tier to its games.
var popularityTable = map[model.Popularity][]string{
	model.PopularityVery:  {"The Witcher 3", "Grand Theft Auto V", "Minecraft", "Among Us", "Rocket League"},
	model.PopularityMid:   {"Skyrim", "The Legend of Zelda: Breath of the Wild", "Stardew Valley", "Hollow Knight"},
	model.PopularityNiche: {"Divinity: Original Sin 2", "Crusader Kings III", "The Witness", "Baba is You"},
}

// platformTable maps each platform to its games.
var platformTable = map[string][]string{
	"PC":          {"The Witcher 3", "Skyrim", "Civilization VI", "Cities: Skylines", "Portal 2", "Hollow Knight"},
	"PlayStation": {"The Witcher 3", "Skyrim", "Uncharted 4", "Gran Turismo 7", "Persona 5"},
	"Xbox":        {"The Witcher 3", "Skyrim", "Forza Horizon 5", "Halo Infinite", "Gears 5"},
	"Nintendo":    {"The Legend of Zelda: Breath of the Wild", "Mario Kart 8", "Super Mario Odyssey"},
	"Mobile":      {"Among Us", "Candy Crush Saga", "Clash of Clans", "Pokemon GO"},
}

// FamilyFriendlyGenres is the fixed genre subset used by the young-user
// fallback strategy.
var FamilyFriendlyGenres = []model.Genre{model.GenrePuzzle, model.GenreRacing, model.GenreSports}
