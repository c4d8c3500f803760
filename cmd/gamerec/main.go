package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/virxdxk/gamerec/internal/catalog"
	"github.com/virxdxk/gamerec/internal/config"
	"github.com/virxdxk/gamerec/internal/logging"
	"github.com/virxdxk/gamerec/internal/model"
	"github.com/virxdxk/gamerec/internal/parse"
	"github.com/virxdxk/gamerec/internal/recommend"
	"github.com/virxdxk/gamerec/internal/ui"
)

// fatal reports a construction failure to stderr and the log file, then
// exits non-zero. Once the UI is running, errors are recovered inside
// the session loop instead.
func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	logging.Fatal(msg, "error", err)
}

func main() {
	if err := logging.Init(); err != nil {
		fatal("Failed to initialize logging", err)
	}
	defer logging.Close()

	sessionID := uuid.NewString()
	logging.Info("gamerec started", "session", sessionID)

	cfg, err := config.Load()
	if err != nil {
		logging.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	// The catalog is compiled in; Open seeds a private in-memory store.
	store, err := catalog.Open()
	if err != nil {
		fatal("Failed to build catalog", err)
	}
	defer store.Close()

	extractor := parse.New()
	engine := recommend.NewEngine(store)

	log := logging.WithPrefix("session")

	appCfg := ui.AppConfig{
		Parse: func(text string) tea.Cmd {
			return func() tea.Msg {
				parsed := extractor.Validate(extractor.Parse(text))
				if log != nil {
					log.Debug("parsed input",
						"session", sessionID,
						"age", parsed.Age, "has_age", parsed.HasAge,
						"genres", parsed.Genres, "valid", parsed.Valid)
				}
				return ui.ParseDone{Parsed: parsed}
			}
		},
		Recommend: func(profile model.Profile) tea.Cmd {
			return func() tea.Msg {
				result, err := engine.Recommend(profile)
				if err != nil && log != nil {
					log.Error("recommend failed", "session", sessionID, "error", err)
				}
				return ui.RecommendDone{Result: result, Err: err}
			}
		},
		Alternatives: func(age int, exclude []model.Genre) tea.Cmd {
			return func() tea.Msg {
				result, err := engine.Alternatives(age, exclude)
				if err != nil && log != nil {
					log.Error("alternatives failed", "session", sessionID, "error", err)
				}
				return ui.AlternativesDone{Result: result, Err: err}
			}
		},
		Genres:          store.AllGenres(),
		Examples:        parse.Examples(cfg.Language),
		MaxResults:      cfg.MaxResults,
		MaxAlternatives: cfg.MaxAlternatives,
	}

	program := tea.NewProgram(ui.NewApp(appCfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("Error running program", "error", err)
	}

	logging.Info("gamerec shutting down", "session", sessionID)
}
