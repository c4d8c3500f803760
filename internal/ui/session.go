// Package ui is the interactive session loop: one profile line in, a
// ranked recommendation list out, with follow-up prompts for
// alternatives and continuation.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/virxdxk/gamerec/internal/model"
	"github.com/virxdxk/gamerec/internal/parse"
)

// sessionMode tracks where the dialogue is.
type sessionMode int

const (
	modeInput        sessionMode = iota // waiting for a profile line
	modeWorking                         // parse or recommend command in flight
	modeResults                         // showing results, asking about alternatives
	modeAlternatives                    // showing alternatives, asking about continuing
	modeContinue                        // asking about continuing
)

// AppConfig wires the session to the extractor and engine through
// injectable command functions, so tests can substitute mocks.
type AppConfig struct {
	// Parse extracts and validates a profile line.
	Parse func(text string) tea.Cmd

	// Recommend ranks games for a validated profile.
	Recommend func(profile model.Profile) tea.Cmd

	// Alternatives ranks games from every genre except the given ones.
	Alternatives func(age int, exclude []model.Genre) tea.Cmd

	// Genres is the closed genre list shown in the welcome pane.
	Genres []model.Genre

	// Examples are well-formed input lines shown in the help pane.
	Examples []string

	// MaxResults / MaxAlternatives bound how many entries each pane
	// shows.
	MaxResults      int
	MaxAlternatives int
}

// App is the root Bubble Tea model. It never touches the catalog or the
// engine directly; everything arrives via messages.
type App struct {
	cfg AppConfig

	input textinput.Model
	spin  spinner.Model

	mode   sessionMode
	parsed parse.Parsed
	result model.Result
	alt    model.Result
	err    error
	width  int
	height int
}

// NewApp creates the session model.
func NewApp(cfg AppConfig) App {
	ti := textinput.New()
	ti.Placeholder = "I am 13 years old, I like: RPG, indie"
	if len(cfg.Examples) > 0 {
		// The first example doubles as the placeholder, so it follows
		// the configured language.
		ti.Placeholder = cfg.Examples[0]
	}
	ti.Prompt = ">>> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	return App{
		cfg:   cfg,
		input: ti,
		spin:  sp,
		mode:  modeInput,
	}
}

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 8
		return a, nil

	case spinner.TickMsg:
		if a.mode == modeWorking {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case ParseDone:
		a.parsed = msg.Parsed
		if !msg.Parsed.Valid {
			// Invalid parse is data, not a failure: echo the reasons
			// and re-prompt.
			a.mode = modeInput
			return a, nil
		}
		if a.cfg.Recommend == nil {
			a.mode = modeInput
			return a, nil
		}
		return a, a.cfg.Recommend(msg.Parsed.Profile())

	case RecommendDone:
		if msg.Err != nil {
			a.err = msg.Err
			a.mode = modeInput
			return a, nil
		}
		a.result = msg.Result
		a.mode = modeResults
		return a, nil

	case AlternativesDone:
		if msg.Err != nil {
			a.err = msg.Err
			a.mode = modeContinue
			return a, nil
		}
		a.alt = msg.Result
		a.mode = modeAlternatives
		return a, nil
	}

	// Forward remaining messages to the focused text input.
	if a.mode == modeInput {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// exitWords terminate the session from the input line, case-insensitive.
var exitWords = map[string]bool{"exit": true, "quit": true, "q": true, "выход": true}

// Yes/no tokens accepted by the follow-up prompts.
var (
	yesWords = map[string]bool{"yes": true, "y": true, "да": true, "д": true}
	noWords  = map[string]bool{"no": true, "n": true, "нет": true, "н": true}
)

func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Any key press clears a recovered error.
	a.err = nil

	switch a.mode {
	case modeInput:
		if msg.String() == "enter" {
			return a.submitInput()
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd

	case modeResults:
		key := strings.ToLower(msg.String())
		switch {
		case yesWords[key]:
			if a.cfg.Alternatives == nil {
				a.mode = modeContinue
				return a, nil
			}
			a.mode = modeWorking
			return a, tea.Batch(
				a.cfg.Alternatives(a.parsed.Age, a.parsed.Genres),
				a.spin.Tick,
			)
		case noWords[key]:
			a.mode = modeContinue
			return a, nil
		}
		return a, nil

	case modeAlternatives, modeContinue:
		key := strings.ToLower(msg.String())
		switch {
		case yesWords[key]:
			return a.resetForNextRound()
		case noWords[key]:
			return a, tea.Quit
		}
		return a, nil
	}

	return a, nil
}

func (a App) submitInput() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(a.input.Value())
	if line == "" {
		return a, nil
	}
	if exitWords[strings.ToLower(line)] {
		return a, tea.Quit
	}
	if a.cfg.Parse == nil {
		return a, nil
	}

	a.mode = modeWorking
	return a, tea.Batch(a.cfg.Parse(line), a.spin.Tick)
}

func (a App) resetForNextRound() (tea.Model, tea.Cmd) {
	a.mode = modeInput
	a.parsed = parse.Parsed{}
	a.result = model.Result{}
	a.alt = model.Result{}
	a.input.SetValue("")
	a.input.Focus()
	return a, textinput.Blink
}

func (a App) View() string {
	var b strings.Builder

	b.WriteString(TitleBar.Render("GAME RECOMMENDER"))
	b.WriteString("\n")

	switch a.mode {
	case modeInput:
		a.viewInput(&b)
	case modeWorking:
		b.WriteString(fmt.Sprintf("\n%s Consulting the knowledge base...\n", a.spin.View()))
	case modeResults:
		a.viewResults(&b)
	case modeAlternatives:
		a.viewAlternatives(&b)
	case modeContinue:
		b.WriteString(PromptText.Render("Would you like new recommendations? (y/n)"))
		b.WriteString("\n")
	}

	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorText.Render(fmt.Sprintf("Something went wrong: %v. Try again.", a.err)))
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) viewInput(b *strings.Builder) {
	b.WriteString(MutedText.Render("Tell me your age and the genres you enjoy; I'll suggest games."))
	b.WriteString("\n")

	if len(a.cfg.Genres) > 0 {
		labels := make([]string, len(a.cfg.Genres))
		for i, g := range a.cfg.Genres {
			labels[i] = string(g)
		}
		b.WriteString(MutedText.Render("Genres: " + strings.Join(labels, ", ")))
		b.WriteString("\n")
	}

	if len(a.cfg.Examples) > 0 {
		b.WriteString(SectionHeader.Render("EXAMPLES"))
		b.WriteString("\n")
		for i, ex := range a.cfg.Examples {
			b.WriteString(MutedText.Render(fmt.Sprintf("  %d. %s", i+1, ex)))
			b.WriteString("\n")
		}
	}

	// Echo the previous round's parse outcome so the user can see what
	// was understood (or why it was rejected).
	if a.parsed.Raw != "" {
		a.viewParseFeedback(b)
	}

	b.WriteString("\n")
	b.WriteString(a.input.View())
	b.WriteString("\n")
	b.WriteString(MutedText.Render("type exit, quit or q to leave"))
	b.WriteString("\n")
}

func (a App) viewParseFeedback(b *strings.Builder) {
	b.WriteString(SectionHeader.Render("ANALYSIS"))
	b.WriteString("\n")

	age := "not found"
	if a.parsed.HasAge {
		age = fmt.Sprintf("%d", a.parsed.Age)
	}
	genres := "not found"
	if len(a.parsed.Genres) > 0 {
		labels := make([]string, len(a.parsed.Genres))
		for i, g := range a.parsed.Genres {
			labels[i] = string(g)
		}
		genres = strings.Join(labels, ", ")
	}

	b.WriteString(FeedbackText.Render(fmt.Sprintf("  Age: %s   Genres: %s", age, genres)))
	b.WriteString("\n")

	if !a.parsed.Valid {
		if !a.parsed.AgeValid {
			b.WriteString(ErrorText.Render("  - " + a.parsed.AgeError))
			b.WriteString("\n")
		}
		if !a.parsed.GenresValid {
			b.WriteString(ErrorText.Render("  - " + a.parsed.GenresError))
			b.WriteString("\n")
		}
		b.WriteString(MutedText.Render("  Use the examples above for the expected format."))
		b.WriteString("\n")
	}
}

func (a App) viewResults(b *strings.Builder) {
	b.WriteString(SectionHeader.Render("RECOMMENDATIONS"))
	b.WriteString("\n")

	if len(a.result.Recommendations) == 0 {
		b.WriteString(MutedText.Render("No suitable games were found. Try different criteria."))
		b.WriteString("\n")
	} else {
		a.viewRanked(b, a.result.Top(a.cfg.MaxResults))
		b.WriteString(Rationale.Render(a.result.Reasoning))
		b.WriteString("\n")
	}

	b.WriteString(PromptText.Render("Want alternative recommendations from other genres? (y/n)"))
	b.WriteString("\n")
}

func (a App) viewAlternatives(b *strings.Builder) {
	b.WriteString(SectionHeader.Render("ALTERNATIVES"))
	b.WriteString("\n")

	if len(a.alt.Recommendations) == 0 {
		b.WriteString(MutedText.Render("No alternative recommendations were found."))
		b.WriteString("\n")
	} else {
		a.viewRanked(b, a.alt.Top(a.cfg.MaxAlternatives))
	}

	b.WriteString(PromptText.Render("Would you like new recommendations? (y/n)"))
	b.WriteString("\n")
}

func (a App) viewRanked(b *strings.Builder, recs []model.Recommendation) {
	for i, rec := range recs {
		b.WriteString(fmt.Sprintf("%d. %s %s %s  %s\n",
			i+1,
			GameName.Render(rec.Name),
			GenreBadge.Render(string(rec.Genre)),
			AgeBadge.Render(fmt.Sprintf("%d+", rec.AgeRating)),
			ScoreText.Render(fmt.Sprintf("%.2f", rec.Score)),
		))
		if len(rec.Platforms) > 0 {
			b.WriteString(MutedText.Render("   " + strings.Join(rec.Platforms, ", ")))
			b.WriteString("\n")
		}
	}
}
