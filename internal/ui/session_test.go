package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/virxdxk/gamerec/internal/model"
	"github.com/virxdxk/gamerec/internal/parse"
)

// mockCmd tracks which command functions were invoked.
type mockCmd struct {
	parseCalled     bool
	recommendCalled bool
	altCalled       bool
	lastAge         int
	lastGenres      []model.Genre
}

func (m *mockCmd) parseCmd(text string) tea.Cmd {
	m.parseCalled = true
	return func() tea.Msg {
		return ParseDone{Parsed: parse.Parsed{
			Age: 13, HasAge: true,
			Genres:   []model.Genre{model.GenreRPG},
			Raw:      text,
			AgeValid: true, GenresValid: true, Valid: true,
		}}
	}
}

func (m *mockCmd) recommendCmd(profile model.Profile) tea.Cmd {
	m.recommendCalled = true
	m.lastAge = profile.Age
	m.lastGenres = profile.Genres
	return func() tea.Msg {
		return RecommendDone{Result: model.Result{
			Recommendations: []model.Recommendation{
				{Name: "Final Fantasy XV", Genre: model.GenreRPG, AgeRating: 13, Score: 0.7},
			},
			Reasoning:  "test rationale",
			TotalFound: 1,
		}}
	}
}

func (m *mockCmd) altCmd(age int, exclude []model.Genre) tea.Cmd {
	m.altCalled = true
	m.lastAge = age
	m.lastGenres = exclude
	return func() tea.Msg {
		return AlternativesDone{Result: model.Result{
			Recommendations: []model.Recommendation{
				{Name: "Portal 2", Genre: model.GenrePuzzle, AgeRating: 10, Score: 0.5},
			},
			TotalFound: 1,
		}}
	}
}

func newTestApp(mock *mockCmd) App {
	return NewApp(AppConfig{
		Parse:           mock.parseCmd,
		Recommend:       mock.recommendCmd,
		Alternatives:    mock.altCmd,
		Genres:          model.AllGenres(),
		Examples:        parse.Examples("en"),
		MaxResults:      5,
		MaxAlternatives: 3,
	})
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
	}
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestAppInit(t *testing.T) {
	app := newTestApp(&mockCmd{})
	if cmd := app.Init(); cmd == nil {
		t.Fatal("Init should return a command")
	}
	if app.mode != modeInput {
		t.Errorf("expected input mode, got %d", app.mode)
	}
}

func TestSubmitTriggersParse(t *testing.T) {
	mock := &mockCmd{}
	app := newTestApp(mock)

	app.input.SetValue("I am 13 years old, I like: RPG")
	next, cmd := app.Update(keyMsg("enter"))

	if !mock.parseCalled {
		t.Error("expected parse command to be invoked")
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if next.(App).mode != modeWorking {
		t.Errorf("expected working mode, got %d", next.(App).mode)
	}
}

func TestSubmitEmptyLineIgnored(t *testing.T) {
	mock := &mockCmd{}
	app := newTestApp(mock)

	next, _ := app.Update(keyMsg("enter"))
	if mock.parseCalled {
		t.Error("empty input must not trigger parsing")
	}
	if next.(App).mode != modeInput {
		t.Error("expected to stay in input mode")
	}
}

func TestExitKeywordQuits(t *testing.T) {
	for _, word := range []string{"exit", "quit", "q", "выход", "EXIT"} {
		mock := &mockCmd{}
		app := newTestApp(mock)
		app.input.SetValue(word)

		_, cmd := app.Update(keyMsg("enter"))
		if cmd == nil {
			t.Fatalf("%q: expected quit command", word)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: expected QuitMsg, got %T", word, cmd())
		}
	}
}

func TestValidParseTriggersRecommend(t *testing.T) {
	mock := &mockCmd{}
	app := newTestApp(mock)

	next, cmd := app.Update(ParseDone{Parsed: parse.Parsed{
		Age: 13, HasAge: true,
		Genres:   []model.Genre{model.GenreRPG},
		AgeValid: true, GenresValid: true, Valid: true,
	}})

	if !mock.recommendCalled {
		t.Error("expected recommend command to be invoked")
	}
	if mock.lastAge != 13 {
		t.Errorf("expected age 13, got %d", mock.lastAge)
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	_ = next
}

func TestInvalidParseReturnsToInput(t *testing.T) {
	mock := &mockCmd{}
	app := newTestApp(mock)

	next, _ := app.Update(ParseDone{Parsed: parse.Parsed{
		Raw:      "Hello",
		AgeError: "no age found in input", GenresError: "no genres found in input",
	}})

	if mock.recommendCalled {
		t.Error("invalid parse must not trigger recommendations")
	}
	if next.(App).mode != modeInput {
		t.Errorf("expected input mode, got %d", next.(App).mode)
	}

	view := next.(App).View()
	if !strings.Contains(view, "no age found in input") {
		t.Error("expected the age error in the view")
	}
}

func TestRecommendDoneShowsResults(t *testing.T) {
	app := newTestApp(&mockCmd{})

	next, _ := app.Update(RecommendDone{Result: model.Result{
		Recommendations: []model.Recommendation{
			{Name: "Final Fantasy XV", Genre: model.GenreRPG, AgeRating: 13, Score: 0.7},
		},
		Reasoning:  "test rationale",
		TotalFound: 1,
	}})

	got := next.(App)
	if got.mode != modeResults {
		t.Fatalf("expected results mode, got %d", got.mode)
	}

	view := got.View()
	if !strings.Contains(view, "Final Fantasy XV") {
		t.Error("expected game name in results view")
	}
	if !strings.Contains(view, "test rationale") {
		t.Error("expected rationale in results view")
	}
}

func TestRecommendErrorRecovers(t *testing.T) {
	app := newTestApp(&mockCmd{})

	next, _ := app.Update(RecommendDone{Err: errTest})
	got := next.(App)
	if got.mode != modeInput {
		t.Errorf("expected recovery to input mode, got %d", got.mode)
	}
	if !strings.Contains(got.View(), "Something went wrong") {
		t.Error("expected the error to be reported in the view")
	}
}

func TestYesInResultsRequestsAlternatives(t *testing.T) {
	mock := &mockCmd{}
	app := newTestApp(mock)
	app.mode = modeResults
	app.parsed = parse.Parsed{Age: 13, HasAge: true, Genres: []model.Genre{model.GenreRPG}, Valid: true}

	next, cmd := app.Update(keyMsg("y"))
	if !mock.altCalled {
		t.Error("expected alternatives command to be invoked")
	}
	if mock.lastAge != 13 {
		t.Errorf("expected age 13, got %d", mock.lastAge)
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if next.(App).mode != modeWorking {
		t.Errorf("expected working mode, got %d", next.(App).mode)
	}
}

func TestNoInResultsAsksToContinue(t *testing.T) {
	mock := &mockCmd{}
	app := newTestApp(mock)
	app.mode = modeResults

	next, _ := app.Update(keyMsg("n"))
	if mock.altCalled {
		t.Error("no must not trigger alternatives")
	}
	if next.(App).mode != modeContinue {
		t.Errorf("expected continue prompt, got %d", next.(App).mode)
	}
}

func TestRussianYesNoTokens(t *testing.T) {
	mock := &mockCmd{}
	app := newTestApp(mock)
	app.mode = modeResults
	app.parsed = parse.Parsed{Age: 13, HasAge: true, Genres: []model.Genre{model.GenreRPG}, Valid: true}

	if _, _ = app.Update(keyMsg("д")); !mock.altCalled {
		t.Error("expected 'д' to be accepted as yes")
	}
}

func TestContinueYesResetsSession(t *testing.T) {
	app := newTestApp(&mockCmd{})
	app.mode = modeContinue
	app.parsed = parse.Parsed{Age: 13, HasAge: true}

	next, _ := app.Update(keyMsg("y"))
	got := next.(App)
	if got.mode != modeInput {
		t.Errorf("expected input mode, got %d", got.mode)
	}
	if got.parsed.HasAge {
		t.Error("expected parsed state to be cleared")
	}
}

func TestContinueNoQuits(t *testing.T) {
	app := newTestApp(&mockCmd{})
	app.mode = modeContinue

	_, cmd := app.Update(keyMsg("n"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestPlaceholderFollowsExamples(t *testing.T) {
	examples := parse.Examples("ru")
	app := NewApp(AppConfig{Examples: examples})
	if app.input.Placeholder != examples[0] {
		t.Errorf("expected placeholder %q, got %q", examples[0], app.input.Placeholder)
	}
}

func TestViewShowsHeader(t *testing.T) {
	app := newTestApp(&mockCmd{})
	if !strings.Contains(app.View(), "GAME RECOMMENDER") {
		t.Error("expected header in view")
	}
}

// errTest is a sentinel for error-path tests.
var errTest = errors.New("test failure")
