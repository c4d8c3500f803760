package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorError     = lipgloss.Color("203") // Red
)

// TitleBar style for the application header.
var TitleBar = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// SectionHeader style for pane headings ("RECOMMENDATIONS", "EXAMPLES").
var SectionHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	MarginTop(1)

// GameName style for recommended game titles.
var GameName = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// GenreBadge style for genre labels next to game names.
var GenreBadge = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// AgeBadge style for age-rating labels.
var AgeBadge = lipgloss.NewStyle().
	Foreground(colorWarning).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// ScoreText style for relevance scores.
var ScoreText = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// MutedText style for secondary information (platforms, hints).
var MutedText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// Rationale style for the reasoning block.
var Rationale = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Italic(true).
	MarginTop(1)

// PromptText style for yes/no follow-up prompts.
var PromptText = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true).
	MarginTop(1)

// ErrorText style for parse errors and recovered failures.
var ErrorText = lipgloss.NewStyle().
	Foreground(colorError)

// FeedbackText style for the parsed age/genre echo.
var FeedbackText = lipgloss.NewStyle().
	Foreground(colorSuccess)
