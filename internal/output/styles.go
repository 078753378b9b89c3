package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, repo names, URLs.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for completed steps (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and skipped steps.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failed steps (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for separators and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (file paths, repo names, URLs).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles step titles (resolving, rewriting, installing, committing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (step prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleWarn styles warning lines.
	StyleWarn = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// StepStart prints the start marker for a named setup step.
func StepStart(title string) {
	Println(StyleDim.Render("==>") + " " + StyleAction.Render(title))
}

// StepDone prints the finish marker for a named setup step.
func StepDone(title string) {
	Println(FormatCheckmark(title))
}

// StepSkipped prints a marker for a step that was not run.
func StepSkipped(title, reason string) {
	Println(FormatStepSkipped(title, reason))
}

// FormatStepSkipped renders a skipped-step marker in the warning style.
func FormatStepSkipped(title, reason string) string {
	return StyleDim.Render("==>") + " " + StyleWarn.Render(title+" (skipped: "+reason+")")
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatLink renders a labelled URL for the final notes block.
func FormatLink(label, url string) string {
	return "  " + label + ": " + StyleNoun.Render(url)
}
