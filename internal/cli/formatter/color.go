package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dferenc/hireflow/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhasePill returns a colored phase indicator such as "● Questioning".
func PhasePill(phase domain.Phase) string {
	switch phase {
	case domain.PhaseAnalyzing:
		return StyleBlue.Render("○ Analyzing")
	case domain.PhaseQuestioning, domain.PhaseAwaitingAnswer:
		return StyleYellow.Render("● Questioning")
	case domain.PhaseGenerating:
		return StylePurple.Render("● Generating")
	case domain.PhaseComplete:
		return StyleGreen.Render("✔ Complete")
	case domain.PhaseDegradedComplete:
		return StyleYellow.Render("✔ Complete (degraded)")
	default:
		return StyleDim.Render(string(phase))
	}
}

// SlotStateIndicator returns a colored marker for a slot's resolution state.
func SlotStateIndicator(state domain.SlotState) string {
	switch state {
	case domain.SlotKnown:
		return StyleGreen.Render("●")
	case domain.SlotAmbiguous:
		return StyleYellow.Render("◐")
	default:
		return StyleDim.Render("○")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
