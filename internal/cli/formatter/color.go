package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
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

// Dim renders text in the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// Bold renders text in the bold foreground style.
func Bold(s string) string { return StyleBold.Render(s) }

// StatusPill returns a colored indicator for a project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectActive:
		return StyleGreen.Render("● ACTIVE")
	case domain.ProjectCompleted:
		return StyleBlue.Render("● COMPLETED")
	case domain.ProjectOnHold:
		return StyleYellow.Render("● ON HOLD")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// PaymentPill returns a colored indicator for a bill's payment status.
func PaymentPill(status domain.PaymentStatus) string {
	switch status {
	case domain.PaymentPaid:
		return StyleGreen.Render("PAID")
	case domain.PaymentPending:
		return StyleYellow.Render("PENDING")
	default:
		return StyleDim.Render(string(status))
	}
}

// LiabilityBadge returns a colored label for a liability kind.
func LiabilityBadge(kind domain.LiabilityKind) string {
	switch kind {
	case domain.LiabilityRetention:
		return StyleBlue.Render("RETENTION")
	case domain.LiabilityPendingPO:
		return StylePurple.Render("PENDING PO")
	case domain.LiabilityUnbilledWork:
		return StyleYellow.Render("UNBILLED")
	default:
		return StyleDim.Render(string(kind))
	}
}

// ModuleBadge returns a colored label for a document's module tag.
func ModuleBadge(m domain.ModuleTag) string {
	switch m {
	case domain.ModuleMaster:
		return StyleBlue.Render("MASTER")
	case domain.ModuleSite:
		return StyleGreen.Render("SITE")
	case domain.ModuleFinance:
		return StylePurple.Render("FINANCE")
	case domain.ModuleLiability:
		return StyleYellow.Render("LIABILITY")
	default:
		return StyleDim.Render("GENERAL")
	}
}

// SignedMoney renders an amount green when non-negative, red when negative.
func SignedMoney(amount float64) string {
	if amount < 0 {
		return StyleRed.Render(Money(amount))
	}
	return StyleGreen.Render(Money(amount))
}
