package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mrg327/job-tracker/internal/model"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor pairs and "faint" styling is only
// applied on dark backgrounds (faint text on light terminals often becomes
// illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorHeaderBg   lipgloss.TerminalColor = ac("25", "25")
	colorHeaderFg   lipgloss.TerminalColor = ac("255", "255")
	colorFooterBg   lipgloss.TerminalColor = ac("124", "88")
	colorFooterFg   lipgloss.TerminalColor = ac("255", "255")
	colorFocusBg    lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorModalBg    lipgloss.TerminalColor = ac("255", "235")
	colorModalFg    lipgloss.TerminalColor = ac("235", "252")
	colorModalTitle lipgloss.TerminalColor = ac("27", "39")

	colorApplied   lipgloss.TerminalColor = ac("27", "39")  // blue
	colorInterview lipgloss.TerminalColor = ac("136", "11") // yellow
	colorOffer     lipgloss.TerminalColor = ac("28", "10")  // green
	colorRejected  lipgloss.TerminalColor = ac("160", "9")  // red
	colorWithdrawn lipgloss.TerminalColor = ac("88", "1")   // dark red

	colorUrgent lipgloss.TerminalColor = ac("160", "196")
	colorSoon   lipgloss.TerminalColor = ac("136", "220")
)

// Static status→style tables built once at init; row rendering never does a
// runtime palette lookup by name.
var (
	statusStyles      map[model.Status]lipgloss.Style
	statusFocusStyles map[model.Status]lipgloss.Style
)

func init() {
	statusColor := map[model.Status]lipgloss.TerminalColor{
		model.StatusApplied:   colorApplied,
		model.StatusInterview: colorInterview,
		model.StatusOffer:     colorOffer,
		model.StatusRejected:  colorRejected,
		model.StatusWithdrawn: colorWithdrawn,
	}
	statusStyles = make(map[model.Status]lipgloss.Style, len(statusColor))
	statusFocusStyles = make(map[model.Status]lipgloss.Style, len(statusColor))
	for st, c := range statusColor {
		statusStyles[st] = lipgloss.NewStyle().Foreground(c)
		statusFocusStyles[st] = lipgloss.NewStyle().Foreground(c).Background(colorFocusBg).Bold(true)
	}
}

func styleForJob(j model.Job, focused bool, attention model.Attention) lipgloss.Style {
	st, ok := statusStyles[j.Status]
	if !ok {
		st = lipgloss.NewStyle()
	}
	if focused {
		if fs, ok := statusFocusStyles[j.Status]; ok {
			st = fs
		} else {
			st = lipgloss.NewStyle().Background(colorFocusBg).Bold(true)
		}
	}
	// Attention overrides the status color; focus keeps its background.
	switch attention {
	case model.AttentionUrgent:
		st = st.Foreground(colorUrgent)
	case model.AttentionSoon:
		st = st.Foreground(colorSoon)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful
// for plain CLI output but can accidentally disable colors in a TUI. Here we
// only honor NO_COLOR and otherwise follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector reports,
	// trust the env. Color probing under-reports on some terminals.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection. Some
// terminals don't reliably report their background, which makes AdaptiveColor
// pick the wrong variant.
//
// Priority:
// 1) JOB_TRACKER_THEME=light|dark
// 2) COLORFGBG heuristic (format like "15;0" = fg;bg; last segment is bg)
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("JOB_TRACKER_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
