package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrg327/job-tracker/internal/store"
)

// Run launches the interactive loop. It blocks until the user quits.
//
// SIGINT/SIGTERM perform one full synchronous save before exiting. The save
// itself is atomic (temp file + rename), so a handler racing the main loop
// can never leave a corrupt file behind.
func Run(s store.Store, db *store.DB) error {
	applyColorProfilePreference()
	applyThemePreference()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		<-sigs
		_ = s.Save(db)
		os.Exit(0)
	}()

	m := newAppModel(s, db)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err == nil {
		// Quit paths save before tea.Quit; this covers program teardown too.
		_ = s.Save(db)
	}
	return err
}
