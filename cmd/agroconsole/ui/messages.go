package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ipa-agro/agromanager/internal/controller"
	"github.com/ipa-agro/agromanager/internal/domain/models"
)

// outcomeMsg carries a completed controller effect back to its page.
type outcomeMsg[K comparable, R any] struct {
	outcome controller.Outcome[K, R]
}

// loginResultMsg carries the login call's result back to the login page.
type loginResultMsg struct {
	resp models.LoginResponse
	err  error
}

// refreshTickMsg is posted by the cron scheduler to keep lists warm.
type refreshTickMsg struct{}

// RefreshTick builds the message the scheduler sends into the running
// program on each tick.
func RefreshTick() tea.Msg { return refreshTickMsg{} }

// backMsg returns the user from a page to the menu.
type backMsg struct{}

// openPageMsg navigates from the menu to a page.
type openPageMsg struct {
	page pageID
}

// runEffect executes a controller effect off the UI goroutine. A nil effect
// (intent rejected or nothing to do) yields no command.
func runEffect[K comparable, R any](effect controller.Effect[K, R]) tea.Cmd {
	if effect == nil {
		return nil
	}
	return func() tea.Msg {
		// The transport's fixed timeout bounds the call; there is no
		// cancellation beyond it.
		return outcomeMsg[K, R]{outcome: effect(context.Background())}
	}
}
