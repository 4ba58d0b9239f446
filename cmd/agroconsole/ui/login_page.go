package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ipa-agro/agromanager/internal/service"
	"github.com/ipa-agro/agromanager/pkg/clients/api"
)

// LoginPage collects the identifier and password and exchanges them for a
// session token.
type LoginPage struct {
	auth    *service.AuthService
	form    Form
	errText string
	busy    bool
	styles  Styles
}

// loginDoneMsg is emitted internally once a successful login completes.
type loginDoneMsg struct{}

// NewLoginPage wires the login page.
func NewLoginPage(auth *service.AuthService, styles Styles) LoginPage {
	form := NewForm(styles,
		FormField{Label: "CPF/CNPJ", Placeholder: "identifier"},
		FormField{Label: "Password", Placeholder: "password"},
	)
	return LoginPage{auth: auth, form: form, styles: styles}
}

// Update handles input and the login result.
func (p LoginPage) Update(msg tea.Msg) (LoginPage, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		p.busy = false
		if msg.err != nil {
			var transportErr *api.TransportError
			if errors.As(msg.err, &transportErr) {
				p.errText = "could not reach the server"
			} else {
				p.errText = msg.err.Error()
			}
			return p, nil
		}
		if !msg.resp.Success {
			p.errText = msg.resp.Message
			if p.errText == "" {
				p.errText = "login failed"
			}
			return p, nil
		}
		return p, func() tea.Msg { return loginDoneMsg{} }

	case tea.KeyMsg:
		if p.busy {
			return p, nil
		}
		if msg.String() == "enter" {
			values := p.form.Values()
			identifier, password := values[0], values[1]
			if identifier == "" || password == "" {
				p.errText = "identifier and password are required"
				return p, nil
			}
			p.busy = true
			p.errText = ""
			auth := p.auth
			return p, func() tea.Msg {
				resp, err := auth.Login(context.Background(), identifier, password)
				return loginResultMsg{resp: resp, err: err}
			}
		}

		var cmd tea.Cmd
		p.form, cmd = p.form.Update(msg)
		return p, cmd
	}

	return p, nil
}

// View renders the login form.
func (p LoginPage) View() string {
	header := p.styles.Title.Render("Sistema IPA — Login")

	body := p.form.View()
	if p.busy {
		body += "\n\n" + p.styles.Subtle.Render("Signing in...")
	}
	if p.errText != "" {
		body += "\n\n" + p.styles.Error.Render(p.errText)
	}

	help := p.styles.Help.Render("enter sign in · tab next field · ctrl+c quit")
	return joinSections(header, p.styles.Box.Render(body), help)
}
