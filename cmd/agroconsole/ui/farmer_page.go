package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/controller"
	"github.com/ipa-agro/agromanager/internal/domain/models"
)

// FarmerPage is the farmer management page. It mirrors the seed-production
// page but is keyed by the tax identifier string.
type FarmerPage struct {
	ctrl   *controller.Controller[string, models.Farmer]
	table  table.Model
	form   Form
	styles Styles
}

// NewFarmerPage wires the page over its resource service.
func NewFarmerPage(svc controller.Service[string, models.Farmer], logger *zap.Logger, styles Styles) FarmerPage {
	ctrl := controller.New(svc, controller.Options[string, models.Farmer]{
		Entity:   "farmer",
		Key:      models.Farmer.Key,
		NewDraft: models.NewFarmerDraft,
		Validate: func(r models.Farmer) []models.FieldViolation { return models.ValidateDraft(r) },
		Logger:   logger,
	})

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Tax ID", Width: 16},
			{Title: "Name", Width: 24},
			{Title: "Email", Width: 24},
			{Title: "Phone", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	form := NewForm(styles,
		FormField{Label: "Tax ID (CPF/CNPJ)", Placeholder: "12345678900", CharLimit: 18},
		FormField{Label: "Name", Placeholder: "Maria Silva"},
		FormField{Label: "Email", Placeholder: "maria@example.com"},
		FormField{Label: "Phone", Placeholder: "+55 81 99999-0000"},
	)

	return FarmerPage{ctrl: ctrl, table: t, form: form, styles: styles}
}

// Init triggers the initial list load.
func (p FarmerPage) Init() tea.Cmd {
	return runEffect(p.ctrl.Refresh())
}

// Update handles messages for the page.
func (p FarmerPage) Update(msg tea.Msg) (FarmerPage, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg[string, models.Farmer]:
		follow := p.ctrl.Apply(msg.outcome)
		p.syncTable()
		return p, runEffect(follow)

	case refreshTickMsg:
		return p, runEffect(p.ctrl.Refresh())

	case tea.KeyMsg:
		switch p.ctrl.Phase() {
		case controller.PhaseEditing:
			return p.updateEditing(msg)
		case controller.PhaseConfirmingDelete:
			return p.updateConfirming(msg)
		case controller.PhaseSubmitting, controller.PhaseLoading:
			return p, nil
		default:
			return p.updateIdle(msg)
		}
	}

	return p, nil
}

func (p FarmerPage) updateIdle(msg tea.KeyMsg) (FarmerPage, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return p, func() tea.Msg { return backMsg{} }
	case "r":
		p.ctrl.ClearNotice()
		return p, runEffect(p.ctrl.Refresh())
	case "a":
		p.ctrl.OpenCreate()
		p.form.SetValues(nil)
		return p, nil
	case "e":
		if taxID, ok := p.selectedTaxID(); ok {
			p.ctrl.OpenEdit(taxID)
			if _, editing := p.ctrl.Editing(); editing {
				draft := p.ctrl.Draft()
				p.form.SetValues([]string{draft.TaxID, draft.Name, draft.Email, draft.Phone})
			}
		}
		return p, nil
	case "d":
		if taxID, ok := p.selectedTaxID(); ok {
			p.ctrl.RequestDelete(taxID)
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p FarmerPage) updateEditing(msg tea.KeyMsg) (FarmerPage, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.ctrl.CancelEdit()
		return p, nil
	case "enter":
		return p, runEffect(p.ctrl.Submit())
	}

	var cmd tea.Cmd
	p.form, cmd = p.form.Update(msg)
	p.ctrl.SetDraft(p.draftFromForm())
	return p, cmd
}

func (p FarmerPage) updateConfirming(msg tea.KeyMsg) (FarmerPage, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		return p, runEffect(p.ctrl.ConfirmDelete())
	case "n", "esc":
		p.ctrl.CancelDelete()
	}
	return p, nil
}

func (p FarmerPage) draftFromForm() models.Farmer {
	values := p.form.Values()
	draft := p.ctrl.Draft()
	draft.TaxID = values[0]
	draft.Name = values[1]
	draft.Email = values[2]
	draft.Phone = values[3]
	return draft
}

func (p FarmerPage) selectedTaxID() (string, bool) {
	row := p.table.SelectedRow()
	if row == nil || row[0] == "" {
		return "", false
	}
	return row[0], true
}

func (p *FarmerPage) syncTable() {
	records := p.ctrl.Records()
	rows := make([]table.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, table.Row{record.TaxID, record.Name, record.Email, record.Phone})
	}
	p.table.SetRows(rows)
}

// View renders the page for its current phase.
func (p FarmerPage) View() string {
	header := p.styles.Title.Render("Farmers")
	notice := renderNotice(p.styles, p.ctrl.Notice())

	switch p.ctrl.Phase() {
	case controller.PhaseEditing:
		mode := "New farmer"
		if _, editing := p.ctrl.Editing(); editing {
			mode = "Edit farmer"
		}
		body := p.styles.Box.Render(p.styles.Title.Render(mode) + "\n\n" + p.form.View())
		help := p.styles.Help.Render("enter save · esc cancel · tab next field")
		return joinSections(header, notice, body, help)

	case controller.PhaseConfirmingDelete:
		target, _ := p.ctrl.DeleteTarget()
		prompt := p.styles.Box.Render(fmt.Sprintf(
			"Delete farmer %q (%s)?\n\n%s",
			target.Name,
			target.TaxID,
			p.styles.Help.Render("y confirm · n cancel"),
		))
		return joinSections(header, notice, prompt)

	case controller.PhaseSubmitting:
		return joinSections(header, notice, p.styles.Subtle.Render("Saving..."))

	case controller.PhaseLoading:
		return joinSections(header, notice, p.styles.Subtle.Render("Loading..."))
	}

	help := p.styles.Help.Render("a add · e edit · d delete · r refresh · q back")
	return joinSections(header, notice, p.table.View(), help)
}
