package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/controller"
	"github.com/ipa-agro/agromanager/internal/domain/models"
)

// SeedPage is the seed-production management page: the record table, the
// create/edit form and the delete confirmation prompt, all driven by one
// controller.
type SeedPage struct {
	ctrl   *controller.Controller[int, models.SeedProduction]
	table  table.Model
	form   Form
	styles Styles
}

// NewSeedPage wires the page over its resource service.
func NewSeedPage(svc controller.Service[int, models.SeedProduction], logger *zap.Logger, styles Styles) SeedPage {
	ctrl := controller.New(svc, controller.Options[int, models.SeedProduction]{
		Entity:   "seed production",
		Key:      models.SeedProduction.Key,
		NewDraft: models.NewSeedProductionDraft,
		Validate: func(r models.SeedProduction) []models.FieldViolation { return models.ValidateDraft(r) },
		Logger:   logger,
	})

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Seed type", Width: 20},
			{Title: "Quantity", Width: 10},
			{Title: "Price", Width: 10},
			{Title: "Expiry", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	form := NewForm(styles,
		FormField{Label: "Seed type", Placeholder: "Corn"},
		FormField{Label: "Quantity", Placeholder: "0"},
		FormField{Label: "Price", Placeholder: "0.00"},
		FormField{Label: "Expiry date", Placeholder: "2026-12-31", CharLimit: 10},
	)

	return SeedPage{ctrl: ctrl, table: t, form: form, styles: styles}
}

// Init triggers the initial list load.
func (p SeedPage) Init() tea.Cmd {
	return runEffect(p.ctrl.Refresh())
}

// Update handles messages for the page.
func (p SeedPage) Update(msg tea.Msg) (SeedPage, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg[int, models.SeedProduction]:
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
			// Controls are disabled while a call is outstanding.
			return p, nil
		default:
			return p.updateIdle(msg)
		}
	}

	return p, nil
}

func (p SeedPage) updateIdle(msg tea.KeyMsg) (SeedPage, tea.Cmd) {
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
		if id, ok := p.selectedID(); ok {
			p.ctrl.OpenEdit(id)
			if _, editing := p.ctrl.Editing(); editing {
				draft := p.ctrl.Draft()
				p.form.SetValues([]string{
					draft.SeedType,
					strconv.Itoa(draft.Quantity),
					strconv.FormatFloat(draft.Price, 'f', 2, 64),
					draft.ExpiryDate,
				})
			}
		}
		return p, nil
	case "d":
		if id, ok := p.selectedID(); ok {
			p.ctrl.RequestDelete(id)
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p SeedPage) updateEditing(msg tea.KeyMsg) (SeedPage, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.ctrl.CancelEdit()
		return p, nil
	case "enter":
		return p, runEffect(p.ctrl.Submit())
	}

	var cmd tea.Cmd
	p.form, cmd = p.form.Update(msg)
	// Numeric fields are coerced as the user types, not at submission time.
	p.ctrl.SetDraft(p.draftFromForm())
	return p, cmd
}

func (p SeedPage) updateConfirming(msg tea.KeyMsg) (SeedPage, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		return p, runEffect(p.ctrl.ConfirmDelete())
	case "n", "esc":
		p.ctrl.CancelDelete()
	}
	return p, nil
}

func (p SeedPage) draftFromForm() models.SeedProduction {
	values := p.form.Values()
	draft := p.ctrl.Draft()
	draft.SeedType = values[0]
	draft.Quantity, _ = strconv.Atoi(values[1])
	draft.Price, _ = strconv.ParseFloat(values[2], 64)
	draft.ExpiryDate = values[3]
	return draft
}

func (p SeedPage) selectedID() (int, bool) {
	row := p.table.SelectedRow()
	if row == nil {
		return 0, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return 0, false
	}
	return id, true
}

func (p *SeedPage) syncTable() {
	records := p.ctrl.Records()
	rows := make([]table.Row, 0, len(records))
	for _, record := range records {
		id := ""
		if record.ID != nil {
			id = strconv.Itoa(*record.ID)
		}
		rows = append(rows, table.Row{
			id,
			record.SeedType,
			strconv.Itoa(record.Quantity),
			fmt.Sprintf("%.2f", record.Price),
			record.ExpiryDate,
		})
	}
	p.table.SetRows(rows)
}

// View renders the page for its current phase.
func (p SeedPage) View() string {
	header := p.styles.Title.Render("Seed productions")
	notice := renderNotice(p.styles, p.ctrl.Notice())

	switch p.ctrl.Phase() {
	case controller.PhaseEditing:
		mode := "New seed production"
		if _, editing := p.ctrl.Editing(); editing {
			mode = "Edit seed production"
		}
		body := p.styles.Box.Render(p.styles.Title.Render(mode) + "\n\n" + p.form.View())
		help := p.styles.Help.Render("enter save · esc cancel · tab next field")
		return joinSections(header, notice, body, help)

	case controller.PhaseConfirmingDelete:
		target, _ := p.ctrl.DeleteTarget()
		prompt := p.styles.Box.Render(fmt.Sprintf(
			"Delete seed production %q?\n\n%s",
			target.SeedType,
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
