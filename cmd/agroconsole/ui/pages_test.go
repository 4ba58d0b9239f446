package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipa-agro/agromanager/internal/controller"
	"github.com/ipa-agro/agromanager/internal/domain/models"
)

type stubSeedService struct {
	records []models.SeedProduction
}

func (s *stubSeedService) List(context.Context) ([]models.SeedProduction, error) {
	return s.records, nil
}

func (s *stubSeedService) Create(_ context.Context, draft models.SeedProduction) (models.SeedProduction, error) {
	id := len(s.records) + 1
	draft.ID = &id
	s.records = append(s.records, draft)
	return draft, nil
}

func (s *stubSeedService) Update(_ context.Context, id int, record models.SeedProduction) (models.SeedProduction, error) {
	record.ID = &id
	return record, nil
}

func (s *stubSeedService) Delete(context.Context, int) error { return nil }

func typeText(t *testing.T, page SeedPage, text string) SeedPage {
	t.Helper()
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return page
}

func keyPress(t *testing.T, page SeedPage, key string) (SeedPage, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	return page.Update(msg)
}

func TestSeedFormCoercesNumericFieldsAsTyped(t *testing.T) {
	page := NewSeedPage(&stubSeedService{}, nil, DefaultStyles())
	page.ctrl.OpenCreate()
	require.Equal(t, controller.PhaseEditing, page.ctrl.Phase())

	page = typeText(t, page, "Corn")
	page, _ = keyPress(t, page, "tab")
	page = typeText(t, page, "150")
	page, _ = keyPress(t, page, "tab")
	page = typeText(t, page, "2.50")
	page, _ = keyPress(t, page, "tab")
	page = typeText(t, page, "2025-12-31")

	draft := page.ctrl.Draft()
	assert.Equal(t, "Corn", draft.SeedType)
	assert.Equal(t, 150, draft.Quantity)
	assert.InDelta(t, 2.50, draft.Price, 1e-9)
	assert.Equal(t, "2025-12-31", draft.ExpiryDate)
}

func TestSeedPageEscapeCancelsEdit(t *testing.T) {
	page := NewSeedPage(&stubSeedService{}, nil, DefaultStyles())
	page.ctrl.OpenCreate()
	page = typeText(t, page, "Corn")

	page, _ = keyPress(t, page, "esc")
	assert.Equal(t, controller.PhaseIdle, page.ctrl.Phase())
	assert.Equal(t, models.NewSeedProductionDraft(), page.ctrl.Draft())
}

func TestSeedPageSubmitRunsCreateAndRefresh(t *testing.T) {
	svc := &stubSeedService{}
	page := NewSeedPage(svc, nil, DefaultStyles())
	page.ctrl.OpenCreate()

	page = typeText(t, page, "Corn")
	page, _ = keyPress(t, page, "tab")
	page = typeText(t, page, "100")
	page, _ = keyPress(t, page, "tab")
	page = typeText(t, page, "2.50")
	page, _ = keyPress(t, page, "tab")
	page = typeText(t, page, "2025-12-31")

	page, cmd := keyPress(t, page, "enter")
	require.NotNil(t, cmd)

	// Drive the submit outcome and the chained refresh by hand.
	msg := cmd()
	page, cmd = page.Update(msg)
	require.NotNil(t, cmd, "a successful save chains a list refresh")
	page, _ = page.Update(cmd())

	require.Len(t, page.ctrl.Records(), 1)
	require.NotNil(t, page.ctrl.Records()[0].ID)
	assert.Equal(t, "Corn", page.ctrl.Records()[0].SeedType)
}

func TestFormFocusCycles(t *testing.T) {
	form := NewForm(DefaultStyles(),
		FormField{Label: "A"},
		FormField{Label: "B"},
	)
	assert.Equal(t, 0, form.focus)

	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, form.focus)
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, form.focus, "focus wraps around")
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, form.focus)
}

func TestMenuNavigatesToFarmers(t *testing.T) {
	menu := NewMenuPage(DefaultStyles())

	menu, _ = menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu, cmd := menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(openPageMsg)
	require.True(t, ok)
	assert.Equal(t, pageFarmers, msg.page)
}
