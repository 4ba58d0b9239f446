package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/domain/models"
	"github.com/ipa-agro/agromanager/internal/service"
)

// App is the root model: it owns the pages and routes messages to whichever
// is active.
type App struct {
	active pageID

	login   LoginPage
	menu    MenuPage
	seeds   SeedPage
	farmers FarmerPage

	styles Styles
	logger *zap.Logger
}

// NewApp wires the full console. When resumed is true a persisted session
// token exists and the login page is skipped.
func NewApp(
	auth *service.AuthService,
	seedSvc *service.Resource[int, models.SeedProduction],
	farmerSvc *service.Resource[string, models.Farmer],
	resumed bool,
	logger *zap.Logger,
) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := DefaultStyles()

	active := pageLogin
	if resumed {
		active = pageMenu
	}

	return App{
		active:  active,
		login:   NewLoginPage(auth, styles),
		menu:    NewMenuPage(styles),
		seeds:   NewSeedPage(seedSvc, logger.Named("page.seeds"), styles),
		farmers: NewFarmerPage(farmerSvc, logger.Named("page.farmers"), styles),
		styles:  styles,
		logger:  logger,
	}
}

// Init satisfies tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update routes messages: navigation messages switch pages, everything else
// goes to the active page. Outcome messages are delivered regardless of
// which page is visible so an in-flight call still lands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case loginDoneMsg:
		a.active = pageMenu
		return a, nil

	case openPageMsg:
		a.active = msg.page
		switch msg.page {
		case pageSeedProductions:
			return a, a.seeds.Init()
		case pageFarmers:
			return a, a.farmers.Init()
		}
		return a, nil

	case backMsg:
		a.active = pageMenu
		return a, nil

	case outcomeMsg[int, models.SeedProduction]:
		var cmd tea.Cmd
		a.seeds, cmd = a.seeds.Update(msg)
		return a, cmd

	case outcomeMsg[string, models.Farmer]:
		var cmd tea.Cmd
		a.farmers, cmd = a.farmers.Update(msg)
		return a, cmd

	case refreshTickMsg:
		// The cron tick only refreshes the page the user is looking at.
		switch a.active {
		case pageSeedProductions:
			var cmd tea.Cmd
			a.seeds, cmd = a.seeds.Update(msg)
			return a, cmd
		case pageFarmers:
			var cmd tea.Cmd
			a.farmers, cmd = a.farmers.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.active {
	case pageLogin:
		a.login, cmd = a.login.Update(msg)
	case pageMenu:
		a.menu, cmd = a.menu.Update(msg)
	case pageSeedProductions:
		a.seeds, cmd = a.seeds.Update(msg)
	case pageFarmers:
		a.farmers, cmd = a.farmers.Update(msg)
	}
	return a, cmd
}

// View renders the active page.
func (a App) View() string {
	switch a.active {
	case pageLogin:
		return a.login.View()
	case pageMenu:
		return a.menu.View()
	case pageSeedProductions:
		return a.seeds.View()
	case pageFarmers:
		return a.farmers.View()
	}
	return ""
}
