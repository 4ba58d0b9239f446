package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/cmd/agroconsole/ui"
	"github.com/ipa-agro/agromanager/internal/config"
	"github.com/ipa-agro/agromanager/internal/scheduler"
	"github.com/ipa-agro/agromanager/internal/service"
	"github.com/ipa-agro/agromanager/internal/session"
	"github.com/ipa-agro/agromanager/pkg/clients/api"
	"github.com/ipa-agro/agromanager/pkg/logger"
)

func main() {
	var envFile string

	root := &cobra.Command{
		Use:   "agroconsole",
		Short: "Terminal client for the Sistema IPA producer management backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(envFile)
		},
	}
	root.Flags().StringVar(&envFile, "env-file", "", "path to an optional .env file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o700); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	baseLogger := logger.Must(logger.NewFile(cfg.Log.Path))
	defer func() { _ = baseLogger.Sync() }()

	client := api.New(cfg.API)
	store := session.NewStore(cfg.Session.TokenPath)
	auth := service.NewAuthService(client, store, baseLogger.Named("svc.auth"))

	resumed, err := auth.Resume()
	if err != nil {
		baseLogger.Warn("could not resume session", zap.Error(err))
	}

	seedSvc := service.NewSeedProductions(client, baseLogger.Named("svc.seeds"))
	farmerSvc := service.NewFarmers(client, baseLogger.Named("svc.farmers"))

	app := ui.NewApp(auth, seedSvc, farmerSvc, resumed, baseLogger.Named("ui"))
	program := tea.NewProgram(app, tea.WithAltScreen())

	sched := scheduler.NewScheduler(cfg.Refresh, func() {
		program.Send(ui.RefreshTick())
	}, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("console crashed: %w", err)
	}
	return nil
}
