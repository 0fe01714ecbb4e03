package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"workrest/internal/config"
	"workrest/internal/core/ledger"
	"workrest/internal/core/timekeeper"
	"workrest/internal/i18n"
	"workrest/internal/notify"
	"workrest/internal/platform"
	"workrest/internal/storage"
	"workrest/internal/ui/overlay"
	"workrest/internal/ui/preferences"
	"workrest/internal/ui/tray"
	"workrest/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"golang.org/x/sync/errgroup"
)

const (
	appName = "WorkRest"
	appID   = "com.workrest.app"

	shutdownTimeout = time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("workrest exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			slog.Info("another instance is running", "error", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	configDir, err := config.Dir(appName)
	if err != nil {
		return err
	}
	options, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load options: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: options.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("starting", "data_file", options.DataFile, "config_file", options.ConfigFile)

	backend, err := storage.Open(options.DataFile)
	if err != nil {
		return fmt.Errorf("open statistics: %w", err)
	}
	logger.Debug("statistics backend opened", "path", backend.Path())
	store := ledger.Open(backend, ledger.Options{Logger: logger})

	keeper := timekeeper.New(store, timekeeper.Config{
		TickInterval: options.TickInterval,
		Logger:       logger,
	})
	if autostart, err := platform.NewAutostart(appName); err != nil {
		logger.Warn("autostart unavailable", "error", err)
	} else {
		keeper.SetAutostarter(autostart)
		// The OS entry may have been removed or moved since the last run.
		if err := keeper.ApplyAutoStart(); err != nil {
			logger.Warn("autostart sync failed", "error", err)
		}
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.Active))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		_ = backend.Close()
		return errors.New("system tray unsupported on this platform")
	}

	notifier := notify.Logged(notify.New(appName, notify.Func(func(title, message string) error {
		fyneApp.SendNotification(fyne.NewNotification(title, message))
		return nil
	})), logger)

	settings := keeper.Settings()
	startWindow := overlay.NewStartWindow(fyneApp, settings.Language, keeper.Start)
	restWindow := overlay.NewRestWindow(fyneApp, settings.Language, keeper.EndRest)
	prefsWindow := preferences.New(fyneApp, preferences.FromConfig(settings), preferences.Callbacks{
		OnSave: func(updated preferences.Settings) {
			saveSettings(keeper, updated, logger)
		},
		OnLanguage: func(language string) {
			if err := keeper.SetLanguage(language); err != nil {
				logger.Warn("save language failed", "error", err)
			}
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	group, groupCtx := errgroup.WithContext(ctx)

	var shutdownOnce sync.Once
	shutdown := func() {
		shutdownOnce.Do(func() {
			keeper.Shutdown(shutdownTimeout)
			cancel()
			if err := group.Wait(); err != nil {
				logger.Warn("background task failed", "error", err)
			}
			if err := store.Save(); err != nil {
				logger.Error("final save failed", "error", err)
			}
			if err := backend.Close(); err != nil {
				logger.Warn("close statistics failed", "error", err)
			}
		})
	}

	trayManager := tray.New(desktopApp, settings.Language, tray.Callbacks{
		OnTogglePause: keeper.PauseResume,
		OnStatus: func() {
			language := keeper.Settings().Language
			go notifier.Send(i18n.Text(language, i18n.CurrentStatus), i18n.Status(language, keeper.Status()))
		},
		OnStats: func() {
			language := keeper.Settings().Language
			go notifier.Send(i18n.Text(language, i18n.StatsTitle), i18n.Stats(language, keeper.Stats()))
		},
		OnSettings: func() {
			keeper.Flush()
			prefsWindow.UpdateSettings(preferences.FromConfig(keeper.Settings()))
			prefsWindow.Show()
		},
		OnQuit: func() {
			shutdown()
			fyneApp.Quit()
		},
	})

	pump := newEventPump(&desktopView{
		tray:  trayManager,
		start: startWindow,
		rest:  restWindow,
	}, notifier, settings.Language, fyne.Do)

	events := keeper.Subscribe(16)
	group.Go(func() error {
		return pump.Run(events)
	})
	group.Go(func() error {
		err := keeper.RunAutosave(groupCtx, options.AutosaveInterval)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	startWindow.Show()
	fyneApp.Run()

	shutdown()
	logger.Info("stopped")
	return nil
}

// saveSettings applies the settings window result. Segment lengths are
// floored to one minute here; the timer itself accepts any positive value.
func saveSettings(keeper *timekeeper.TimeKeeper, updated preferences.Settings, logger *slog.Logger) {
	if err := keeper.Reconfigure(updated.WorkSeconds(), updated.RestSeconds()); err != nil {
		logger.Warn("save durations failed", "error", err)
	}
	if updated.AutoStart != keeper.Settings().AutoStart {
		if err := keeper.SetAutoStart(updated.AutoStart); err != nil {
			logger.Warn("autostart update failed", "enabled", updated.AutoStart, "error", err)
		}
	}
}

// desktopView adapts the fyne widgets to the event pump.
type desktopView struct {
	tray  *tray.Manager
	start *overlay.StartWindow
	rest  *overlay.RestWindow
}

func (view *desktopView) SetPaused(paused bool) {
	view.tray.SetPaused(paused)
}

func (view *desktopView) SetLanguage(language string) {
	view.tray.SetLanguage(language)
	view.start.SetLanguage(language)
	view.rest.SetLanguage(language)
}

func (view *desktopView) ShowRest(elapsed, target int) {
	view.rest.Show(elapsed, target)
}

func (view *desktopView) UpdateRest(elapsed, target int) {
	if view.rest.Visible() {
		view.rest.SetProgress(elapsed, target)
	}
}

func (view *desktopView) HideRest() {
	view.rest.Hide()
}
