package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"

	"dockeyes/internal/core/animator"
	"dockeyes/internal/core/model"
	"dockeyes/internal/core/scheduler"
	"dockeyes/internal/logging"
	"dockeyes/internal/platform"
	"dockeyes/internal/render"
	"dockeyes/internal/storage"
	"dockeyes/internal/ui/permission"
	"dockeyes/internal/ui/preferences"
	"dockeyes/internal/ui/preview"
	"dockeyes/internal/ui/tray"
	"dockeyes/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "DockEyes"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	service := platform.NewService(appName)
	settings, store := loadSettings(service)

	logger, err := logging.New(logging.Options{Level: settings.LogLevel, Format: settings.LogFormat})
	if err != nil {
		log.Printf("logger: %v; falling back to defaults", err)
		logger, _ = logging.New(logging.Options{})
	}
	slog.SetDefault(logger)
	logger.Info("starting", "app", appName, "settings", store.Path())

	fyneApp := app.NewWithID("com.dockeyes.app")
	fyneApp.SetIcon(resources.MustSprite(resources.SpriteLogo))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		logger.Error("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("DockEyes is watching from the dock."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	composer, err := render.NewComposer(
		resources.MustImage(resources.SpriteBase),
		resources.MustImage(resources.SpriteHover),
		resources.MustImage(resources.SpriteEyes),
	)
	if err != nil {
		logger.Error("load sprites", "error", err)
		return
	}

	previewWindow := preview.New(fyneApp, "DockEyes Preview")

	var trayManager *tray.Manager
	presenter := render.NewPresenter(composer, logger.With("component", "presenter"),
		dockSink(service, logger),
		render.SinkFunc(func(resource fyne.Resource) {
			fyne.Do(func() {
				if trayManager != nil {
					trayManager.SetIcon(resource)
				}
			})
		}),
		render.SinkFunc(previewWindow.SetFrame),
	)

	animConfig := animator.DefaultConfig()
	animConfig.EyeHeight = float64(resources.MustImage(resources.SpriteEyes).Bounds().Dy())
	anim := animator.New(animConfig, presenter)

	eyes := scheduler.New(anim, service, scheduler.DefaultConfig(), logger.With("component", "scheduler"))
	events := eyes.Subscribe(16)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sampler := newSamplerRunner(ctx, service, eyes, logger.With("component", "pointer"))

	activateFileManager := func() {
		if err := service.ActivateFileManager(); err != nil {
			logPlatformError(logger, "activate file manager", err)
		}
	}

	permissionWindow := permission.New(fyneApp, service.PromptPermission)

	setPreviewShown := func(shown bool) {
		if shown {
			previewWindow.Show()
		} else {
			previewWindow.Hide()
		}
		trayManager.SetPreviewShown(shown)
	}

	saveSettings := func(updated model.Settings) {
		if updated.LaunchAtLogin != settings.LaunchAtLogin {
			applyAutostart(service, updated.LaunchAtLogin, logger)
		}
		if updated.PointerPollInterval != settings.PointerPollInterval {
			sampler.restart(updated.PointerPollInterval)
		}
		setPreviewShown(updated.ShowPreview)
		settings = updated
		if err := store.Save(settings); err != nil {
			logger.Warn("save settings", "error", err)
		}
	}
	prefsWindow := preferences.New(fyneApp, settings, saveSettings)

	previewWindow.SetOnClosed(func() {
		updated := settings
		updated.ShowPreview = false
		saveSettings(updated)
	})

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnBlink: func() {
			go func() {
				if err := eyes.BlinkNow(); err != nil {
					logger.Debug("blink", "error", err)
				}
			}()
		},
		OnTogglePreview: func() {
			updated := settings
			updated.ShowPreview = !previewWindow.Visible()
			prefsWindow.UpdateSettings(updated)
			saveSettings(updated)
		},
		OnOpenFileManager: func() {
			if err := service.OpenFileManager(); err != nil {
				logPlatformError(logger, "open file manager", err)
			}
		},
		OnPreferences: func() {
			prefsWindow.UpdateSettings(settings)
			prefsWindow.Show()
		},
		OnGrantPermission: permissionWindow.Show,
		OnQuit: func() {
			eyes.Stop()
			cancel()
			fyneApp.Quit()
		},
	})
	trayManager.SetIcon(resources.MustSprite(resources.SpriteLogo))
	trayManager.SetTrusted(service.Trusted())

	go func() {
		for event := range events {
			event := event
			fyne.Do(func() {
				handleEvent(event, trayManager, previewWindow, logger)
			})
		}
	}()

	fyneApp.Lifecycle().SetOnStarted(func() {
		eyes.Start(ctx)
		go func() {
			if err := eyes.Do(func(anim *animator.Animator) {
				presenter.Render(anim.Frame())
			}); err != nil {
				logger.Debug("initial frame", "error", err)
			}
		}()
		sampler.restart(settings.PointerPollInterval)

		if !service.Trusted() {
			permissionWindow.Show()
		}
		if settings.ShowPreview {
			setPreviewShown(true)
		}
		activateFileManager()
	})
	fyneApp.Lifecycle().SetOnEnteredForeground(activateFileManager)
	fyneApp.Lifecycle().SetOnStopped(func() {
		eyes.Stop()
		cancel()
	})

	fyneApp.Run()
}

func loadSettings(service platform.Service) (model.Settings, *storage.Store) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		log.Printf("config dir: %v", err)
		configDir = os.TempDir()
	}
	store := storage.NewStore(configDir, appName)
	settings, err := store.Load()
	if err != nil {
		log.Printf("load settings: %v; using defaults", err)
	}
	return settings, store
}

func dockSink(service platform.Service, logger *slog.Logger) render.Sink {
	unsupported := false
	return render.SinkFunc(func(resource fyne.Resource) {
		if unsupported {
			return
		}
		err := service.SetDockImage(resource.Content())
		if errors.Is(err, platform.ErrUnsupported) {
			logger.Info("dock icon updates unsupported; frames go to the tray and preview only")
			unsupported = true
			return
		}
		if err != nil {
			logger.Warn("set dock image", "error", err)
		}
	})
}

func applyAutostart(service platform.Service, enabled bool, logger *slog.Logger) {
	if !enabled {
		if err := service.DisableAutostart(appName); err != nil {
			logPlatformError(logger, "disable autostart", err)
		}
		return
	}
	execPath, err := os.Executable()
	if err != nil {
		logger.Warn("enable autostart", "error", err)
		return
	}
	if err := service.EnableAutostart(appName, execPath); err != nil {
		logPlatformError(logger, "enable autostart", err)
	}
}

func handleEvent(event scheduler.Event, trayManager *tray.Manager, previewWindow *preview.Window, logger *slog.Logger) {
	switch event.Type {
	case scheduler.EventPermission:
		trayManager.SetTrusted(event.Trusted)
	case scheduler.EventIconFound:
		setStatus(trayManager, previewWindow, "watching the pointer")
	case scheduler.EventIconLost:
		setStatus(trayManager, previewWindow, "dock icon not found")
	case scheduler.EventModeChange:
		if event.Mode == animator.FaceHover {
			setStatus(trayManager, previewWindow, "hovered")
		} else {
			setStatus(trayManager, previewWindow, "watching the pointer")
		}
	case scheduler.EventBlink:
		logger.Debug("blink started")
	}
}

func setStatus(trayManager *tray.Manager, previewWindow *preview.Window, status string) {
	trayManager.SetStatus(status)
	previewWindow.SetStatus(status)
}

func logPlatformError(logger *slog.Logger, action string, err error) {
	if errors.Is(err, platform.ErrUnsupported) || errors.Is(err, platform.ErrPermissionDenied) {
		logger.Debug(action, "error", err)
		return
	}
	logger.Warn(action, "error", err)
}
