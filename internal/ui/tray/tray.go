package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnBlink           func()
	OnTogglePreview   func()
	OnOpenFileManager func()
	OnPreferences     func()
	OnGrantPermission func()
	OnQuit            func()
}

// Manager handles system tray state.
type Manager struct {
	host        Host
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	blinkItem   *fyne.MenuItem
	previewItem *fyne.MenuItem
	finderItem  *fyne.MenuItem
	prefsItem   *fyne.MenuItem
	grantItem   *fyne.MenuItem
	quitItem    *fyne.MenuItem
	menu        *fyne.Menu
	statusLabel string
	trusted     bool
}

// New creates a tray manager with the provided callbacks.
func New(host Host, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		callbacks: callbacks,
		trusted:   true,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.blinkItem = fyne.NewMenuItem("Blink", func() {
		if manager.callbacks.OnBlink != nil {
			manager.callbacks.OnBlink()
		}
	})
	manager.previewItem = fyne.NewMenuItem("Show Preview", func() {
		if manager.callbacks.OnTogglePreview != nil {
			manager.callbacks.OnTogglePreview()
		}
	})
	manager.finderItem = fyne.NewMenuItem("Open Finder", func() {
		if manager.callbacks.OnOpenFileManager != nil {
			manager.callbacks.OnOpenFileManager()
		}
	})
	manager.prefsItem = fyne.NewMenuItem("Settings...", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	manager.grantItem = fyne.NewMenuItem("Grant Accessibility Access...", func() {
		if manager.callbacks.OnGrantPermission != nil {
			manager.callbacks.OnGrantPermission()
		}
	})
	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetTrusted toggles the permission menu item.
func (manager *Manager) SetTrusted(trusted bool) {
	manager.trusted = trusted
	manager.refreshStatus()
}

// SetPreviewShown updates the preview toggle label.
func (manager *Manager) SetPreviewShown(shown bool) {
	if shown {
		manager.previewItem.Label = "Hide Preview"
	} else {
		manager.previewItem.Label = "Show Preview"
	}
	manager.refreshMenu()
}

// SetIcon replaces the tray icon with the current frame.
func (manager *Manager) SetIcon(icon fyne.Resource) {
	if manager.host != nil {
		manager.host.SetSystemTrayIcon(icon)
	}
}

// Menu returns the menu last handed to the host.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if status == "" {
		status = "starting..."
	}
	if !manager.trusted {
		status = fmt.Sprintf("%s (no accessibility access)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	items := []*fyne.MenuItem{manager.statusItem}
	if !manager.trusted {
		items = append(items, manager.grantItem)
	}
	items = append(items,
		fyne.NewMenuItemSeparator(),
		manager.blinkItem,
		manager.previewItem,
		manager.finderItem,
		fyne.NewMenuItemSeparator(),
		manager.prefsItem,
		manager.quitItem,
	)
	manager.menu = fyne.NewMenu("DockEyes", items...)
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}
