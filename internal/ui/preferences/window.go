package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"dockeyes/internal/core/model"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    model.Settings
	onSave      func(model.Settings)
	onCancel    func()
	logLevel    *widget.Select
	logFormat   *widget.Select
	showPreview *widget.Check
	autostart   *widget.Check
	pollEntry   *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("DockEyes Settings")

	logLevel := widget.NewSelect(logLevels, nil)
	logFormat := widget.NewSelect(logFormats, nil)
	showPreview := widget.NewCheck("Show preview window", nil)
	autostart := widget.NewCheck("Launch at login", nil)
	pollEntry := widget.NewEntry()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Pointer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Poll pointer every"), pollEntry, widget.NewLabel("ms")),
		showPreview,
		autostart,
		widget.NewLabelWithStyle("Logging", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Level"), logLevel),
		container.NewHBox(widget.NewLabel("Format"), logFormat),
		widget.NewLabel("Logging changes apply on next launch."),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 330))

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		logLevel:    logLevel,
		logFormat:   logFormat,
		showPreview: showPreview,
		autostart:   autostart,
		pollEntry:   pollEntry,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// SetOnCancel sets a handler for the cancel button.
func (prefs *Window) SetOnCancel(handler func()) {
	prefs.onCancel = handler
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.logLevel.SetSelected(settings.LogLevel)
	prefs.logFormat.SetSelected(settings.LogFormat)
	prefs.showPreview.SetChecked(settings.ShowPreview)
	prefs.autostart.SetChecked(settings.LaunchAtLogin)
	prefs.pollEntry.SetText(fmt.Sprintf("%d", settings.PointerPollInterval.Milliseconds()))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parsePollMillis(prefs.pollEntry.Text); ok {
		settings.PointerPollInterval = time.Duration(millis) * time.Millisecond
	}
	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}
	if prefs.logFormat.Selected != "" {
		settings.LogFormat = prefs.logFormat.Selected
	}
	settings.ShowPreview = prefs.showPreview.Checked
	settings.LaunchAtLogin = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePollMillis(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 5 || parsed > 1000 {
		return 0, false
	}
	return parsed, true
}
