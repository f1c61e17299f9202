package permission

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	Title   = "Accessibility Permission Needed"
	Message = "This app uses accessibility features to find the mouse pointer on your screen."
)

// Window asks the user to grant accessibility access.
type Window struct {
	window         fyne.Window
	continueButton *widget.Button
	onContinue     func()
}

// New creates the permission window. onContinue runs when the user
// presses Continue.
func New(app fyne.App, onContinue func()) *Window {
	window := app.NewWindow(Title)
	window.SetFixedSize(true)

	prompt := &Window{window: window, onContinue: onContinue}

	message := widget.NewLabel(Message)
	message.Wrapping = fyne.TextWrapWord
	continueButton := widget.NewButton("Continue", prompt.handleContinue)
	continueButton.Importance = widget.HighImportance
	prompt.continueButton = continueButton

	content := container.NewBorder(
		widget.NewLabelWithStyle(Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(layout.NewSpacer(), continueButton),
		nil, nil,
		message,
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 160))
	window.SetCloseIntercept(prompt.handleContinue)
	return prompt
}

// Show displays the window and focuses it.
func (prompt *Window) Show() {
	prompt.window.CenterOnScreen()
	prompt.window.Show()
	prompt.window.RequestFocus()
}

func (prompt *Window) handleContinue() {
	prompt.window.Hide()
	if prompt.onContinue != nil {
		prompt.onContinue()
	}
}
