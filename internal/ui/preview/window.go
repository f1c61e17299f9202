package preview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const previewSide = float32(256)

// Window shows the current icon frame at a larger size.
type Window struct {
	window     fyne.Window
	image      *canvas.Image
	statusText *canvas.Text
	visible    bool
	onClosed   func()
}

// New creates a hidden preview window.
func New(app fyne.App, title string) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)
	window.SetFixedSize(true)

	image := canvas.NewImageFromResource(nil)
	image.FillMode = canvas.ImageFillContain
	image.ScaleMode = canvas.ImageScalePixels
	image.SetMinSize(fyne.NewSize(previewSide, previewSide))

	statusText := canvas.NewText("", color.NRGBA{R: 140, G: 140, B: 150, A: 255})
	statusText.Alignment = fyne.TextAlignCenter
	statusText.TextSize = 12

	window.SetContent(container.NewBorder(nil, statusText, nil, nil, image))

	preview := &Window{
		window:     window,
		image:      image,
		statusText: statusText,
	}
	window.SetCloseIntercept(preview.closeRequested)
	return preview
}

func (preview *Window) closeRequested() {
	preview.Hide()
	if preview.onClosed != nil {
		preview.onClosed()
	}
}

// SetOnClosed sets a handler for the window's close button.
func (preview *Window) SetOnClosed(handler func()) {
	preview.onClosed = handler
}

// Show displays the window.
func (preview *Window) Show() {
	preview.visible = true
	preview.window.Show()
}

// Hide hides the window.
func (preview *Window) Hide() {
	preview.visible = false
	preview.window.Hide()
}

// Visible reports whether the window is shown.
func (preview *Window) Visible() bool {
	return preview.visible
}

// SetFrame updates the displayed frame from any goroutine.
func (preview *Window) SetFrame(resource fyne.Resource) {
	fyne.Do(func() {
		preview.setFrameUnsafe(resource)
	})
}

// SetStatus updates the caption from any goroutine.
func (preview *Window) SetStatus(status string) {
	fyne.Do(func() {
		preview.setStatusUnsafe(status)
	})
}

func (preview *Window) setFrameUnsafe(resource fyne.Resource) {
	preview.image.Resource = resource
	if preview.visible {
		preview.image.Refresh()
	}
}

func (preview *Window) setStatusUnsafe(status string) {
	preview.statusText.Text = status
	preview.statusText.Refresh()
}
