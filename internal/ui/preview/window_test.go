package preview

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestPreviewFrameAndStatus(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	preview := New(app, "DockEyes Preview")
	if preview.Visible() {
		t.Fatal("preview should start hidden")
	}

	frame := fyne.NewStaticResource("frame-base.png", []byte{1, 2, 3})
	preview.setFrameUnsafe(frame)
	if preview.image.Resource != frame {
		t.Fatal("frame not applied to image")
	}

	preview.setStatusUnsafe("watching the pointer")
	if preview.statusText.Text != "watching the pointer" {
		t.Fatalf("status = %q", preview.statusText.Text)
	}
}

func TestPreviewShowHideAndCloseIntercept(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	preview := New(app, "DockEyes Preview")
	closed := 0
	preview.SetOnClosed(func() { closed++ })

	preview.Show()
	if !preview.Visible() {
		t.Fatal("preview should be visible after Show")
	}

	preview.closeRequested()
	if preview.Visible() {
		t.Fatal("closing should hide the preview")
	}
	if closed != 1 {
		t.Fatalf("close callbacks = %d, want 1", closed)
	}
}
