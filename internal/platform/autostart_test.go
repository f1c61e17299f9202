package platform

import (
	"strings"
	"testing"
)

func TestLaunchAgentLabel(t *testing.T) {
	if got := launchAgentLabel(" Dock Eyes "); got != "com.dockeyes.dock-eyes" {
		t.Fatalf("label = %q", got)
	}
	if got := launchAgentLabel(""); got != "com.dockeyes.dockeyes" {
		t.Fatalf("empty label = %q", got)
	}
}

func TestLaunchAgentPlistEscapesPath(t *testing.T) {
	plist := buildLaunchAgentPlist("com.dockeyes.dockeyes", "/Applications/A&B.app/Contents/MacOS/dockeyes")
	if !strings.Contains(plist, "<string>/Applications/A&amp;B.app/Contents/MacOS/dockeyes</string>") {
		t.Fatalf("path not escaped:\n%s", plist)
	}
	if !strings.Contains(plist, "<key>RunAtLoad</key>") {
		t.Fatal("plist should run at load")
	}
}

func TestDesktopEntryQuotesSpacedPath(t *testing.T) {
	entry := buildDesktopEntry("DockEyes", "/opt/dock eyes/dockeyes")
	if !strings.Contains(entry, `Exec="/opt/dock eyes/dockeyes"`) {
		t.Fatalf("exec not quoted:\n%s", entry)
	}
	if desktopFileName("DockEyes") != "dockeyes.desktop" {
		t.Fatalf("desktop file = %q", desktopFileName("DockEyes"))
	}
}

func TestQuoteWindowsPath(t *testing.T) {
	if got := quoteWindowsPath(`"C:\Program Files\DockEyes.exe"`); got != `"C:\Program Files\DockEyes.exe"` {
		t.Fatalf("quoted = %s", got)
	}
}

func TestCheckAutostartArgs(t *testing.T) {
	if err := checkAutostartArgs("enable autostart", "", "/bin/x", true); err == nil {
		t.Fatal("expected error for empty app name")
	}
	if err := checkAutostartArgs("enable autostart", "DockEyes", "", true); err == nil {
		t.Fatal("expected error for empty exec path")
	}
	if err := checkAutostartArgs("disable autostart", "DockEyes", "", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
