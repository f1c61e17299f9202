package platform

import (
	"fmt"
	"strings"
)

// Autostarter registers the app to launch at login.
type Autostarter interface {
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

func autostartSlug(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "dockeyes"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}

func launchAgentLabel(appName string) string {
	return "com.dockeyes." + autostartSlug(appName)
}

func buildLaunchAgentPlist(label, execPath string) string {
	return fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>LimitLoadToSessionType</key>
	<string>Aqua</string>
</dict>
</plist>
`,
		xmlEscape(label),
		xmlEscape(execPath),
	)
}

func xmlEscape(value string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(value)
}

func desktopFileName(appName string) string {
	return autostartSlug(appName) + ".desktop"
}

func buildDesktopEntry(appName, execPath string) string {
	execLine := execPath
	if strings.Contains(execLine, " ") && !strings.HasPrefix(execLine, `"`) {
		execLine = `"` + execLine + `"`
	}

	return fmt.Sprintf(
		`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`,
		appName,
		execLine,
	)
}

func quoteWindowsPath(execPath string) string {
	trimmed := strings.Trim(execPath, `"`)
	return fmt.Sprintf(`"%s"`, trimmed)
}

func checkAutostartArgs(op, appName, execPath string, needPath bool) error {
	if appName == "" {
		return fmt.Errorf("%s: app name is empty", op)
	}
	if needPath && execPath == "" {
		return fmt.Errorf("%s: exec path is empty", op)
	}
	return nil
}
