package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string.
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("elasticomp ") + valueStyle.Render(data.Version) + "\n\n")

	b.WriteString(renderShellInfo(data))
	b.WriteString("\n")

	b.WriteString(renderToolInfo(data))
	b.WriteString("\n")

	b.WriteString(renderClusterInfo(data))
	b.WriteString("\n")

	b.WriteString(renderCacheInfo(data))

	return b.String()
}

func renderShellInfo(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Shell:") + "\n")
	b.WriteString("   " + keyStyle.Render("Type: ") + valueStyle.Render(data.Shell) + "\n")

	if data.HookInstalled {
		b.WriteString("   " + keyStyle.Render("Hook: ") + successStyle.Render("✓ Installed") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("Hook: ") + errorStyle.Render("✗ Not installed") + "\n")
		b.WriteString("   " + warningStyle.Render(fmt.Sprintf("Run 'elasticomp setup --shell %s' to install", data.Shell)) + "\n")
	}
	if data.RCFile != "" {
		b.WriteString("   " + keyStyle.Render("RC file: ") + subtleStyle.Render(data.RCFile) + "\n")
	}

	if data.ConfigPath != "" {
		b.WriteString("   " + keyStyle.Render("Config: ") + subtleStyle.Render(data.ConfigPath))
	} else {
		b.WriteString("   " + keyStyle.Render("Config: ") + subtleStyle.Render("built-in defaults"))
	}

	return b.String()
}

func renderToolInfo(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("elasticluster:") + "\n")

	if data.BinaryPath != "" {
		b.WriteString("   " + keyStyle.Render("Binary: ") + successStyle.Render("✓ ") + valueStyle.Render(data.BinaryPath))
	} else {
		b.WriteString("   " + keyStyle.Render("Binary: ") + errorStyle.Render(fmt.Sprintf("✗ %s not found on PATH", data.Binary)) + "\n")
		b.WriteString("   " + warningStyle.Render("Template completion will produce no suggestions"))
	}

	return b.String()
}

func renderClusterInfo(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Clusters:") + "\n")
	b.WriteString("   " + keyStyle.Render("Storage dir: ") + subtleStyle.Render(data.StorageDir) + "\n")

	if len(data.Clusters) == 0 {
		b.WriteString("   " + subtleStyle.Render("No saved clusters"))
		return b.String()
	}

	b.WriteString("   " + keyStyle.Render("Saved: ") + valueStyle.Render(fmt.Sprintf("%d", len(data.Clusters))) + "\n")
	for _, name := range data.Clusters {
		b.WriteString("      " + valueStyle.Render(name) + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func renderCacheInfo(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Template cache:") + "\n")

	if data.CachePath == "" {
		b.WriteString("   " + subtleStyle.Render("Disabled"))
		return b.String()
	}

	b.WriteString("   " + keyStyle.Render("Path: ") + subtleStyle.Render(data.CachePath) + "\n")
	if data.CacheFresh {
		b.WriteString("   " + keyStyle.Render("Status: ") + successStyle.Render("✓ Fresh") + "\n")
		b.WriteString("   " + keyStyle.Render("Templates: ") + valueStyle.Render(fmt.Sprintf("%d", data.CacheCount)) + "\n")
		b.WriteString("   " + keyStyle.Render("Age: ") + valueStyle.Render(data.CacheAge.Round(time.Second).String()))
	} else {
		b.WriteString("   " + keyStyle.Render("Status: ") + subtleStyle.Render("Empty or expired; refreshed on next completion"))
	}

	return b.String()
}
