package main

import (
	"strings"
	"text/template"

	"github.com/arthur-debert/eriksync/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// templateMode decides whether help templates get emphasis
var templateMode = style.ModeText

func formatBold(s string) string {
	if templateMode != style.ModeTerminal {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func formatUpper(s string) string {
	return strings.ToUpper(s)
}

func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}
