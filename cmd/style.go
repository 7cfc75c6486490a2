package main

import "github.com/pterm/pterm"

func formatPrompt(message string) string {
	return pterm.Bold.Sprint(message)
}

func formatError(message string) string {
	return pterm.NewStyle(pterm.BgRed, pterm.FgWhite).Sprint(message)
}
