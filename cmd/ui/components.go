package ui

import (
	"fmt"
	"strings"
)

// FormatStaged formats a staged file path with its status icon
func FormatStaged(path string) string {
	return fmt.Sprintf("  %s  %s", StagedStyle.Render(IconStaged), StagedStyle.Render(path))
}

// SuccessMessage creates a success message with a checkmark icon
func SuccessMessage(message string, details ...string) string {
	var parts []string
	parts = append(parts, Green(IconCheck), Green(message))

	for _, detail := range details {
		parts = append(parts, Blue(detail))
	}

	return strings.Join(parts, " ")
}

// BranchLine formats a single row of branch listing output. The current
// branch gets a "*" marker and a highlight.
func BranchLine(name string, current bool) string {
	if current {
		return fmt.Sprintf("* %s", CurrentStyle.Render(name))
	}
	return fmt.Sprintf("  %s", name)
}

// CommitInfo represents information about a commit for display
type CommitInfo struct {
	Hash    string
	Author  string
	Date    string
	Message string
}

// FormatCommitDetailed formats a commit with full details in a box
func FormatCommitDetailed(c CommitInfo) string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("%s %s\n", Yellow(IconCommit), Yellow(c.Hash)))
	content.WriteString(fmt.Sprintf("%s %s\n", Cyan(IconAuthor), Cyan(c.Author)))
	content.WriteString(Magenta(c.Date))
	content.WriteString("\n\n")
	content.WriteString(c.Message)

	return CommitBox(content.String())
}

// ErrorMessage formats an error message in red
func ErrorMessage(message string) string {
	return Red(message)
}

// WarningMessage formats a warning message in yellow
func WarningMessage(message string) string {
	return Yellow(message)
}

// InfoMessage formats an info message in blue
func InfoMessage(message string) string {
	return Blue(message)
}
