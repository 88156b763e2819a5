package cli

import (
	"github.com/alexanderramin/debtpad/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// cmdOutputMsg carries text output from an action to be displayed
// transiently over the current view.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// themeChangedMsg carries a theme change from the bus into the program.
type themeChangedMsg struct {
	dark bool
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func refreshViews() tea.Msg { return refreshViewMsg{} }

// outputCmd shows text over the active view.
func outputCmd(text string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: text} }
}

// wizardCompleteOutput closes the wizard and shows a message.
func wizardCompleteOutput(text string) wizardCompleteMsg {
	return wizardCompleteMsg{nextCmd: outputCmd(text)}
}

func errorLine(err error) string {
	return formatter.StyleRed.Render("✖ " + err.Error())
}
