// Package cli holds the interactive terminal surfaces.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// TerminalNotifier renders gamification events as colored terminal output.
type TerminalNotifier struct {
	out  io.Writer
	bold *color.Color
}

func NewTerminalNotifier() *TerminalNotifier {
	return &TerminalNotifier{
		out:  os.Stdout,
		bold: color.New(color.Bold),
	}
}

// Toast prints a one-line notification colored by severity.
func (n *TerminalNotifier) Toast(message, severity string) {
	switch severity {
	case "success":
		color.Green("%s", message)
	case "error":
		color.Red("%s", message)
	case "warning":
		color.Yellow("%s", message)
	default:
		fmt.Fprintln(n.out, message)
	}
}

// Confetti celebrates a level up.
func (n *TerminalNotifier) Confetti() {
	_, _ = n.bold.Fprintln(n.out, "*** Level up! ***")
}

// NotificationDot prints a reminder when overdue revisions are pending.
func (n *TerminalNotifier) NotificationDot(pending bool) {
	if pending {
		color.Yellow("You have overdue revisions. Run 'revtrack revise' to catch up.")
	}
}
