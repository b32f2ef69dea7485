package notify

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// sendTimeout bounds how long a notification command may hang around.
const sendTimeout = 5 * time.Second

// Notifier delivers a fire-and-forget user-visible alert when a countdown
// completes. Failures are reported but never block or abort the countdown
// flow.
type Notifier interface {
	Notify(summary, body string) error
}

// DesktopNotifier shells out to notify-send, the freedesktop notification
// client available on typical desktop installs.
type DesktopNotifier struct {
	command string
	urgency string
}

// NewDesktopNotifier creates a DesktopNotifier using the given command,
// falling back to notify-send when empty.
func NewDesktopNotifier(command string) *DesktopNotifier {
	if command == "" {
		command = "notify-send"
	}
	return &DesktopNotifier{
		command: command,
		urgency: "normal",
	}
}

// Notify sends the desktop notification.
func (n *DesktopNotifier) Notify(summary, body string) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, n.command, "--urgency", n.urgency, summary, body)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to send desktop notification: %w", err)
	}
	return nil
}

// BellNotifier rings the terminal bell and prints the alert. It is the
// fallback for environments without a notification daemon.
type BellNotifier struct {
	w io.Writer
}

// NewBellNotifier creates a BellNotifier writing to w.
func NewBellNotifier(w io.Writer) *BellNotifier {
	return &BellNotifier{w: w}
}

// Notify rings the bell and prints the alert text.
func (n *BellNotifier) Notify(summary, body string) error {
	_, err := fmt.Fprintf(n.w, "\a%s: %s\n", summary, body)
	return err
}

// NopNotifier discards notifications. Used when notifications are disabled.
type NopNotifier struct{}

// Notify discards the notification.
func (NopNotifier) Notify(summary, body string) error {
	return nil
}
