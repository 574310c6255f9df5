package notifier

import (
	"fmt"
	"io"
)

// DryRunNotifier prints what would be sent without actually sending
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the message that would be delivered
func (n *DryRunNotifier) Notify(message string) error {
	fmt.Fprintf(n.out, "--- Notification ---\n%s\n\n(Length: %d characters)\n\n", message, len(message))
	return nil
}
