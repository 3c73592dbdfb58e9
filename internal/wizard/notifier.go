package wizard

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// ConsoleNotifier prints transient notifications to the terminal. It backs
// the Notifier interfaces of both the interview controller and the
// generation trigger.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Notify(_ context.Context, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "🔔 %s\n", text)
}
