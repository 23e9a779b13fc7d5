package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/diones-souza/test-snaty/internal/tripform"
)

// Notifier prints one line per outcome, prefixed by its status.
type Notifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewNotifier returns a Notifier writing to w.
func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

// Notify prints message. It is safe for concurrent use.
func (n *Notifier) Notify(message string, status tripform.Status) {
	label := "sucesso"
	if status == tripform.StatusError {
		label = "erro"
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[%s] %s\n", label, message)
}
