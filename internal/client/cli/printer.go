package cli

import (
	"github.com/openbiblio/biblio/internal/client/iocli"
	"github.com/openbiblio/biblio/internal/client/notify"
)

// AttachToastPrinter subscribes a listener that prints each notification
// once, as it arrives. Returns the unsubscribe function.
func AttachToastPrinter(q *notify.Queue, io iocli.IO) func() {
	// Listeners run under the queue lock, so the set needs no extra locking.
	printed := make(map[string]bool)

	return q.Subscribe(func(toasts []notify.Toast) {
		for _, t := range toasts {
			if !t.Open || printed[t.ID] {
				continue
			}
			printed[t.ID] = true

			prefix := "✓"
			if t.Variant == notify.VariantDestructive {
				prefix = "✗"
			}
			if t.Description != "" {
				io.Printf("%s %s: %s\n", prefix, t.Title, t.Description)
			} else {
				io.Printf("%s %s\n", prefix, t.Title)
			}
		}
	})
}
