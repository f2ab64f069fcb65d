// Package notify implements the transient notification queue. Notifications
// are never fatal: they surface and then go away on their own.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// toastLimit caps how many toasts are held at once; the newest wins.
	toastLimit = 1
	// removeDelay is how long a dismissed toast lingers before removal.
	removeDelay = 3 * time.Second
)

// Variant selects the visual treatment of a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast is one queued notification.
type Toast struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
	Open        bool
}

// Listener receives the full toast list on every state change.
type Listener func(toasts []Toast)

// Queue is the notification queue: newest first, capacity bounded, each
// toast removed a fixed delay after it is closed. Removal timers fire on
// their own goroutines, hence the mutex.
type Queue struct {
	mu          sync.Mutex
	toasts      []Toast
	listeners   map[int]Listener
	nextID      int
	removeDelay time.Duration
}

// NewQueue creates an empty notification queue.
func NewQueue() *Queue {
	return &Queue{
		listeners:   make(map[int]Listener),
		removeDelay: removeDelay,
	}
}

// Push queues a toast and returns its ID. The queue keeps at most
// toastLimit entries, dropping the oldest.
func (q *Queue) Push(title, description string, variant Variant) string {
	q.mu.Lock()

	t := Toast{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Variant:     variant,
		Open:        true,
	}

	q.toasts = append([]Toast{t}, q.toasts...)
	if len(q.toasts) > toastLimit {
		q.toasts = q.toasts[:toastLimit]
	}

	q.notifyLocked()
	q.mu.Unlock()

	return t.ID
}

// Dismiss closes the toast and schedules its removal after the delay.
// Unknown IDs are ignored.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	found := false
	for i := range q.toasts {
		if q.toasts[i].ID == id {
			q.toasts[i].Open = false
			found = true
		}
	}
	if !found {
		return
	}

	q.notifyLocked()

	time.AfterFunc(q.removeDelay, func() {
		q.remove(id)
	})
}

// DismissAll closes every queued toast.
func (q *Queue) DismissAll() {
	q.mu.Lock()
	ids := make([]string, 0, len(q.toasts))
	for _, t := range q.toasts {
		ids = append(ids, t.ID)
	}
	q.mu.Unlock()

	for _, id := range ids {
		q.Dismiss(id)
	}
}

func (q *Queue) remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	q.toasts = kept
	q.notifyLocked()
}

// Subscribe registers a listener and returns its unsubscribe function.
func (q *Queue) Subscribe(fn Listener) func() {
	q.mu.Lock()
	defer q.mu.Unlock()

	id := q.nextID
	q.nextID++
	q.listeners[id] = fn

	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		delete(q.listeners, id)
	}
}

// Toasts returns a snapshot of the queue, newest first.
func (q *Queue) Toasts() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Toast(nil), q.toasts...)
}

func (q *Queue) notifyLocked() {
	snapshot := append([]Toast(nil), q.toasts...)
	for _, fn := range q.listeners {
		fn(snapshot)
	}
}

// Success pushes a default-variant toast. Satisfies session.Notifier.
func (q *Queue) Success(title, description string) {
	q.Push(title, description, VariantDefault)
}

// Error pushes a destructive-variant toast. Satisfies session.Notifier.
func (q *Queue) Error(title, description string) {
	q.Push(title, description, VariantDestructive)
}
