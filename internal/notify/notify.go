// Package notify defines the fire-and-forget notification boundary between
// game logic and the presentation layer.
package notify

// Kind classifies a notification for styling purposes.
type Kind int

const (
	Info Kind = iota
	Success
	Failure
)

// Notifier receives game notifications. Implementations must not block and
// their failures are never surfaced back to the games.
type Notifier interface {
	Notify(title, body string, kind Kind)
}

// Func adapts a function to the Notifier interface.
type Func func(title, body string, kind Kind)

func (f Func) Notify(title, body string, kind Kind) { f(title, body, kind) }

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(string, string, Kind) {}
