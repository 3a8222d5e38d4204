package ui

import (
	"strings"
	"time"

	"funhub/internal/notify"
)

const toastTTL = 3 * time.Second

type toast struct {
	title   string
	body    string
	kind    notify.Kind
	expires time.Time
}

// Toasts collects game notifications and renders the ones that have not
// expired yet. It is the hub's notify.Notifier implementation.
type Toasts struct {
	items []toast
}

func NewToasts() *Toasts {
	return &Toasts{}
}

// Notify implements notify.Notifier.
func (t *Toasts) Notify(title, body string, kind notify.Kind) {
	t.items = append(t.items, toast{
		title:   title,
		body:    body,
		kind:    kind,
		expires: time.Now().Add(toastTTL),
	})
}

// prune drops expired toasts. Called from the UI tick.
func (t *Toasts) prune(now time.Time) {
	live := t.items[:0]
	for _, item := range t.items {
		if item.expires.After(now) {
			live = append(live, item)
		}
	}
	t.items = live
}

// View renders the live toasts, oldest first.
func (t *Toasts) View() string {
	if len(t.items) == 0 {
		return ""
	}
	var b strings.Builder
	for _, item := range t.items {
		style := toastInfo
		switch item.kind {
		case notify.Success:
			style = toastSuccess
		case notify.Failure:
			style = toastFailure
		}
		b.WriteString(style.Render(titleStyle.Render(item.title)+" "+item.body) + "\n")
	}
	return b.String()
}
