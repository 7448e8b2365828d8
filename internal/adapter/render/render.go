// Package render describes the page-rendering collaborator used by the live
// provider adapters. Implementations live in the chrome and static subpackages.
package render

import (
	"context"
	"time"
)

// Page tells a session what to load and which elements to read.
type Page struct {
	URL string

	// Categories maps a category name (fleet, price) to the CSS class whose
	// elements are read for it.
	Categories map[string]string

	// Marker is a CSS class that must appear before extraction. Empty means
	// no marker; MarkerTimeout bounds the wait.
	Marker        string
	MarkerTimeout time.Duration

	// SettleWait is slept after load, before extraction.
	SettleWait time.Duration
}

// Texts maps each requested category to the visible text of every matched
// element, in document order.
type Texts map[string][]string

// Renderer opens render sessions. Each provider fetch opens its own session.
type Renderer interface {
	Open(ctx context.Context) (Session, error)
}

// Session loads pages. It must be closed on every exit path.
type Session interface {
	Render(ctx context.Context, page Page) (Texts, error)
	Close() error
}
