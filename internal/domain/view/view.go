// Package view holds the platform-neutral representation of the two messages
// rendered for every event, and the pure functions that build them.
package view

// Kind tells the two rendered messages apart.
type Kind string

const (
	KindAnnounce   Kind = "announce"
	KindAssignment Kind = "assignment"
)

type ButtonStyle int

const (
	ButtonSecondary ButtonStyle = iota
	ButtonSuccess
	ButtonDanger
)

type Button struct {
	CustomID string
	Label    string
	Style    ButtonStyle
}

type Option struct {
	Label   string
	Value   string
	Default bool
}

type Select struct {
	CustomID    string
	Placeholder string
	Options     []Option
	MinValues   int
	MaxValues   int
}

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// View is everything needed to display one message.
type View struct {
	Kind     Kind
	Title    string
	Body     string
	Color    int
	Fields   []Field
	Footer   string
	ImageURL string
	Buttons  []Button
	Selects  []Select
}

// Translate resolves a catalog key for the locale the view is rendered in.
type Translate func(key string, data map[string]any) string
