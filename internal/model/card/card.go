package card

// ButtonStyle mirrors the visual weight a transport should give an action.
type ButtonStyle int

const (
	StylePrimary ButtonStyle = iota
	StyleSecondary
	StyleSuccess
	StyleDanger
)

// Field is one inline name/value pair inside a section.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// ImageRef points a section at a generated image file. Name is the
// attachment name a transport should expose; Path is the local file.
type ImageRef struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
}

// Section is one visual block of a card.
type Section struct {
	Color  string    `json:"color"`
	Title  string    `json:"title"`
	Body   string    `json:"body,omitempty"`
	Footer string    `json:"footer,omitempty"`
	Fields []Field   `json:"fields,omitempty"`
	Image  *ImageRef `json:"image,omitempty"`
}

// Action is a clickable affordance attached below the sections.
type Action struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Style ButtonStyle `json:"style"`
}

// ActionRow groups actions that render side by side.
type ActionRow []Action

// Card is the transport-agnostic rendering of a reply. It is built fresh
// per request; attaching an image to an existing section is the only
// mutation allowed after construction.
type Card struct {
	Sections []Section   `json:"sections"`
	Rows     []ActionRow `json:"rows,omitempty"`
	Fallback string      `json:"fallback,omitempty"`
}
