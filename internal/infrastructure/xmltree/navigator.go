package xmltree

import "strings"

// TextState tells apart a missing element from one that is present but
// carries no text. Only the latter is a configuration error.
type TextState int

const (
	// Absent means no child element with the requested tag exists.
	Absent TextState = iota
	// Found means the element exists and has text.
	Found
	// Empty means the element exists but has no text content.
	Empty
)

// String returns the state name.
func (s TextState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Found:
		return "found"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// TextLookup is the result of FindChildText.
type TextLookup struct {
	Tag   string
	State TextState
	Text  string
}

// FindChild returns the first child element of parent whose qualified name
// is tag.
func FindChild(parent *Element, tag string) (*Element, bool) {
	if parent == nil {
		return nil, false
	}
	el := childElement(parent.el, tag)
	if el == nil {
		return nil, false
	}
	return &Element{el: el}, true
}

// FindChildText looks up the first child named tag and extracts its text.
// The text is returned verbatim; whitespace-only text counts as empty.
func FindChildText(parent *Element, tag string) TextLookup {
	child, ok := FindChild(parent, tag)
	if !ok {
		return TextLookup{Tag: tag, State: Absent}
	}
	return ElementText(child)
}

// ElementText extracts the text of el itself.
func ElementText(el *Element) TextLookup {
	text := el.el.Text()
	if strings.TrimSpace(text) == "" {
		return TextLookup{Tag: el.Tag(), State: Empty}
	}
	return TextLookup{Tag: el.Tag(), State: Found, Text: text}
}
