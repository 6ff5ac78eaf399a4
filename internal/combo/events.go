package combo

import (
	"kanacombo/internal/candidate"
)

// Event is an input delivered by the host widget. The set is closed.
type Event interface {
	isEvent()
}

// TextEdited reports a direct edit of the committed field text.
type TextEdited struct {
	Text string
}

// CompositionChanged reports an input method preedit update. Combined is the
// committed text followed by the preedit; an empty Composition closes the
// session.
type CompositionChanged struct {
	Combined    string
	Composition string
}

// CompositionEnded reports that the input method session closed, leaving
// Text committed in the field.
type CompositionEnded struct {
	Text string
}

// Commit is a return key press or loss of focus.
type Commit struct{}

// Direction is a navigation request inside the completion popup.
type Direction int

const (
	NavNext Direction = iota
	NavPrev
	NavConfirm
	NavDismiss
)

func (d Direction) String() string {
	switch d {
	case NavNext:
		return "next"
	case NavPrev:
		return "prev"
	case NavConfirm:
		return "confirm"
	case NavDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// Navigate moves or confirms the popup highlight.
type Navigate struct {
	Dir Direction
}

// Activate reports that a completion with display text Text was chosen.
type Activate struct {
	Text string
}

// PickRow reports a direct pick of Row from the full drop-down list.
type PickRow struct {
	Row int
}

func (TextEdited) isEvent()         {}
func (CompositionChanged) isEvent() {}
func (CompositionEnded) isEvent()   {}
func (Commit) isEvent()             {}
func (Navigate) isEvent()           {}
func (Activate) isEvent()           {}
func (PickRow) isEvent()            {}

// Effect is an instruction for the host. The set is closed.
type Effect interface {
	isEffect()
}

// SetText replaces the field text.
type SetText struct {
	Text string
}

// SetInvalid toggles the invalid cue of the field.
type SetInvalid struct {
	Invalid bool
}

// RebuildRows tells the host the row list was regenerated.
type RebuildRows struct{}

// SelectionChanged is emitted when the user moves the active row.
type SelectionChanged struct {
	Row int
	ID  candidate.ID
}

func (SetText) isEffect()          {}
func (SetInvalid) isEffect()       {}
func (RebuildRows) isEffect()      {}
func (SelectionChanged) isEffect() {}
