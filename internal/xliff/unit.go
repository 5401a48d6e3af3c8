package xliff

import "github.com/beevik/etree"

// State is a translation unit's workflow state, stored as the state
// attribute of the target element. StateNone means the attribute is
// absent.
type State string

// Workflow states defined by XLIFF 1.2.
const (
	StateNone                   State = ""
	StateNew                    State = "new"
	StateNeedsTranslation       State = "needs-translation"
	StateNeedsReviewTranslation State = "needs-review-translation"
	StateNeedsAdaptation        State = "needs-adaptation"
	StateNeedsReviewAdaptation  State = "needs-review-adaptation"
	StateNeedsL10n              State = "needs-l10n"
	StateNeedsReviewL10n        State = "needs-review-l10n"
	StateTranslated             State = "translated"
	StateSignedOff              State = "signed-off"
	StateFinal                  State = "final"
)

// Note is an annotation on a translation unit.
type Note struct {
	Text string
	From string
}

// Unit is a handle over one trans-unit element. The enclosing Document
// owns the underlying node.
type Unit struct {
	el *etree.Element
}

// ID returns the unit's id attribute.
func (u *Unit) ID() string {
	return u.el.SelectAttrValue("id", "")
}

// Source returns the source text.
func (u *Unit) Source() string {
	if s := u.el.SelectElement("source"); s != nil {
		return s.Text()
	}
	return ""
}

// SetSource replaces the source text.
func (u *Unit) SetSource(text string) {
	s := u.el.SelectElement("source")
	if s == nil {
		s = u.el.CreateElement("source")
	}
	s.SetText(text)
}

// Target returns the target text. A missing or empty target element
// reads as "".
func (u *Unit) Target() string {
	if t := u.el.SelectElement("target"); t != nil {
		return t.Text()
	}
	return ""
}

// SetTarget replaces the target text.
func (u *Unit) SetTarget(text string) {
	u.target().SetText(text)
}

// State returns the workflow state.
func (u *Unit) State() State {
	if t := u.el.SelectElement("target"); t != nil {
		return State(t.SelectAttrValue("state", ""))
	}
	return StateNone
}

// SetState sets the workflow state; StateNone removes the attribute.
func (u *Unit) SetState(s State) {
	t := u.target()
	if s == StateNone {
		t.RemoveAttr("state")
		return
	}
	t.CreateAttr("state", string(s))
}

// Approved reports whether the unit is marked approved. The attribute
// is either the literal "yes" or absent.
func (u *Unit) Approved() bool {
	return u.el.SelectAttrValue("approved", "") == "yes"
}

// SetApproved marks or unmarks the unit as approved. False removes the
// attribute entirely rather than writing "no".
func (u *Unit) SetApproved(approved bool) {
	if approved {
		u.el.CreateAttr("approved", "yes")
		return
	}
	u.el.RemoveAttr("approved")
}

// Notes returns the unit's notes in document order.
func (u *Unit) Notes() []Note {
	els := u.el.SelectElements("note")
	notes := make([]Note, 0, len(els))
	for _, el := range els {
		notes = append(notes, Note{
			Text: el.Text(),
			From: el.SelectAttrValue("from", ""),
		})
	}
	return notes
}

// AddNote appends a note. An empty from omits the attribute.
func (u *Unit) AddNote(text, from string) {
	n := u.el.CreateElement("note")
	n.SetText(text)
	if from != "" {
		n.CreateAttr("from", from)
	}
}

// target returns the target element, creating it directly after the
// source element when absent so the source/target/note child order
// required by XLIFF 1.2 holds even for units loaded without a target.
func (u *Unit) target() *etree.Element {
	if t := u.el.SelectElement("target"); t != nil {
		return t
	}
	t := etree.NewElement("target")
	if s := u.el.SelectElement("source"); s != nil {
		u.el.InsertChildAt(s.Index()+1, t)
	} else {
		u.el.AddChild(t)
	}
	return t
}
