// Package spiritroot rolls a player's spirit root and turns it into the
// gameplay bonuses the calculators consume.
package spiritroot

import "strings"

const typeSeparator = "+"

// SpiritRoot is a player's elemental affinity. It is rolled once at
// character creation and never changes.
type SpiritRoot struct {
	Quality  Quality   `json:"quality"`
	Elements []Element `json:"elements"`
	Value    int       `json:"value"`
	Purity   int       `json:"purity"`
}

// Type joins the element tags, e.g. "metal+wood"
func (r SpiritRoot) Type() string {
	names := make([]string, len(r.Elements))
	for i, e := range r.Elements {
		names[i] = e.String()
	}
	return strings.Join(names, typeSeparator)
}

// Label joins the element display names, e.g. "Metal+Wood"
func (r SpiritRoot) Label() string {
	names := make([]string, len(r.Elements))
	for i, e := range r.Elements {
		names[i] = e.Label()
	}
	return strings.Join(names, typeSeparator)
}

// Primary is the first listed element. Multi-element roots draw their
// element bonuses from it alone.
func (r SpiritRoot) Primary() Element {
	if len(r.Elements) == 0 {
		return ElementUnknown
	}
	return r.Elements[0]
}

// SingleElement returns the element of a one-element root
func (r SpiritRoot) SingleElement() (Element, bool) {
	if len(r.Elements) != 1 {
		return ElementUnknown, false
	}
	return r.Elements[0], true
}
