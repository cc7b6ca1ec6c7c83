// Package menu derives what the menu page shows from the URL fragment.
package menu

import (
	"encoding/json"
	"time"

	"crazy-coffee/internal/model"
)

// Scroll defaults applied when a fragment is present.
const (
	ScrollDelay    = 100 * time.Millisecond
	ScrollBehavior = "smooth"
	ScrollBlock    = "start"
)

// ScrollDirective asks the page to bring an element into view once it has
// rendered. The page ignores it when no element has the Target id.
type ScrollDirective struct {
	Target   string
	Delay    time.Duration
	Behavior string
	Block    string
}

// DelayMS returns Delay in whole milliseconds, as the page script expects.
func (d ScrollDirective) DelayMS() int64 {
	return d.Delay.Milliseconds()
}

// MarshalJSON encodes the directive with the delay in milliseconds.
func (d ScrollDirective) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Target   string `json:"target"`
		DelayMS  int64  `json:"delay_ms"`
		Behavior string `json:"behavior"`
		Block    string `json:"block"`
	}{
		Target:   d.Target,
		DelayMS:  d.DelayMS(),
		Behavior: d.Behavior,
		Block:    d.Block,
	})
}

// DeriveActiveSection maps a fragment to the active section. Anything that
// is not a known section key, including the empty fragment, selects all.
func DeriveActiveSection(fragment string) model.SectionKey {
	switch key := model.SectionKey(fragment); key {
	case model.SectionDrinks, model.SectionFood:
		return key
	default:
		return model.SectionAll
	}
}

// IsVisible reports whether section is rendered while active is selected.
func IsVisible(active, section model.SectionKey) bool {
	return active == model.SectionAll || active == section
}

// DeriveVisibleSections returns the sections shown for fragment, in page order.
func DeriveVisibleSections(fragment string) []model.SectionKey {
	active := DeriveActiveSection(fragment)

	visible := make([]model.SectionKey, 0, len(model.MenuSections))
	for _, key := range model.MenuSections {
		if IsVisible(active, key) {
			visible = append(visible, key)
		}
	}
	return visible
}

// DeriveScroll returns the scroll directive for fragment, or nil when the
// fragment is empty. Unknown fragments still scroll; the page decides
// whether the target exists.
func DeriveScroll(fragment string) *ScrollDirective {
	if fragment == "" {
		return nil
	}
	return &ScrollDirective{
		Target:   fragment,
		Delay:    ScrollDelay,
		Behavior: ScrollBehavior,
		Block:    ScrollBlock,
	}
}
