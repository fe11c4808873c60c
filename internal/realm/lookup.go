package realm

import (
	"fmt"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
)

// Lookup returns the realm with the given ID
func Lookup(id ID) (Realm, bool) {
	i, ok := byID[id]
	if !ok {
		return Realm{}, false
	}
	return table[i], true
}

// Get returns the realm with the given ID, falling back to the lowest realm
func Get(id ID) Realm {
	if r, ok := Lookup(id); ok {
		return r
	}
	return First()
}

// ByIndex returns the realm at the given ladder position
func ByIndex(index int) (Realm, bool) {
	if index < 0 || index >= len(table) {
		return Realm{}, false
	}
	return table[index], true
}

// All returns a copy of the ladder in order
func All() []Realm {
	out := make([]Realm, len(table))
	copy(out, table)
	return out
}

// First returns the lowest realm
func First() Realm {
	return table[0]
}

// Last returns the highest realm
func Last() Realm {
	return table[len(table)-1]
}

// NextSublevel returns the position one step above (id, level). Below Peak
// that is the next sub-level of the same realm; at Peak it is sub-level 1 of
// the next realm. At the top of the ladder the normalized input is returned
// unchanged, which callers must treat as "no further progression".
func NextSublevel(id ID, level int) (ID, int) {
	r := Get(id)
	level = ClampLevel(level)

	if level < MaxLevel {
		return r.ID, level + 1
	}
	if next, ok := ByIndex(r.Index + 1); ok {
		return next.ID, MinLevel
	}
	return r.ID, level
}

// IsTerminal reports whether (id, level) is the last position on the ladder
func IsTerminal(id ID, level int) bool {
	nextID, nextLevel := NextSublevel(id, level)
	return nextID == Get(id).ID && nextLevel == ClampLevel(level)
}

// CultivationRequired returns the threshold of the given sub-level
func CultivationRequired(id ID, level int) int64 {
	return Get(id).Threshold(level)
}

// SublevelName returns the display name of the given sub-level
func SublevelName(id ID, level int) string {
	return Get(id).LevelName(level)
}

// StageOf returns the stage of the realm, defaulting to the lowest stage
func StageOf(id ID) Stage {
	if r, ok := Lookup(id); ok {
		return r.Stage
	}
	return StageMortal
}

// Label returns the full display label, e.g. "Golden Core Mid"
func Label(id ID, level int) string {
	r := Get(id)
	return fmt.Sprintf("%s %s", r.Name, r.LevelName(level))
}

// Validate checks the ladder invariants: indices are contiguous from zero,
// IDs are unique and every realm has four strictly increasing thresholds.
func Validate() error {
	return validateTable(table)
}

func validateTable(realms []Realm) error {
	if len(realms) == 0 {
		return errors.Internal("realm table is empty")
	}

	seen := make(map[ID]bool, len(realms))
	for i, r := range realms {
		if r.Index != i {
			return errors.Internalf("realm %s has index %d, expected %d", r.ID, r.Index, i)
		}
		if seen[r.ID] {
			return errors.Internalf("realm %s declared twice", r.ID)
		}
		seen[r.ID] = true

		for lvl := 1; lvl < LevelsPerRealm; lvl++ {
			if r.Thresholds[lvl] <= r.Thresholds[lvl-1] {
				return errors.Internalf("realm %s thresholds are not increasing at level %d", r.ID, lvl+1).
					WithMeta(errors.MetaRealm, string(r.ID))
			}
		}
		if r.Thresholds[0] <= 0 {
			return errors.Internalf("realm %s has a non-positive first threshold", r.ID)
		}
	}
	return nil
}
