package booking

import (
	"medibook-service/internal/pkg/utils"
	"sort"
	"time"
)

// FilterElapsedSlots drops every slot whose time-of-day is not strictly after
// now. The comparison converts "HH:MM" to minutes since midnight and compares
// integers; slots that fail to parse are dropped rather than guessed at.
// Callers apply this only when the requested date equals today.
func FilterElapsedSlots(slots []string, now time.Time) []string {
	nowMinutes := now.Hour()*60 + now.Minute()

	kept := make([]string, 0, len(slots))
	for _, slot := range slots {
		slotMinutes, err := utils.ClockToMinutes(slot)
		if err != nil {
			continue
		}
		if slotMinutes > nowMinutes {
			kept = append(kept, slot)
		}
	}
	return kept
}

// SortSlots orders slots ascending by time of day. Lexicographic order equals
// chronological order for zero-padded 24-hour strings.
func SortSlots(slots []string) {
	sort.Strings(slots)
}
