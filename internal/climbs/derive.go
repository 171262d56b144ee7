package climbs

import "github.com/evanmtb/ticklist/internal/models"

type FilterMode string

const (
	FilterAll    FilterMode = "all"
	FilterSent   FilterMode = "sent"
	FilterUnsent FilterMode = "unsent"
)

// IsSent reports whether the climb has been completed in any session.
// Sent status is derived here and nowhere else; it is never stored.
func IsSent(c models.Climb) bool {
	for _, a := range c.Attempts {
		if a.Send {
			return true
		}
	}
	return false
}

// TotalAttempts sums the per-session try counts across the climb's
// attempt history.
func TotalAttempts(c models.Climb) int {
	total := 0
	for _, a := range c.Attempts {
		total += a.Attempts
	}
	return total
}

// Filter returns the climbs matching the given mode, preserving the
// relative order of the input. FilterAll returns the input unchanged;
// the other modes return a fresh slice and never mutate the input.
func Filter(climbs []models.Climb, mode FilterMode) []models.Climb {
	switch mode {
	case FilterSent:
		filtered := make([]models.Climb, 0, len(climbs))
		for _, c := range climbs {
			if IsSent(c) {
				filtered = append(filtered, c)
			}
		}
		return filtered
	case FilterUnsent:
		filtered := make([]models.Climb, 0, len(climbs))
		for _, c := range climbs {
			if !IsSent(c) {
				filtered = append(filtered, c)
			}
		}
		return filtered
	default:
		return climbs
	}
}
