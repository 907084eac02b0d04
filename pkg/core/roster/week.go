package roster

import "time"

// WeekWindow bounds one Monday-to-Sunday accounting week. It is only used
// as a filter for weekly hour caps and conflict collection, never persisted.
type WeekWindow struct {
	Start time.Time // Monday 00:00:00.000
	End   time.Time // Sunday 23:59:59.999
}

// WeekOf returns the week window containing t, in t's location.
func WeekOf(t time.Time) WeekWindow {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -daysSinceMonday)
	sunday := monday.AddDate(0, 0, 6)
	end := time.Date(sunday.Year(), sunday.Month(), sunday.Day(),
		23, 59, 59, int(999*time.Millisecond), sunday.Location())
	return WeekWindow{Start: monday, End: end}
}

// overlaps reports whether [start1, end1) and [start2, end2) share any time.
func overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}

func hoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// formatInstant renders a timestamp the way the roster UI displays it.
func formatInstant(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}
