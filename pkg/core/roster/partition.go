package roster

import "time"

// nextBoundary returns the first shift boundary (07:00 or 19:00 local) in
// the hour bucket after t: before 07:00 it is today 07:00, before 19:00 it
// is today 19:00, otherwise tomorrow 07:00.
func nextBoundary(t time.Time) time.Time {
	switch {
	case t.Hour() < DayShiftStartHour:
		return time.Date(t.Year(), t.Month(), t.Day(), DayShiftStartHour, 0, 0, 0, t.Location())
	case t.Hour() < NightShiftStartHour:
		return time.Date(t.Year(), t.Month(), t.Day(), NightShiftStartHour, 0, 0, 0, t.Location())
	default:
		next := t.AddDate(0, 0, 1)
		return time.Date(next.Year(), next.Month(), next.Day(), DayShiftStartHour, 0, 0, 0, next.Location())
	}
}

// PartitionShifts splits the discharge window into contiguous shifts. The
// first shift runs from the discharge start to the next boundary (capped at
// 12 hours); every later shift runs boundary to boundary. The last shift is
// cut at the discharge end, so the union of shifts covers exactly
// [dischargeStart, dischargeStart+dischargeHours).
func PartitionShifts(dischargeStart time.Time, dischargeHours float64) []Shift {
	dischargeEnd := dischargeStart.Add(time.Duration(dischargeHours * float64(time.Hour)))

	var shifts []Shift
	cursor := dischargeStart
	for cursor.Before(dischargeEnd) {
		end := nextBoundary(cursor)
		if len(shifts) == 0 {
			if maxEnd := cursor.Add(ShiftDurationHours * time.Hour); end.After(maxEnd) {
				end = maxEnd
			}
		}
		if end.After(dischargeEnd) {
			end = dischargeEnd
		}
		shifts = append(shifts, Shift{Start: cursor, End: end})
		cursor = end
	}
	return shifts
}
