package attendance

import "time"

// Business rules for a full working day, in minutes of net worked time.
// Normal is 8h15m to 8h30m inclusive. An approved half-day leave halves both bounds.
const (
	MinNormalMinutes = 495.0
	MaxNormalMinutes = 510.0
)

// Flags is the classification of a finalized day. LowTime and ExtraTime are never both true.
type Flags struct {
	LowTime   bool
	ExtraTime bool
}

// DurationSeconds returns whole seconds between start and end, floored at 0.
func DurationSeconds(start, end time.Time) int64 {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}

// TotalBreakSeconds sums the closed breaks. Open breaks contribute nothing.
func TotalBreakSeconds(breaks []BreakInterval) int64 {
	var total int64
	for _, b := range breaks {
		if b.End == nil {
			continue
		}
		total += DurationSeconds(b.Start, *b.End)
	}
	return total
}

// WorkedSeconds returns net worked time for the record. The session end is
// explicitCheckOut when given, else the record's CheckOut. Without a check-in or an
// end instant the session has no worked time yet and 0 is returned.
func WorkedSeconds(record AttendanceRecord, explicitCheckOut *time.Time) int64 {
	if record.CheckIn == nil {
		return 0
	}

	end := explicitCheckOut
	if end == nil {
		end = record.CheckOut
	}
	if end == nil {
		return 0
	}

	worked := DurationSeconds(*record.CheckIn, *end) - TotalBreakSeconds(record.Breaks)
	if worked < 0 {
		return 0
	}
	return worked
}

// Classify flags a day as low time or extra time against the normal band.
// Zero worked time is neither.
func Classify(workedSeconds int64, isHalfDayApproved bool) Flags {
	workedMinutes := float64(workedSeconds) / 60

	low, high := MinNormalMinutes, MaxNormalMinutes
	if isHalfDayApproved {
		low, high = low/2, high/2
	}

	return Flags{
		LowTime:   workedMinutes > 0 && workedMinutes < low,
		ExtraTime: workedMinutes > high,
	}
}
