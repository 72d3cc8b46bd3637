package attendance

import (
	"fmt"
	"time"
)

// EffectKind names the kind of side effect a transition asks for.
type EffectKind string

const (
	EffectCreate EffectKind = "create"
	EffectUpdate EffectKind = "update"
	EffectAudit  EffectKind = "audit"
)

// Audit actions emitted by the lifecycle
const (
	ActionClockIn  = "CLOCK_IN"
	ActionClockOut = "CLOCK_OUT"
)

// Effect is a side effect the caller must execute after a successful transition.
type Effect struct {
	Kind    EffectKind
	Action  string // audit only
	Details string // audit only
}

// Transition is the outcome of applying one event to a snapshot.
type Transition struct {
	Record  AttendanceRecord
	Effects []Effect
}

// Persists reports whether the transition carries a create or update effect.
func (t Transition) Persists() bool {
	for _, e := range t.Effects {
		if e.Kind == EffectCreate || e.Kind == EffectUpdate {
			return true
		}
	}
	return false
}

// ClockInCommand carries the inputs of a clock-in event.
type ClockInCommand struct {
	ID       string
	UserID   string
	Date     string
	Location string
	Now      time.Time
}

// ClockIn opens today's record. Any existing record for the day, whatever its
// state, rejects the event.
func ClockIn(existing *AttendanceRecord, cmd ClockInCommand) (Transition, error) {
	if existing != nil {
		return Transition{}, ErrAlreadyClockedIn
	}

	location := cmd.Location
	if location == "" {
		location = "Office"
	}
	now := cmd.Now
	lowTime, extraTime := false, false

	record := AttendanceRecord{
		ID:                 cmd.ID,
		UserID:             cmd.UserID,
		Date:               cmd.Date,
		CheckIn:            &now,
		Location:           &location,
		Breaks:             Breaks{},
		TotalWorkedSeconds: 0,
		LowTimeFlag:        &lowTime,
		ExtraTimeFlag:      &extraTime,
	}

	return Transition{
		Record: record,
		Effects: []Effect{
			{Kind: EffectCreate},
			{Kind: EffectAudit, Action: ActionClockIn, Details: fmt.Sprintf("Clocked in at %s", cmd.Date)},
		},
	}, nil
}

// ValidateClockOut checks that the record is Open: checked in, not checked out, no open break.
func ValidateClockOut(existing *AttendanceRecord) error {
	switch StateOf(existing) {
	case StateNoRecord:
		return ErrNoActiveSession
	case StateClosed:
		return ErrAlreadyClockedOut
	case StateOnBreak:
		return ErrBreakInProgress
	}
	return nil
}

// ClockOut closes the session at now and finalizes worked time and flags.
func ClockOut(existing *AttendanceRecord, now time.Time, isHalfDayApproved bool) (Transition, error) {
	if err := ValidateClockOut(existing); err != nil {
		return Transition{}, err
	}

	record := existing.Clone()
	record.CheckOut = &now
	finalize(&record, isHalfDayApproved)

	return Transition{
		Record: record,
		Effects: []Effect{
			{Kind: EffectUpdate},
			{Kind: EffectAudit, Action: ActionClockOut, Details: fmt.Sprintf("Clocked out at %s", record.Date)},
		},
	}, nil
}

// StartBreak appends a new open break. An empty type defaults to Standard.
func StartBreak(existing *AttendanceRecord, breakType BreakType, now time.Time) (Transition, error) {
	switch StateOf(existing) {
	case StateNoRecord, StateClosed:
		return Transition{}, ErrNoActiveSession
	case StateOnBreak:
		return Transition{}, ErrBreakAlreadyActive
	}

	if breakType == "" {
		breakType = BreakTypeStandard
	}
	if breakType != BreakTypeStandard && breakType != BreakTypeExtra {
		return Transition{}, ErrInvalidBreakType
	}

	record := existing.Clone()
	record.Breaks = append(record.Breaks, BreakInterval{
		Start: now,
		Type:  breakType,
	})

	return Transition{
		Record:  record,
		Effects: []Effect{{Kind: EffectUpdate}},
	}, nil
}

// EndBreak closes the open break at now.
func EndBreak(existing *AttendanceRecord, now time.Time) (Transition, error) {
	if existing == nil {
		return Transition{}, ErrNoRecordFound
	}

	idx := existing.ActiveBreakIndex()
	if idx < 0 {
		return Transition{}, ErrNoActiveBreak
	}

	record := existing.Clone()
	end := now
	record.Breaks[idx].End = &end
	record.Breaks[idx].DurationSeconds = DurationSeconds(record.Breaks[idx].Start, end)

	return Transition{
		Record:  record,
		Effects: []Effect{{Kind: EffectUpdate}},
	}, nil
}

// NeedsReclassification reports whether a closed record is missing its flags.
func NeedsReclassification(r *AttendanceRecord) bool {
	return r != nil && r.CheckIn != nil && r.CheckOut != nil && !r.FlagsComputed()
}

// Reclassify recomputes totals and flags for a closed record whose flags were never
// stored. It returns ok=false, and no effects, for any other record.
func Reclassify(existing *AttendanceRecord, isHalfDayApproved bool) (Transition, bool) {
	if !NeedsReclassification(existing) {
		return Transition{}, false
	}

	record := existing.Clone()
	finalize(&record, isHalfDayApproved)

	return Transition{
		Record:  record,
		Effects: []Effect{{Kind: EffectUpdate}},
	}, true
}

func finalize(record *AttendanceRecord, isHalfDayApproved bool) {
	worked := WorkedSeconds(*record, record.CheckOut)
	flags := Classify(worked, isHalfDayApproved)

	record.TotalWorkedSeconds = worked
	record.LowTimeFlag = &flags.LowTime
	record.ExtraTimeFlag = &flags.ExtraTime
}
