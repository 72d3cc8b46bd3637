package attendance

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type BreakType string

const (
	BreakTypeStandard BreakType = "Standard"
	BreakTypeExtra    BreakType = "Extra"
)

// BreakInterval is one break inside an attendance session. End is nil while the break is open.
type BreakInterval struct {
	Start           time.Time  `json:"start"`
	End             *time.Time `json:"end,omitempty"`
	Type            BreakType  `json:"type"`
	DurationSeconds int64      `json:"duration_seconds"`
}

// IsOpen reports whether the break has not been ended yet.
func (b BreakInterval) IsOpen() bool {
	return b.End == nil
}

// Breaks is stored as a JSONB array, in chronological order of break starts.
type Breaks []BreakInterval

// Value implements driver.Valuer for database storage
func (b Breaks) Value() (driver.Value, error) {
	if b == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner for database retrieval
func (b *Breaks) Scan(value interface{}) error {
	if value == nil {
		*b = Breaks{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("failed to scan Breaks: invalid type")
	}

	return json.Unmarshal(raw, b)
}

// AttendanceRecord is one user's attendance for one calendar day.
// (UserID, Date) is the natural key.
type AttendanceRecord struct {
	ID                 string
	UserID             string
	Date               string // YYYY-MM-DD
	CheckIn            *time.Time
	CheckOut           *time.Time
	Location           *string
	Breaks             Breaks
	TotalWorkedSeconds int64
	// nil means the flags were never computed (legacy rows)
	LowTimeFlag   *bool
	ExtraTimeFlag *bool
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO / Join
	UserName       *string
	UserDepartment *string
}

type State string

const (
	StateNoRecord State = "no_record"
	StateOpen     State = "open"
	StateOnBreak  State = "on_break"
	StateClosed   State = "closed"
)

// StateOf derives the lifecycle state of a record. A nil record, or one without
// a check-in, is treated as NoRecord.
func StateOf(r *AttendanceRecord) State {
	switch {
	case r == nil || r.CheckIn == nil:
		return StateNoRecord
	case r.CheckOut != nil:
		return StateClosed
	case r.ActiveBreakIndex() >= 0:
		return StateOnBreak
	default:
		return StateOpen
	}
}

// ActiveBreakIndex returns the index of the open break, or -1.
func (r AttendanceRecord) ActiveBreakIndex() int {
	for i, b := range r.Breaks {
		if b.IsOpen() {
			return i
		}
	}
	return -1
}

// FlagsComputed reports whether both classification flags have been stored.
func (r AttendanceRecord) FlagsComputed() bool {
	return r.LowTimeFlag != nil && r.ExtraTimeFlag != nil
}

// Clone returns a deep copy so transitions never touch the caller's snapshot.
func (r AttendanceRecord) Clone() AttendanceRecord {
	out := r
	out.CheckIn = cloneTime(r.CheckIn)
	out.CheckOut = cloneTime(r.CheckOut)
	out.Location = cloneString(r.Location)
	out.Notes = cloneString(r.Notes)
	out.LowTimeFlag = cloneBool(r.LowTimeFlag)
	out.ExtraTimeFlag = cloneBool(r.ExtraTimeFlag)
	out.UserName = cloneString(r.UserName)
	out.UserDepartment = cloneString(r.UserDepartment)
	if r.Breaks != nil {
		out.Breaks = make(Breaks, len(r.Breaks))
		for i, b := range r.Breaks {
			b.End = cloneTime(b.End)
			out.Breaks[i] = b
		}
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
