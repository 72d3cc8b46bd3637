package audit

import "time"

type TargetType string

const (
	TargetUser       TargetType = "USER"
	TargetAttendance TargetType = "ATTENDANCE"
	TargetLeave      TargetType = "LEAVE"
	TargetSystem     TargetType = "SYSTEM"
)

// Entry is one recorded action. BeforeData and AfterData hold JSON text.
type Entry struct {
	ID         string
	ActorID    string
	ActorName  string
	Action     string
	TargetType TargetType
	TargetID   *string
	Details    string
	BeforeData *string
	AfterData  *string
	CreatedAt  time.Time
}
