package audit

import (
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type ListFilter struct {
	Limit int `json:"limit"`
}

func (f *ListFilter) Validate() error {
	if f.Limit == 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit < 0 || f.Limit > MaxListLimit {
		return validator.ValidationErrors{{
			Field:   "limit",
			Message: "limit must be between 1 and 1000",
		}}
	}
	return nil
}

type EntryResponse struct {
	ID         string  `json:"id"`
	ActorID    string  `json:"actor_id"`
	ActorName  string  `json:"actor_name"`
	Action     string  `json:"action"`
	TargetType string  `json:"target_type"`
	TargetID   *string `json:"target_id,omitempty"`
	Details    string  `json:"details"`
	BeforeData *string `json:"before_data,omitempty"`
	AfterData  *string `json:"after_data,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		ActorID:    e.ActorID,
		ActorName:  e.ActorName,
		Action:     e.Action,
		TargetType: string(e.TargetType),
		TargetID:   e.TargetID,
		Details:    e.Details,
		BeforeData: e.BeforeData,
		AfterData:  e.AfterData,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
