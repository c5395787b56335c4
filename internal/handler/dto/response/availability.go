package response

import (
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RuleResponse struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type AvailabilityResponse struct {
	ScheduleID uuid.UUID      `json:"schedule_id"`
	Timezone   string         `json:"timezone"`
	Rules      []RuleResponse `json:"rules"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	rules := make([]RuleResponse, len(v.Rules))
	for i, r := range v.Rules {
		_ = copier.Copy(&rules[i], &r)
	}
	return &AvailabilityResponse{
		ScheduleID: v.Schedule.ID,
		Timezone:   v.Schedule.Timezone,
		Rules:      rules,
	}
}
