package request

import (
	"slotbook/internal/usecase/commands"
)

type RuleRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"gte=0,lte=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateAvailabilityRequest struct {
	Timezone string        `json:"timezone" binding:"required"`
	Rules    []RuleRequest `json:"rules" binding:"required,dive"`
}

func (r UpdateAvailabilityRequest) ToParams() []commands.RuleParams {
	params := make([]commands.RuleParams, len(r.Rules))
	for i, rule := range r.Rules {
		params[i] = commands.RuleParams{
			DayOfWeek: rule.DayOfWeek,
			StartTime: rule.StartTime,
			EndTime:   rule.EndTime,
		}
	}
	return params
}
