package request

import (
	"slotbook/internal/usecase/commands"
)

type EventTypeRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Duration     int    `json:"duration" binding:"required,gt=0"`
	Slug         string `json:"slug" binding:"required"`
	Color        string `json:"color"`
	BufferBefore int    `json:"buffer_before" binding:"gte=0"`
	BufferAfter  int    `json:"buffer_after" binding:"gte=0"`
}

func (r EventTypeRequest) ToParams() commands.EventTypeParams {
	return commands.EventTypeParams{
		Name:         r.Name,
		Description:  r.Description,
		Duration:     r.Duration,
		Slug:         r.Slug,
		Color:        r.Color,
		BufferBefore: r.BufferBefore,
		BufferAfter:  r.BufferAfter,
	}
}
