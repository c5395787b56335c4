package commands

import (
	"context"

	"slotbook/internal/domain/availability"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/timezone"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type RuleParams struct {
	DayOfWeek int
	StartTime string
	EndTime   string
}

type AvailabilityCommands interface {
	// ReplaceSchedule swaps the organizer's default schedule timezone and
	// rule set wholesale. Rules are not diffed.
	ReplaceSchedule(ctx context.Context, organizerID uuid.UUID, tz string, rules []RuleParams) error
}

type availabilityCommandsImpl struct {
	availRepo  AvailabilityRepository
	availReads queries.AvailabilityReadStore
	txm        shared.TxManager
}

func NewAvailabilityCommands(
	availRepo AvailabilityRepository,
	availReads queries.AvailabilityReadStore,
	txm shared.TxManager,
) AvailabilityCommands {
	return &availabilityCommandsImpl{
		availRepo:  availRepo,
		availReads: availReads,
		txm:        txm,
	}
}

func (c *availabilityCommandsImpl) ReplaceSchedule(ctx context.Context, organizerID uuid.UUID, tz string, ruleParams []RuleParams) error {
	if _, err := timezone.LoadLocation(tz); err != nil {
		return errs.Mark(err, errs.ErrInvalidTimezone)
	}

	ruleSet, err := buildRuleSet(ruleParams)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidRule)
	}

	schedule, err := c.availReads.DefaultScheduleByOrganizer(ctx, organizerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrScheduleNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// One transaction covers timezone update, rule delete and rule insert so
	// concurrent slot listings never observe a half-replaced schedule.
	err = c.txm.WithinTx(ctx, func(tx db.DBTX) error {
		if txErr := c.availRepo.UpdateScheduleTimezone(ctx, tx, schedule.ID, tz); txErr != nil {
			return txErr
		}
		return c.availRepo.ReplaceRules(ctx, tx, schedule.ID, ruleSet)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func buildRuleSet(params []RuleParams) (availability.RuleSet, error) {
	rules := make(availability.RuleSet, 0, len(params))
	for _, p := range params {
		start, err := availability.ParseTimeOfDay(p.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := availability.ParseTimeOfDay(p.EndTime)
		if err != nil {
			return nil, err
		}
		rule, err := availability.NewRule(p.DayOfWeek, start, end)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
