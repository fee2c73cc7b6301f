package pqueue

import (
	"errors"
	"fmt"
	"time"

	"github.com/agrodata/agrokit/record"
)

// Default harvest-alert windows, in days remaining before the estimated harvest.
const (
	DefaultUrgentWithin = 5
	DefaultNoticeWithin = 15
)

// ErrOptionViolation is returned when a HarvestOption carries an invalid value.
var ErrOptionViolation = errors.New("pqueue: invalid harvest option")

// HarvestOptions holds the alert windows used by ClassifyHarvest.
type HarvestOptions struct {
	// UrgentWithin: plantings with at most this many days left are urgent.
	UrgentWithin int
	// NoticeWithin: plantings with at most this many days left get a medium alert.
	NoticeWithin int

	harvested map[int]struct{}
	err       error
}

// HarvestOption configures HarvestAlerts.
type HarvestOption func(*HarvestOptions)

// DefaultHarvestOptions returns the 5/15-day windows.
func DefaultHarvestOptions() HarvestOptions {
	return HarvestOptions{UrgentWithin: DefaultUrgentWithin, NoticeWithin: DefaultNoticeWithin}
}

// WithUrgentWithin sets the urgent window. Negative values are rejected.
func WithUrgentWithin(days int) HarvestOption {
	return func(o *HarvestOptions) {
		if days < 0 {
			o.err = fmt.Errorf("%w: urgent window %d < 0", ErrOptionViolation, days)
			return
		}
		o.UrgentWithin = days
	}
}

// WithNoticeWithin sets the medium-alert window. Negative values are rejected.
func WithNoticeWithin(days int) HarvestOption {
	return func(o *HarvestOptions) {
		if days < 0 {
			o.err = fmt.Errorf("%w: notice window %d < 0", ErrOptionViolation, days)
			return
		}
		o.NoticeWithin = days
	}
}

// WithHarvests excludes plantings that already have a harvest record, even
// when their status still says they are in the field.
func WithHarvests(harvests []record.Harvest) HarvestOption {
	return func(o *HarvestOptions) {
		o.harvested = record.HarvestedIDs(harvests)
	}
}

// ClassifyHarvest grades a planting by how close it is to harvest.
// It returns ok=false when the harvest is too far away to alert on.
func (o HarvestOptions) ClassifyHarvest(elapsed, estimated int) (priority int, ok bool) {
	switch {
	case elapsed >= estimated-o.UrgentWithin:
		return PriorityUrgent, true
	case elapsed >= estimated-o.NoticeWithin:
		return PriorityMedium, true
	default:
		return PriorityLow, false
	}
}

// ClassifyHarvest grades with the default windows.
func ClassifyHarvest(elapsed, estimated int) (int, bool) {
	return DefaultHarvestOptions().ClassifyHarvest(elapsed, estimated)
}

// HarvestAlerts queues an alert for every in-field planting that falls in
// the urgent or notice window at time now. Harvested plantings and those far
// from harvest are skipped. Pass WithHarvests to also skip plantings whose
// harvest is recorded but whose status was not updated.
func HarvestAlerts(plantings []record.Planting, now time.Time, opts ...HarvestOption) (*Queue, error) {
	cfg := DefaultHarvestOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.NoticeWithin < cfg.UrgentWithin {
		return nil, fmt.Errorf("%w: notice window %d shorter than urgent window %d",
			ErrOptionViolation, cfg.NoticeWithin, cfg.UrgentWithin)
	}

	q := New()
	for _, p := range plantings {
		if !p.InField() {
			continue
		}
		if _, done := cfg.harvested[p.ID]; done {
			continue
		}
		prio, ok := cfg.ClassifyHarvest(p.DaysElapsed(now), p.DaysToHarvest)
		if !ok {
			continue
		}
		q.Push(prio, harvestMessage(prio, p), p.ID)
	}
	return q, nil
}

func harvestMessage(priority int, p record.Planting) string {
	if priority == PriorityUrgent {
		return fmt.Sprintf("URGENT: %s in %s ready to harvest", p.Crop, p.Plot)
	}
	return fmt.Sprintf("%s in %s approaching harvest", p.Crop, p.Plot)
}
