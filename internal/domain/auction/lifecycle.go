package auction

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RotationStep is the distance between the promoted slot and the slot
// appended behind it.
const RotationStep = 3 * time.Hour

// Planner decides lifecycle changes for one day from a snapshot of its slots.
// It performs no I/O; callers load the day, plan, then persist the result in
// one unit of work.
type Planner struct {
	newID func() uuid.UUID
}

func NewPlanner(newID func() uuid.UUID) *Planner {
	if newID == nil {
		newID = uuid.New
	}
	return &Planner{newID: newID}
}

// Rotation is the outcome of one round progression. Completed and Promoted are
// mutated copies of loaded slots; Appended is new.
type Rotation struct {
	Completed *Slot
	Promoted  *Slot
	Appended  *Slot
}

// Reconciliation lists the repairs applied to an inconsistent day.
type Reconciliation struct {
	Completed []*Slot
	Promoted  *Slot
	Appended  *Slot
}

func (r *Reconciliation) IsEmpty() bool {
	return len(r.Completed) == 0 && r.Promoted == nil && r.Appended == nil
}

// Initialize seeds an empty day: three slots, the first one live.
func (p *Planner) Initialize(date Date, masterID string, existing []*Slot, now time.Time) ([]*Slot, error) {
	if strings.TrimSpace(masterID) == "" {
		return nil, ErrMissingMasterID
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyInitialized
	}

	slots := make([]*Slot, 0, initialSlotCount)
	for i := 0; i < initialSlotCount; i++ {
		number := i + 1
		status := StatusUpcoming
		if i == 0 {
			status = StatusLive
		}
		slot, err := NewSlot(NewSlotParams{
			ID:         p.newID(),
			ExternalID: p.newID(),
			MasterID:   masterID,
			Number:     number,
			TimeSlot:   initialTimeSlots[i],
			Template:   initialTemplate(number),
			Status:     status,
			Date:       date,
			Now:        now,
		})
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// Rotate completes the live slot, promotes the earliest upcoming one and
// appends a replacement. The input slots are not modified.
func (p *Planner) Rotate(day []*Slot, now time.Time) (*Rotation, error) {
	d := newDaySnapshot(day)

	live := d.live()
	if len(live) == 0 {
		return nil, ErrNoLiveAuction
	}
	// Several live slots means the day needs reconciling; rotating the newest
	// one keeps the queue moving.
	current := live[len(live)-1]

	next := d.earliestUpcoming()
	if next == nil {
		return nil, ErrNoUpcomingAuction
	}

	if err := current.Complete(now); err != nil {
		return nil, err
	}
	if err := next.Promote(now); err != nil {
		return nil, err
	}

	appended, err := p.successor(current, next, d.maxNumber()+1, now)
	if err != nil {
		return nil, err
	}

	return &Rotation{Completed: current, Promoted: next, Appended: appended}, nil
}

// Reconcile repairs a day left inconsistent by an interrupted or concurrent
// writer. A healthy day yields an empty result.
func (p *Planner) Reconcile(day []*Slot, now time.Time) (*Reconciliation, error) {
	d := newDaySnapshot(day)
	result := &Reconciliation{}

	live := d.live()
	if len(live) > 1 {
		for _, s := range live[:len(live)-1] {
			if err := s.Complete(now); err != nil {
				return nil, err
			}
			result.Completed = append(result.Completed, s)
		}
		live = live[len(live)-1:]
	}

	if len(live) == 0 {
		next := d.earliestUpcoming()
		if next == nil {
			return result, nil
		}
		if err := next.Promote(now); err != nil {
			return nil, err
		}
		result.Promoted = next
		live = []*Slot{next}
	}

	if d.earliestUpcoming() == nil {
		current := live[0]
		appended, err := p.successor(current, current, d.maxNumber()+1, now)
		if err != nil {
			return nil, err
		}
		result.Appended = appended
	}

	return result, nil
}

// successor builds the upcoming slot that follows anchor, carrying the
// configuration of source.
func (p *Planner) successor(source, anchor *Slot, number int, now time.Time) (*Slot, error) {
	return NewSlot(NewSlotParams{
		ID:         p.newID(),
		ExternalID: p.newID(),
		MasterID:   source.masterID,
		Number:     number,
		TimeSlot:   anchor.timeSlot.Add(RotationStep),
		Template:   source.template,
		Status:     StatusUpcoming,
		Date:       anchor.date,
		Now:        now,
	})
}

type daySnapshot struct {
	slots []*Slot
}

func newDaySnapshot(day []*Slot) *daySnapshot {
	slots := make([]*Slot, 0, len(day))
	for _, s := range day {
		if s == nil {
			continue
		}
		c := *s
		c.template.Rounds = s.template.Rounds.Clone()
		slots = append(slots, &c)
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].number < slots[j].number })
	return &daySnapshot{slots: slots}
}

func (d *daySnapshot) live() []*Slot {
	var out []*Slot
	for _, s := range d.slots {
		if s.IsLive() {
			out = append(out, s)
		}
	}
	return out
}

func (d *daySnapshot) earliestUpcoming() *Slot {
	for _, s := range d.slots {
		if s.IsUpcoming() {
			return s
		}
	}
	return nil
}

func (d *daySnapshot) maxNumber() int {
	highest := 0
	for _, s := range d.slots {
		if s.number > highest {
			highest = s.number
		}
	}
	return highest
}
