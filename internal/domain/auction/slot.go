package auction

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingMasterID    = errors.New("master id is required")
	ErrAlreadyInitialized = errors.New("auctions already initialized for date")
	ErrNoLiveAuction      = errors.New("no live auction for date")
	ErrNoUpcomingAuction  = errors.New("no upcoming auction for date")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidStatus      = errors.New("invalid auction status")
	ErrInvalidTimeSlot    = errors.New("invalid time slot")
	ErrInvalidDate        = errors.New("invalid scheduled date")
	ErrInvalidNumber      = errors.New("auction number must be positive")
)

// Slot is one scheduled auction occurrence on a given day.
type Slot struct {
	id         uuid.UUID
	masterID   string
	number     int
	externalID uuid.UUID
	timeSlot   TimeSlot
	template   Template
	status     Status
	date       Date
	createdAt  time.Time
	updatedAt  time.Time
}

type NewSlotParams struct {
	ID         uuid.UUID
	ExternalID uuid.UUID
	MasterID   string
	Number     int
	TimeSlot   TimeSlot
	Template   Template
	Status     Status
	Date       Date
	Now        time.Time
}

func NewSlot(p NewSlotParams) (*Slot, error) {
	masterID := strings.TrimSpace(p.MasterID)
	if masterID == "" {
		return nil, ErrMissingMasterID
	}
	if p.Number <= 0 {
		return nil, ErrInvalidNumber
	}
	if p.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	if p.Status != StatusUpcoming && p.Status != StatusLive {
		return nil, ErrInvalidStatus
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	externalID := p.ExternalID
	if externalID == uuid.Nil {
		externalID = uuid.New()
	}
	now := p.Now.UTC()

	return &Slot{
		id:         id,
		masterID:   masterID,
		number:     p.Number,
		externalID: externalID,
		timeSlot:   p.TimeSlot,
		template:   p.Template.WithDefaults(),
		status:     p.Status,
		date:       p.Date,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructSlot(
	id uuid.UUID,
	masterID string,
	number int,
	externalID uuid.UUID,
	timeSlot TimeSlot,
	template Template,
	status Status,
	date Date,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:         id,
		masterID:   masterID,
		number:     number,
		externalID: externalID,
		timeSlot:   timeSlot,
		template:   template,
		status:     status,
		date:       date,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Slot) transition(next Status, now time.Time) error {
	if !s.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	s.status = next
	s.updatedAt = now.UTC()
	return nil
}

func (s *Slot) Promote(now time.Time) error {
	if s.status != StatusUpcoming {
		return ErrInvalidTransition
	}
	return s.transition(StatusLive, now)
}

func (s *Slot) Complete(now time.Time) error {
	return s.transition(StatusCompleted, now)
}

func (s *Slot) IsLive() bool     { return s.status == StatusLive }
func (s *Slot) IsUpcoming() bool { return s.status == StatusUpcoming }

func (s *Slot) ID() uuid.UUID         { return s.id }
func (s *Slot) MasterID() string      { return s.masterID }
func (s *Slot) Number() int           { return s.number }
func (s *Slot) ExternalID() uuid.UUID { return s.externalID }
func (s *Slot) TimeSlot() TimeSlot    { return s.timeSlot }
func (s *Slot) Template() Template    { return s.template }
func (s *Slot) Status() Status        { return s.status }
func (s *Slot) Date() Date            { return s.date }
func (s *Slot) CreatedAt() time.Time  { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time  { return s.updatedAt }
