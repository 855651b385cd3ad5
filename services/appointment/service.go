package appointment

import (
	"context"
	"errors"
	"fmt"
	"slices"

	appointmentRepo "apptchat/database/repository/appointment"
	"apptchat/models"
)

// Book stores a new appointment unless the slot is already held.
func (s *DefaultAppointmentService) Book(ctx context.Context, name, date, time string) (Result, error) {
	existing, err := s.Repo.FindSlot(ctx, date, time)
	if err != nil {
		return Result{}, fmt.Errorf("book: %w", err)
	}
	if existing != nil {
		return Result{OK: false, Message: MsgSlotTaken}, nil
	}

	err = s.Repo.Insert(ctx, models.Appointment{Name: name, Date: date, Time: time})
	if errors.Is(err, appointmentRepo.ErrSlotTaken) {
		return Result{OK: false, Message: MsgSlotTaken}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("book: %w", err)
	}
	return Result{OK: true, Message: bookedMessage(name, date, time)}, nil
}

// Cancel removes the appointment matching name, date and time exactly.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, name, date, time string) (Result, error) {
	removed, err := s.Repo.DeleteExact(ctx, name, date, time)
	if err != nil {
		return Result{}, fmt.Errorf("cancel: %w", err)
	}
	if removed == 0 {
		return Result{OK: false, Message: MsgNothingToCancel}, nil
	}
	return Result{OK: true, Message: cancelledMessage(name, date, time)}, nil
}

func (s *DefaultAppointmentService) IsAvailable(ctx context.Context, date, time string) (bool, error) {
	existing, err := s.Repo.FindSlot(ctx, date, time)
	if err != nil {
		return false, fmt.Errorf("availability: %w", err)
	}
	return existing == nil, nil
}

// Reschedule cancels the old appointment and books the new slot. When the new
// slot turns out to be taken the old appointment stays cancelled.
func (s *DefaultAppointmentService) Reschedule(ctx context.Context, name, date, time, newDate, newTime string) (Result, error) {
	cancelled, err := s.Cancel(ctx, name, date, time)
	if err != nil {
		return Result{}, err
	}
	if !cancelled.OK {
		return Result{OK: false, Message: MsgCannotReschedule}, nil
	}

	free, err := s.IsAvailable(ctx, newDate, newTime)
	if err != nil {
		return Result{}, err
	}
	if !free {
		return Result{OK: false, Message: MsgNewSlotTaken}, nil
	}

	booked, err := s.Book(ctx, name, newDate, newTime)
	if err != nil {
		return Result{}, err
	}
	if !booked.OK {
		return Result{OK: false, Message: MsgNewSlotTaken}, nil
	}
	return Result{OK: true, Message: rescheduledMessage(booked.Message)}, nil
}

// Schedule lists every appointment by date, then time.
func (s *DefaultAppointmentService) Schedule(ctx context.Context) ([]models.Appointment, error) {
	appts, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	slices.SortStableFunc(appts, func(a, b models.Appointment) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return appts, nil
}
