//go:generate go run go.uber.org/mock/mockgen -source=interface.go -destination=../../../mocks/mock_appointment_repository.go -package=mocks
package appointmentRepo

import (
	"context"
	"errors"

	"apptchat/models"
)

// ErrSlotTaken is returned by Insert when the store itself refuses a second
// appointment for the same (date, time).
var ErrSlotTaken = errors.New("slot already taken")

// AppointmentRepository is the store adapter behind the appointment service.
type AppointmentRepository interface {
	// FindSlot returns the appointment at (date, time), or nil when the slot is free.
	FindSlot(ctx context.Context, date, time string) (*models.Appointment, error)
	// Insert stores the appointment without checking the slot first.
	Insert(ctx context.Context, appt models.Appointment) error
	// DeleteExact removes the appointment matching all three fields and
	// reports how many records went away (0 or 1).
	DeleteExact(ctx context.Context, name, date, time string) (int64, error)
	// ListAll returns every appointment ordered by date, then time.
	ListAll(ctx context.Context) ([]models.Appointment, error)
}
