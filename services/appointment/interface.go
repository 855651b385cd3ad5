//go:generate go run go.uber.org/mock/mockgen -source=interface.go -destination=../../mocks/mock_appointment_service.go -package=mocks
package appointment

import (
	"context"

	appointmentRepo "apptchat/database/repository/appointment"
	"apptchat/models"
)

// Result is the outcome of a booking-side mutation. Business conflicts are
// reported through OK and Message, never as errors.
type Result struct {
	OK      bool
	Message string
}

// AppointmentService holds the bookkeeping rules for slots.
type AppointmentService interface {
	Book(ctx context.Context, name, date, time string) (Result, error)
	Cancel(ctx context.Context, name, date, time string) (Result, error)
	IsAvailable(ctx context.Context, date, time string) (bool, error)
	Reschedule(ctx context.Context, name, date, time, newDate, newTime string) (Result, error)
	Schedule(ctx context.Context) ([]models.Appointment, error)
}

// DefaultAppointmentService implements AppointmentService on top of a store adapter.
type DefaultAppointmentService struct {
	Repo appointmentRepo.AppointmentRepository
}

func NewAppointmentService(repo appointmentRepo.AppointmentRepository) *DefaultAppointmentService {
	return &DefaultAppointmentService{Repo: repo}
}
