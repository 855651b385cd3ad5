package appointmentRepo

import (
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"

	"apptchat/models"
)

type slotKey struct {
	date string
	time string
}

// memoryAppointmentRepo keeps appointments in process memory. It backs local
// runs with STORE_DRIVER=memory and the service tests.
type memoryAppointmentRepo struct {
	mu    sync.RWMutex
	slots map[slotKey]models.Appointment
}

// NewMemoryAppointmentRepo constructs an empty in-memory AppointmentRepository.
func NewMemoryAppointmentRepo() AppointmentRepository {
	return &memoryAppointmentRepo{slots: make(map[slotKey]models.Appointment)}
}

func (r *memoryAppointmentRepo) FindSlot(_ context.Context, date, time string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.slots[slotKey{date, time}]
	if !ok {
		return nil, nil
	}
	return &appt, nil
}

func (r *memoryAppointmentRepo) Insert(_ context.Context, appt models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey{appt.Date, appt.Time}
	if _, taken := r.slots[key]; taken {
		return ErrSlotTaken
	}
	r.slots[key] = appt
	return nil
}

func (r *memoryAppointmentRepo) DeleteExact(_ context.Context, name, date, time string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey{date, time}
	appt, ok := r.slots[key]
	if !ok || appt.Name != name {
		return 0, nil
	}
	delete(r.slots, key)
	return 1, nil
}

func (r *memoryAppointmentRepo) ListAll(_ context.Context) ([]models.Appointment, error) {
	r.mu.RLock()
	appts := lo.Values(r.slots)
	r.mu.RUnlock()

	slices.SortFunc(appts, compareAppointments)
	return appts, nil
}

func compareAppointments(a, b models.Appointment) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
