package appointment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	appointmentRepo "apptchat/database/repository/appointment"
	"apptchat/mocks"
	"apptchat/models"
	"apptchat/services/appointment"
)

func newMemoryService() *appointment.DefaultAppointmentService {
	return appointment.NewAppointmentService(appointmentRepo.NewMemoryAppointmentRepo())
}

func TestAppointmentService_BookScenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newMemoryService()

	res, err := svc.Book(ctx, "Alice", "2024-05-01", "10:00")
	req.NoError(err)
	req.True(res.OK)
	req.Equal("Appointment booked for Alice on 2024-05-01 at 10:00.", res.Message)

	res, err = svc.Book(ctx, "Bob", "2024-05-01", "10:00")
	req.NoError(err)
	req.False(res.OK)
	req.Equal(appointment.MsgSlotTaken, res.Message)

	res, err = svc.Cancel(ctx, "Alice", "2024-05-01", "10:00")
	req.NoError(err)
	req.True(res.OK)
	req.Equal("Appointment cancelled for Alice on 2024-05-01 at 10:00.", res.Message)

	res, err = svc.Book(ctx, "Bob", "2024-05-01", "10:00")
	req.NoError(err)
	req.True(res.OK)

	schedule, err := svc.Schedule(ctx)
	req.NoError(err)
	req.Equal([]models.Appointment{{Name: "Bob", Date: "2024-05-01", Time: "10:00"}}, schedule)
}

func TestAppointmentService_BookedSlotIsUnavailable(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newMemoryService()

	free, err := svc.IsAvailable(ctx, "2024-05-01", "10:00")
	req.NoError(err)
	req.True(free)

	_, err = svc.Book(ctx, "Alice", "2024-05-01", "10:00")
	req.NoError(err)

	free, err = svc.IsAvailable(ctx, "2024-05-01", "10:00")
	req.NoError(err)
	req.False(free)
}

func TestAppointmentService_CancelMissingLeavesStoreUntouched(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newMemoryService()
	_, err := svc.Book(ctx, "Alice", "2024-05-01", "10:00")
	req.NoError(err)

	tests := []struct {
		description string
		name, date  string
		time        string
	}{
		{"Should fail for an unknown name", "Bob", "2024-05-01", "10:00"},
		{"Should fail for another date", "Alice", "2024-05-02", "10:00"},
		{"Should fail for another time", "Alice", "2024-05-01", "11:00"},
		{"Should fail for blank fields", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			res, err := svc.Cancel(ctx, tt.name, tt.date, tt.time)
			req.NoError(err)
			req.False(res.OK)
			req.Equal(appointment.MsgNothingToCancel, res.Message)

			schedule, err := svc.Schedule(ctx)
			req.NoError(err)
			req.Equal([]models.Appointment{{Name: "Alice", Date: "2024-05-01", Time: "10:00"}}, schedule)
		})
	}
}

func TestAppointmentService_Reschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Should move the appointment to a free slot", func(t *testing.T) {
		req := require.New(t)
		svc := newMemoryService()
		_, err := svc.Book(ctx, "Alice", "2024-05-01", "10:00")
		req.NoError(err)

		res, err := svc.Reschedule(ctx, "Alice", "2024-05-01", "10:00", "2024-05-03", "15:00")
		req.NoError(err)
		req.True(res.OK)
		req.Equal("Old appointment cancelled. Appointment booked for Alice on 2024-05-03 at 15:00.", res.Message)

		oldFree, err := svc.IsAvailable(ctx, "2024-05-01", "10:00")
		req.NoError(err)
		req.True(oldFree)

		schedule, err := svc.Schedule(ctx)
		req.NoError(err)
		req.Equal([]models.Appointment{{Name: "Alice", Date: "2024-05-03", Time: "15:00"}}, schedule)
	})

	t.Run("Should abort when the old appointment does not exist", func(t *testing.T) {
		req := require.New(t)
		svc := newMemoryService()

		res, err := svc.Reschedule(ctx, "Alice", "2024-05-01", "10:00", "2024-05-03", "15:00")
		req.NoError(err)
		req.False(res.OK)
		req.Equal(appointment.MsgCannotReschedule, res.Message)

		schedule, err := svc.Schedule(ctx)
		req.NoError(err)
		req.Empty(schedule)
	})

	t.Run("Should lose the old appointment when the new slot is taken", func(t *testing.T) {
		req := require.New(t)
		svc := newMemoryService()
		_, err := svc.Book(ctx, "Alice", "2024-05-01", "10:00")
		req.NoError(err)
		_, err = svc.Book(ctx, "Bob", "2024-05-03", "15:00")
		req.NoError(err)

		res, err := svc.Reschedule(ctx, "Alice", "2024-05-01", "10:00", "2024-05-03", "15:00")
		req.NoError(err)
		req.False(res.OK)
		req.Equal(appointment.MsgNewSlotTaken, res.Message)

		schedule, err := svc.Schedule(ctx)
		req.NoError(err)
		req.Equal([]models.Appointment{{Name: "Bob", Date: "2024-05-03", Time: "15:00"}}, schedule)
	})
}

func TestAppointmentService_ScheduleIsSorted(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAppointmentRepository(ctrl)
	svc := appointment.NewAppointmentService(repo)

	repo.EXPECT().ListAll(ctx).Return([]models.Appointment{
		{Name: "Carol", Date: "2024-07-01", Time: "09:00"},
		{Name: "Alice", Date: "2024-05-01", Time: "14:00"},
		{Name: "Bob", Date: "2024-05-01", Time: "08:30"},
	}, nil)

	schedule, err := svc.Schedule(ctx)
	req.NoError(err)
	req.Equal([]models.Appointment{
		{Name: "Bob", Date: "2024-05-01", Time: "08:30"},
		{Name: "Alice", Date: "2024-05-01", Time: "14:00"},
		{Name: "Carol", Date: "2024-07-01", Time: "09:00"},
	}, schedule)
}

func TestAppointmentService_LostRaceReportsSlotTaken(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAppointmentRepository(ctrl)
	svc := appointment.NewAppointmentService(repo)

	repo.EXPECT().FindSlot(ctx, "2024-05-01", "10:00").Return(nil, nil)
	repo.EXPECT().Insert(ctx, models.Appointment{Name: "Bob", Date: "2024-05-01", Time: "10:00"}).
		Return(appointmentRepo.ErrSlotTaken)

	res, err := svc.Book(ctx, "Bob", "2024-05-01", "10:00")
	req.NoError(err)
	req.False(res.OK)
	req.Equal(appointment.MsgSlotTaken, res.Message)
}

func TestAppointmentService_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("server selection timeout")

	tests := []struct {
		description string
		setup       func(repo *mocks.MockAppointmentRepository)
		call        func(svc appointment.AppointmentService) error
	}{
		{
			"Should propagate find errors from Book",
			func(repo *mocks.MockAppointmentRepository) {
				repo.EXPECT().FindSlot(gomock.Any(), "2024-05-01", "10:00").Return(nil, storeErr)
			},
			func(svc appointment.AppointmentService) error {
				_, err := svc.Book(ctx, "Alice", "2024-05-01", "10:00")
				return err
			},
		},
		{
			"Should propagate insert errors from Book",
			func(repo *mocks.MockAppointmentRepository) {
				repo.EXPECT().FindSlot(gomock.Any(), "2024-05-01", "10:00").Return(nil, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(storeErr)
			},
			func(svc appointment.AppointmentService) error {
				_, err := svc.Book(ctx, "Alice", "2024-05-01", "10:00")
				return err
			},
		},
		{
			"Should propagate delete errors from Cancel",
			func(repo *mocks.MockAppointmentRepository) {
				repo.EXPECT().DeleteExact(gomock.Any(), "Alice", "2024-05-01", "10:00").Return(int64(0), storeErr)
			},
			func(svc appointment.AppointmentService) error {
				_, err := svc.Cancel(ctx, "Alice", "2024-05-01", "10:00")
				return err
			},
		},
		{
			"Should propagate availability errors from Reschedule",
			func(repo *mocks.MockAppointmentRepository) {
				repo.EXPECT().DeleteExact(gomock.Any(), "Alice", "2024-05-01", "10:00").Return(int64(1), nil)
				repo.EXPECT().FindSlot(gomock.Any(), "2024-05-02", "10:00").Return(nil, storeErr)
			},
			func(svc appointment.AppointmentService) error {
				_, err := svc.Reschedule(ctx, "Alice", "2024-05-01", "10:00", "2024-05-02", "10:00")
				return err
			},
		},
		{
			"Should propagate list errors from Schedule",
			func(repo *mocks.MockAppointmentRepository) {
				repo.EXPECT().ListAll(gomock.Any()).Return(nil, storeErr)
			},
			func(svc appointment.AppointmentService) error {
				_, err := svc.Schedule(ctx)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAppointmentRepository(ctrl)
			tt.setup(repo)

			err := tt.call(appointment.NewAppointmentService(repo))
			req.ErrorIs(err, storeErr)
		})
	}
}
