package appointmentRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"apptchat/models"
)

func TestMemoryAppointmentRepo(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewMemoryAppointmentRepo()

	appts, err := repo.ListAll(ctx)
	req.NoError(err)
	req.Empty(appts)

	req.NoError(repo.Insert(ctx, models.Appointment{Name: "Carol", Date: "2024-06-01", Time: "09:00"}))
	req.NoError(repo.Insert(ctx, models.Appointment{Name: "Alice", Date: "2024-05-01", Time: "14:00"}))
	req.NoError(repo.Insert(ctx, models.Appointment{Name: "Bob", Date: "2024-05-01", Time: "08:30"}))
	req.ErrorIs(repo.Insert(ctx, models.Appointment{Name: "Dan", Date: "2024-05-01", Time: "08:30"}), ErrSlotTaken)

	found, err := repo.FindSlot(ctx, "2024-05-01", "14:00")
	req.NoError(err)
	req.Equal("Alice", found.Name)

	missing, err := repo.FindSlot(ctx, "2024-05-01", "15:00")
	req.NoError(err)
	req.Nil(missing)

	appts, err = repo.ListAll(ctx)
	req.NoError(err)
	req.Equal([]models.Appointment{
		{Name: "Bob", Date: "2024-05-01", Time: "08:30"},
		{Name: "Alice", Date: "2024-05-01", Time: "14:00"},
		{Name: "Carol", Date: "2024-06-01", Time: "09:00"},
	}, appts)

	// the name has to match as well
	n, err := repo.DeleteExact(ctx, "Bob", "2024-05-01", "14:00")
	req.NoError(err)
	req.Zero(n)

	n, err = repo.DeleteExact(ctx, "Alice", "2024-05-01", "14:00")
	req.NoError(err)
	req.EqualValues(1, n)

	free, err := repo.FindSlot(ctx, "2024-05-01", "14:00")
	req.NoError(err)
	req.Nil(free)
}
