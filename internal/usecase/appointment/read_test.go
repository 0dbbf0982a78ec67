package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/flowmint-scheduler/internal/domain/appointment"
)

func TestGet(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(1, 7, 10, at(10, 0), domain.StatusPending)
	uc := NewGetAppointment(repo)

	ap, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(7), ap.EmployeeID)

	_, err = uc.Execute(context.Background(), 2)
	assert.Equal(t, "appointment_not_found", domain.CodeOf(err))

	_, err = uc.Execute(context.Background(), 0)
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
}

func TestList_ValidatesFilter(t *testing.T) {
	uc := NewListAppointments(newFakeRepo())
	from, to := at(12, 0), at(9, 0)

	_, err := uc.Execute(context.Background(), domain.ListFilter{From: &from, To: &to})
	assert.Equal(t, "invalid_range", domain.CodeOf(err))

	_, err = uc.Execute(context.Background(), domain.ListFilter{Status: "borrado"})
	assert.Equal(t, "invalid_status", domain.CodeOf(err))
}

func TestList_ByEmployeeAndStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(1, 7, 10, at(10, 0), domain.StatusPending)
	repo.seed(2, 7, 10, at(9, 0), domain.StatusCancelled)
	repo.seed(3, 8, 10, at(9, 0), domain.StatusPending)

	apps, err := NewListAppointments(repo).Execute(context.Background(), domain.ListFilter{
		EmployeeID: 7,
		Status:     domain.StatusPending,
	})

	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, uint(1), apps[0].ID)
}

func TestList_ForClient(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(1, 7, 10, at(10, 0), domain.StatusPending)
	uc := NewListAppointments(repo)

	apps, err := uc.ExecuteForClient(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = uc.ExecuteForClient(context.Background(), 99)
	assert.Equal(t, "client_not_found", domain.CodeOf(err))

	_, err = uc.ExecuteForClient(context.Background(), 0)
	assert.Equal(t, "invalid_client_id", domain.CodeOf(err))
}

func newAvailability(repo domain.Repository, now time.Time) *GetAvailability {
	uc := NewGetAvailability(
		repo,
		domain.BusinessHours{Open: "09:00", Close: "11:00"},
		30*time.Minute,
		"UTC",
	)
	uc.now = func() time.Time { return now }
	return uc
}

func TestAvailability_ListsFreeSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(1, 7, 10, at(10, 0), domain.StatusPending)
	repo.seed(2, 7, 10, at(9, 0), domain.StatusCancelled)
	uc := newAvailability(repo, at(0, 0).AddDate(0, 0, -1))

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		EmployeeID: 7,
		ServiceID:  10,
		Date:       at(0, 0),
	})
	require.NoError(t, err)

	var starts []string
	for _, s := range slots {
		starts = append(starts, s.Start.Format("15:04"))
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:30"}, starts)
}

func TestAvailability_PastSlotsAreHidden(t *testing.T) {
	uc := newAvailability(newFakeRepo(), at(10, 10))

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		EmployeeID: 7,
		ServiceID:  10,
		Date:       at(0, 0),
	})
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.True(t, slots[0].Start.Equal(at(10, 30)))
}

func TestAvailability_Errors(t *testing.T) {
	uc := newAvailability(newFakeRepo(), at(0, 0))
	ctx := context.Background()

	_, err := uc.Execute(ctx, AvailabilityInput{ServiceID: 10, Date: at(0, 0)})
	assert.Equal(t, "invalid_employee_id", domain.CodeOf(err))

	_, err = uc.Execute(ctx, AvailabilityInput{EmployeeID: 99, ServiceID: 10, Date: at(0, 0)})
	assert.Equal(t, "employee_not_found", domain.CodeOf(err))

	_, err = uc.Execute(ctx, AvailabilityInput{EmployeeID: 7, ServiceID: 12, Date: at(0, 0)})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = uc.Execute(ctx, AvailabilityInput{EmployeeID: 7, ServiceID: 10})
	assert.Equal(t, "invalid_date", domain.CodeOf(err))
}
