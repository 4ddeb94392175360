package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"driver-dispatch-service/internal/domain"
)

func ptr(v int64) *int64 { return &v }

func TestTaskGroup_ExcludedDriverIDs_DedupAcrossTasks(t *testing.T) {
	t.Parallel()

	g := domain.TaskGroup{
		UnitNumber: 1,
		Tasks: []domain.Task{
			{DeclinedDriverIDs: []int64{7, 9}},
			{DeclinedDriverIDs: []int64{9, 12}},
			{DeclinedDriverIDs: nil},
		},
	}

	require.Equal(t, []int64{7, 9, 12}, g.ExcludedDriverIDs())
}

func TestTaskGroup_EmptyGroupAccessors(t *testing.T) {
	t.Parallel()

	var g domain.TaskGroup

	require.Nil(t, g.DriverID())
	require.False(t, g.Assigned())
	require.Equal(t, domain.NotifyNone, g.Status())
	require.Nil(t, g.LastNotifiedDriverID())
	require.Nil(t, g.NotificationSentAt())
	require.Empty(t, g.ExcludedDriverIDs())
	require.Empty(t, g.ExternalIDs())
}

func TestTaskGroup_State(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status domain.NotificationStatus
		want   domain.UnitState
	}{
		{domain.NotifyNone, domain.StateUnassigned},
		{domain.NotifySent, domain.StateOffered},
		{domain.NotifyAccepted, domain.StateAccepted},
		{domain.NotifyDeclined, domain.StateDeclined},
		{domain.NotifyNoDrivers, domain.StateExhausted},
		{domain.NotifyPendingPartner, domain.StatePendingPartner},
		{domain.NotifyPendingReconfirm, domain.StatePendingReconfirm},
	}

	for _, tc := range cases {
		g := domain.TaskGroup{Tasks: []domain.Task{{Status: tc.status}}}
		require.Equal(t, tc.want, g.State(), "status %s", tc.status)
	}
}

func TestTaskGroup_ExternalIDsKeepTaskOrder(t *testing.T) {
	t.Parallel()

	g := domain.TaskGroup{Tasks: []domain.Task{
		{ExternalID: "pickup"},
		{ExternalID: "customer"},
		{ExternalID: "return"},
	}}
	require.Equal(t, []string{"pickup", "customer", "return"}, g.ExternalIDs())
}

func TestDriver_ConflictsWith(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	d := domain.Driver{
		ID: 1,
		Commitments: []domain.Commitment{
			{AppointmentID: 77, ScheduledAt: at.Add(3 * time.Hour)},
		},
	}

	require.True(t, d.ConflictsWith(41, at, 4*time.Hour))
	require.False(t, d.ConflictsWith(41, at, 2*time.Hour))
	// the appointment being assigned never conflicts with itself
	require.False(t, d.ConflictsWith(77, at, 4*time.Hour))
}

func TestTaskGroup_DriverBinding(t *testing.T) {
	t.Parallel()

	g := domain.TaskGroup{Tasks: []domain.Task{
		{DriverID: ptr(9)},
		{DriverID: ptr(9)},
	}}

	require.True(t, g.Assigned())
	require.Equal(t, int64(9), *g.DriverID())
}
