package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/service"
)

func TestElectionService_CreateElection(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewElectionService(env.elections)
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	created, err := svc.CreateElection(ctx, domain.Election{Name: "SRC", StartDate: start, EndDate: start.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, domain.ElectionPending, created.Status)

	_, err = svc.CreateElection(ctx, domain.Election{Name: "SRC", StartDate: start, EndDate: start})
	assert.ErrorIs(t, err, service.ErrInvalidElectionDates)

	_, err = svc.CreateElection(ctx, domain.Election{Name: "SRC", StartDate: start, EndDate: start.Add(time.Hour), Status: "closed"})
	assert.ErrorIs(t, err, service.ErrInvalidElectionStatus)

	got, err := svc.GetElection(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "SRC", got.Name)

	_, err = svc.GetElection(ctx, created.ID+1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := svc.ListElections(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestElectionService_UpdateElectionStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.ElectionStatus
		to      domain.ElectionStatus
		wantErr error
	}{
		{name: "pending to active", from: domain.ElectionPending, to: domain.ElectionActive},
		{name: "active to completed", from: domain.ElectionActive, to: domain.ElectionCompleted},
		{name: "pending to completed", from: domain.ElectionPending, to: domain.ElectionCompleted},
		{name: "active to pending", from: domain.ElectionActive, to: domain.ElectionPending, wantErr: service.ErrStatusTransition},
		{name: "completed to active", from: domain.ElectionCompleted, to: domain.ElectionActive, wantErr: service.ErrStatusTransition},
		{name: "active to active", from: domain.ElectionActive, to: domain.ElectionActive, wantErr: service.ErrStatusTransition},
		{name: "unknown status", from: domain.ElectionPending, to: "closed", wantErr: service.ErrInvalidElectionStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			svc := service.NewElectionService(env.elections)
			election := env.createElection(t, tt.from)

			updated, err := svc.UpdateElectionStatus(context.Background(), election.ID, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)

			stored, err := env.elections.FindByID(context.Background(), election.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.to, stored.Status)
		})
	}
}

func TestElectionService_UpdateElectionStatus_UnknownElection(t *testing.T) {
	env := newTestEnv(t)

	_, err := service.NewElectionService(env.elections).UpdateElectionStatus(context.Background(), 7, domain.ElectionActive)
	assert.ErrorIs(t, err, service.ErrElectionNotFound)
}

func TestPositionService(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewPositionService(env.positions)
	ctx := context.Background()

	_, err := svc.CreatePosition(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	for _, name := range []string{"President", " Treasurer "} {
		_, err := svc.CreatePosition(ctx, name)
		require.NoError(t, err)
	}

	positions, err := svc.ListPositions(ctx)
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, "President", positions[0].Name)
	assert.Equal(t, "Treasurer", positions[1].Name)
}

func TestUserService_GetUser(t *testing.T) {
	env := newTestEnv(t)
	svc := service.NewUserService(env.users)
	user := env.createUser(t, "ada")

	got, err := svc.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)

	_, err = svc.GetUser(context.Background(), user.ID+1)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
