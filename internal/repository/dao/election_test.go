package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/elections-api/internal/repository/dao"
)

func TestElectionDAO_UpdateStatus(t *testing.T) {
	gormDB := newTestDB(t)
	f := seed(t, gormDB, "pending")
	elections := dao.NewElectionDAO(gormDB)
	ctx := context.Background()

	updated, err := elections.UpdateStatus(ctx, f.election.ID, "pending", "active")
	require.NoError(t, err)
	assert.True(t, updated)

	// Stale expectation: the election is no longer pending.
	updated, err = elections.UpdateStatus(ctx, f.election.ID, "pending", "completed")
	require.NoError(t, err)
	assert.False(t, updated)

	found, err := elections.FindByID(ctx, f.election.ID)
	require.NoError(t, err)
	assert.Equal(t, "active", found.Status)

	_, err = elections.FindByID(ctx, f.election.ID+1)
	assert.ErrorIs(t, err, dao.ErrElectionNotFound)
}

func TestElectionDAO_DefaultStatus(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()

	created, err := dao.NewElectionDAO(gormDB).Insert(ctx, dao.Election{Name: "By-election"})
	require.NoError(t, err)

	found, err := dao.NewElectionDAO(gormDB).FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", found.Status)

	list, err := dao.NewElectionDAO(gormDB).List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
