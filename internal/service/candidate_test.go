package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/service"
)

func TestCandidateService_RegisterCandidate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.candidateService()
	ctx := context.Background()

	president := env.createPosition(t, "President")
	treasurer := env.createPosition(t, "Treasurer")
	user := env.createUser(t, "ada")
	picture := "https://cdn.example.com/ada.png"

	first, err := svc.RegisterCandidate(ctx, user.ID, president.ID, "Ada L.", &picture)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", first.Name)
	assert.Equal(t, "President", first.PositionName)
	assert.Equal(t, &picture, first.ProfilePicture)
	assert.Zero(t, first.VoteCount)

	_, err = svc.RegisterCandidate(ctx, user.ID, president.ID, "Ada again", nil)
	assert.ErrorIs(t, err, service.ErrCandidateExists)
	assert.ErrorIs(t, err, domain.ErrConflict)

	second, err := svc.RegisterCandidate(ctx, user.ID, treasurer.ID, "", nil)
	require.NoError(t, err)
	// No first or last name at signup, so the username is used.
	assert.Equal(t, "ada", second.Name)

	all, err := svc.ListCandidates(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byPosition, err := svc.ListCandidatesByPosition(ctx, treasurer.ID)
	require.NoError(t, err)
	require.Len(t, byPosition, 1)
	assert.Equal(t, second.ID, byPosition[0].ID)
	assert.Equal(t, "Treasurer", byPosition[0].PositionName)
}

func TestCandidateService_RegisterCandidate_UnknownPosition(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "ada")

	_, err := env.candidateService().RegisterCandidate(context.Background(), user.ID, 99, "Ada", nil)
	assert.ErrorIs(t, err, service.ErrPositionNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCandidateService_RegisterCandidate_DefaultsToFullName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	president := env.createPosition(t, "President")

	user, _, err := env.users.CreateAccount(ctx, domain.Account{
		User:               domain.User{Username: "grace", Email: "grace@example.com", Password: "hash", FirstName: "Grace", LastName: "Hopper"},
		RegistrationNumber: "2020/010",
		WebMail:            "grace@uni.edu",
	})
	require.NoError(t, err)

	candidate, err := env.candidateService().RegisterCandidate(ctx, user.ID, president.ID, "  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", candidate.Name)
}
