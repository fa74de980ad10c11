package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceService_CreateAndList(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "ada")
	g := env.goal(t, u.ID, "Learn Go")
	svc := NewResourceService(env.resources, env.goals)
	ctx := context.Background()

	_, err := svc.Create(ctx, u.ID, ResourceInput{Title: "Effective Go", Link: "https://go.dev/doc/effective_go", GoalID: &g.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, u.ID, ResourceInput{Title: "Go blog", Link: "https://go.dev/blog"})
	require.NoError(t, err)

	forGoal, err := svc.List(ctx, u.ID, &g.ID)
	require.NoError(t, err)
	require.Len(t, forGoal, 1)
	assert.Equal(t, "Effective Go", forGoal[0].Title)

	all, err := svc.List(ctx, u.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestResourceService_RejectsBadLinks(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "ada")
	svc := NewResourceService(env.resources, env.goals)

	for _, link := range []string{"", "go.dev", "ftp://go.dev/file", "javascript:alert(1)"} {
		_, err := svc.Create(context.Background(), u.ID, ResourceInput{Title: "x", Link: link})
		assert.ErrorIs(t, err, ErrInvalidInput, link)
	}
}

func TestResourceService_OwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	ada := env.user(t, "ada")
	bob := env.user(t, "bob")
	g := env.goal(t, ada.ID, "Learn Go")
	svc := NewResourceService(env.resources, env.goals)
	ctx := context.Background()

	res, err := svc.Create(ctx, ada.ID, ResourceInput{Title: "Go blog", Link: "https://go.dev/blog"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, bob.ID, res.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, bob.ID, res.ID), ErrNotFound)

	_, err = svc.Create(ctx, bob.ID, ResourceInput{Title: "x", Link: "https://example.com", GoalID: &g.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, ada.ID, res.ID))
}
