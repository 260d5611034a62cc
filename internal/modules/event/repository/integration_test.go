//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/modules/event/repository"
	"anoa.com/usherhire/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_CompletePastAndListOpen(t *testing.T) {
	db := testutil.OpenPostgres(t)
	planner := testutil.CreateAccount(t, db, "planner@example.com", entity.UserTypePlanner)
	repo := repository.NewEventRepository(db)
	ctx := context.Background()
	today := entity.DateOf(time.Now())

	past := testutil.CreateEvent(t, db, planner.ID, entity.EventPublished, today.AddDate(0, 0, -3))
	pastDraft := testutil.CreateEvent(t, db, planner.ID, entity.EventDraft, today.AddDate(0, 0, -3))
	later := testutil.CreateEvent(t, db, planner.ID, entity.EventPublished, today.AddDate(0, 0, 5))
	soon := testutil.CreateEvent(t, db, planner.ID, entity.EventPublished, today)

	n, err := repo.CompletePast(ctx, today)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.FindByID(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EventCompleted, got.Status)

	got, err = repo.FindByID(ctx, pastDraft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EventDraft, got.Status)

	open, err := repo.ListOpen(ctx, today, 10)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, soon.ID, open[0].ID)
	assert.Equal(t, later.ID, open[1].ID)

	count, err := repo.CountOpen(ctx, today)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
