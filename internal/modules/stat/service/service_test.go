package service_test

import (
	"context"
	"errors"
	"testing"

	"anoa.com/usherhire/internal/entity"
	"anoa.com/usherhire/internal/mocks"
	"anoa.com/usherhire/internal/modules/stat/service"
	"anoa.com/usherhire/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetDiagnostics(t *testing.T) {
	events := mocks.NewEventRepository(t)
	bookings := mocks.NewBookingRepository(t)
	profiles := mocks.NewProfileRepository(t)
	svc := service.NewStatService(events, bookings, profiles)
	ctx := context.Background()

	events.On("CountByStatus", ctx).Return(map[entity.EventStatus]int64{entity.EventPublished: 3, entity.EventDraft: 1}, nil)
	events.On("CountOpen", ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil)
	bookings.On("Count", ctx).Return(int64(7), nil)
	profiles.On("CountByType", ctx).Return(map[entity.UserType]int64{entity.UserTypeUsher: 5, entity.UserTypePlanner: 2}, nil)

	res, err := svc.GetDiagnostics(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), res.EventsByStatus[entity.EventPublished])
	assert.Equal(t, int64(2), res.OpenEvents)
	assert.Equal(t, int64(7), res.TotalBookings)
	assert.Equal(t, int64(5), res.ProfilesByType[entity.UserTypeUsher])
	assert.False(t, res.GeneratedAt.IsZero())
}

func TestGetDiagnostics_StorageFailure(t *testing.T) {
	events := mocks.NewEventRepository(t)
	svc := service.NewStatService(events, mocks.NewBookingRepository(t), mocks.NewProfileRepository(t))
	ctx := context.Background()

	events.On("CountByStatus", ctx).Return(nil, errors.New("connection reset"))

	_, err := svc.GetDiagnostics(ctx)

	assert.ErrorIs(t, err, apperror.ErrUpstream)
}
