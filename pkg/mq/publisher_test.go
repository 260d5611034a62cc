package mq

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingPublisher struct {
	keys []string
	err  error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.keys = append(p.keys, key)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestPublishBestEffort_SwallowsErrors(t *testing.T) {
	p := &recordingPublisher{err: errors.New("broker down")}

	assert.NotPanics(t, func() {
		PublishBestEffort(context.Background(), p, KeyBookingApplied, map[string]string{"id": "1"})
	})
	assert.Equal(t, []string{KeyBookingApplied}, p.keys)
}

func TestPublishBestEffort_NilPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		PublishBestEffort(context.Background(), nil, KeyReviewSubmitted, nil)
	})
}

func TestBookingStatusKey(t *testing.T) {
	assert.Equal(t, "booking.accepted", BookingStatusKey("accepted"))
}

func TestNopPublisher(t *testing.T) {
	p := NewNopPublisher()
	assert.NoError(t, p.PublishJSON(context.Background(), "x", struct{}{}))
	assert.NoError(t, p.Close())
}
