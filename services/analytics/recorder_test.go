package analytics

import (
	"errors"
	"testing"
	"time"

	"angoni/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	inserted []models.UsageEvent
	err      error
}

func (f *fakeEventRepo) Insert(event *models.UsageEvent) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, *event)
	return nil
}

func (f *fakeEventRepo) ListSince(eventType string, since time.Time) ([]models.UsageEvent, error) {
	return nil, nil
}

func TestRecordBuildsEventFromMeta(t *testing.T) {
	repo := &fakeEventRepo{}
	recorder := &DefaultRecorder{Repo: repo}

	recorder.Record("packages_viewed", map[string]interface{}{"count": 3}, models.RequestMeta{
		PageURL:   "https://angoniadventure.com/packages",
		UserIP:    "203.0.113.9",
		UserAgent: "Mozilla/5.0",
		SessionID: "sess-1",
	})

	require.Len(t, repo.inserted, 1)
	event := repo.inserted[0]
	assert.Equal(t, "packages_viewed", event.EventType)
	assert.Equal(t, 3, event.EventData["count"])
	assert.Equal(t, "https://angoniadventure.com/packages", event.PageURL)
	assert.Equal(t, "203.0.113.9", event.UserIP)
	assert.Equal(t, "Mozilla/5.0", event.UserAgent)
	assert.Equal(t, "sess-1", event.SessionID)
}

func TestRecordMissingMetaDefaultsToEmpty(t *testing.T) {
	repo := &fakeEventRepo{}
	recorder := &DefaultRecorder{Repo: repo}

	recorder.Record("shuttles_viewed", nil, models.RequestMeta{})

	require.Len(t, repo.inserted, 1)
	assert.Empty(t, repo.inserted[0].PageURL)
	assert.Empty(t, repo.inserted[0].SessionID)
}

func TestRecordSwallowsPersistenceFailure(t *testing.T) {
	recorder := &DefaultRecorder{Repo: &fakeEventRepo{err: errors.New("store down")}}

	assert.NotPanics(t, func() {
		recorder.Record("booking_created", nil, models.RequestMeta{})
	})
}
