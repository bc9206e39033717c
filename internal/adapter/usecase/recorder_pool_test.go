package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clicktracker/internal/adapter/memory"
	"clicktracker/internal/core/port"
	"clicktracker/internal/core/port/mocks"
)

func TestVisitRecorder_DrainsOnClose(t *testing.T) {
	store := memory.NewStore()
	tracker := NewTrackerUseCase(store, store, store, nil, discardLogger(), TrackerOptions{})
	rec := NewVisitRecorder(tracker, 4, 256, discardLogger())

	for i := 0; i < 200; i++ {
		assert.True(t, rec.Submit(port.Visit{CampaignID: 1}))
	}
	rec.Close()

	got, err := store.GetCount(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(200), got)
	assert.Len(t, store.Clicks(), 200)
	assert.Zero(t, rec.Dropped())
}

func TestVisitRecorder_DropsWhenFull(t *testing.T) {
	tracker := mocks.NewMockTrackerUseCase(t)
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	tracker.EXPECT().RecordVisit(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, port.Visit) error {
			once.Do(func() { close(started) })
			<-release
			return nil
		})

	rec := NewVisitRecorder(tracker, 1, 1, discardLogger())
	assert.True(t, rec.Submit(port.Visit{CampaignID: 1}))
	<-started // the single worker is now busy
	assert.True(t, rec.Submit(port.Visit{CampaignID: 2}))
	assert.False(t, rec.Submit(port.Visit{CampaignID: 3}))
	assert.Equal(t, int64(1), rec.Dropped())

	close(release)
	rec.Close()
	assert.False(t, rec.Submit(port.Visit{CampaignID: 4}))
	assert.Equal(t, int64(2), rec.Dropped())
}

func TestVisitRecorder_FailuresDoNotStopWorkers(t *testing.T) {
	tracker := mocks.NewMockTrackerUseCase(t)
	tracker.EXPECT().RecordVisit(mock.Anything, port.Visit{CampaignID: 1}).
		Return(&port.RecordFailure{Step: port.StepLog, CampaignID: 1, Err: errors.New("down")}).Once()
	tracker.EXPECT().RecordVisit(mock.Anything, port.Visit{CampaignID: 2}).Return(nil).Once()

	rec := NewVisitRecorder(tracker, 1, 4, discardLogger())
	rec.Submit(port.Visit{CampaignID: 1})
	rec.Submit(port.Visit{CampaignID: 2})
	rec.Close()
	rec.Close()
}
