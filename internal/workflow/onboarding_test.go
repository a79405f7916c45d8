package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStampCompletion(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	t.Run("entering completed sets the timestamp", func(t *testing.T) {
		got := StampCompletion(OnboardingCompleted, nil, now)
		if assert.NotNil(t, got) {
			assert.Equal(t, now, *got)
		}
	})

	t.Run("existing timestamp is kept", func(t *testing.T) {
		got := StampCompletion(OnboardingCompleted, &earlier, now)
		assert.Equal(t, &earlier, got)
	})

	t.Run("reverting to in progress clears it", func(t *testing.T) {
		assert.Nil(t, StampCompletion(OnboardingInProgress, &earlier, now))
	})

	t.Run("other statuses never carry it", func(t *testing.T) {
		for _, st := range []OnboardingStatus{OnboardingPending, OnboardingCancelled} {
			assert.Nil(t, StampCompletion(st, &earlier, now), st)
		}
	})
}
