package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/reconcile"
)

func TestBuild(t *testing.T) {
	in := time.Date(2026, 10, 12, 7, 55, 0, 0, time.UTC)
	snap := Build(
		[]models.Scholar{{ScholarID: "S-1", Name: "Ana"}, {ScholarID: "S-2", Name: "Ben"}},
		[]models.Duty{
			{ScholarID: "S-1", Day: "Monday", Time: "8:00 AM - 5:00 PM", Room: "201", Status: "Active"},
			{ScholarID: "S-2", Day: "Someday", Time: "8:00 AM - 5:00 PM", Room: "N/A", Status: "Active"},
		},
		[]models.Attendance{{StudentID: "S-1", CheckInTime: in, Location: "201"}},
		zap.NewNop(),
	)

	require.Len(t, snap.Scholars, 2)
	assert.Equal(t, "Ben", snap.Scholars[1].Name)
	require.Len(t, snap.Duties, 1)
	assert.Equal(t, time.Monday, snap.Duties[0].Weekday)
	assert.Equal(t, reconcile.DutyActive, snap.Duties[0].Status)
	require.Len(t, snap.Events, 1)
	assert.Nil(t, snap.Events[0].CheckOut)
}

func TestBuildEmpty(t *testing.T) {
	snap := Build(nil, nil, nil, zap.NewNop())
	assert.NotNil(t, snap.Scholars)
	assert.Empty(t, snap.Duties)
	assert.Empty(t, snap.Events)
}
