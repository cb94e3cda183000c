package dataset

import (
	"testing"
	"time"

	"github.com/poiesic/timeoff/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore()
	require.NoError(t, err)
	store.LoadSample()
	return store
}

func TestStatistics_SampleData(t *testing.T) {
	store := newSampleStore(t)

	stats := store.Statistics()

	assert.Equal(t, 5, stats.TotalEmployees)
	assert.InDelta(t, 17.7, stats.AveragePTOBalance, 0.0001)
	assert.InDelta(t, 88.5, stats.TotalPTODays, 0.0001)
	assert.Equal(t, 1, stats.PendingRequests)
	assert.Equal(t, 4, stats.ApprovedRequests)
	assert.Equal(t, 5, stats.TotalRequests)
	assert.Equal(t, core.RequestTypeVacation, stats.MostRequestedType)
}

func TestStatistics_EmptyStore(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	stats := store.Statistics()

	assert.Equal(t, 0, stats.TotalEmployees)
	assert.Equal(t, 0.0, stats.AveragePTOBalance)
	assert.Equal(t, 0, stats.TotalRequests)
	assert.Empty(t, stats.MostRequestedType)
}

func TestStatistics_ModeTieBreaksLexicographically(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	store.requests = []core.TimeOffRequest{
		{RequestID: "REQ001", EmployeeID: "EMP001", Type: core.RequestTypeVacation, Status: core.StatusApproved},
		{RequestID: "REQ002", EmployeeID: "EMP002", Type: core.RequestTypeSick, Status: core.StatusApproved},
	}

	stats := store.Statistics()

	// One request each; "Sick" sorts before "Vacation"
	assert.Equal(t, core.RequestTypeSick, stats.MostRequestedType)
}

func TestPolicySummary(t *testing.T) {
	store := newSampleStore(t)

	summary := store.PolicySummary()

	assert.Equal(t, 5, summary.TotalEmployees)
	assert.InDelta(t, 17.7, summary.AveragePTO, 0.0001)
	assert.Equal(t, 5, summary.TotalRequests)
}

func TestEmployeeSummary(t *testing.T) {
	store := newSampleStore(t)

	summary, err := store.EmployeeSummary("EMP001")
	require.NoError(t, err)

	assert.Equal(t, "John Smith", summary.Employee.Name)
	assert.Equal(t, "Engineering", summary.Employee.Department)
	require.NotNil(t, summary.Balance)
	assert.InDelta(t, 15.5, summary.Balance.PTOBalance, 0.0001)
	assert.Equal(t, 1, summary.TotalRequests)
	assert.Equal(t, 1, summary.ApprovedRequests)
	assert.Equal(t, 0, summary.PendingRequests)
	require.Len(t, summary.RecentRequests, 1)
	assert.Equal(t, "REQ001", summary.RecentRequests[0].RequestID)
}

func TestEmployeeSummary_NotFound(t *testing.T) {
	store := newSampleStore(t)

	_, err := store.EmployeeSummary("EMP999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployeeSummary_NoBalanceRow(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	store.employees = []core.Employee{
		{ID: "EMP010", Name: "Pat Lee", Department: "Legal"},
	}

	summary, err := store.EmployeeSummary("EMP010")
	require.NoError(t, err)
	assert.Nil(t, summary.Balance)
	assert.Equal(t, 0, summary.TotalRequests)
}

func TestEmployeeSummary_RecentRequestsCappedAtFive(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)
	store.employees = []core.Employee{{ID: "EMP001", Name: "John Smith"}}
	for i := 0; i < 7; i++ {
		store.requests = append(store.requests, core.TimeOffRequest{
			RequestID:  "REQ00" + string(rune('1'+i)),
			EmployeeID: "EMP001",
			Type:       core.RequestTypeVacation,
			Status:     core.StatusApproved,
		})
	}

	summary, err := store.EmployeeSummary("EMP001")
	require.NoError(t, err)

	assert.Equal(t, 7, summary.TotalRequests)
	require.Len(t, summary.RecentRequests, 5)
	// Table order, head of the table
	assert.Equal(t, "REQ001", summary.RecentRequests[0].RequestID)
	assert.Equal(t, "REQ005", summary.RecentRequests[4].RequestID)
}

func TestHolidays_TableOrder(t *testing.T) {
	store := newSampleStore(t)

	holidays := store.Holidays()
	require.Len(t, holidays, 7)
	assert.Equal(t, "New Year's Day", holidays[0].Name)
	assert.Equal(t, "Christmas Day", holidays[6].Name)
}

func TestRecentRequests(t *testing.T) {
	store := newSampleStore(t)

	t.Run("head of table", func(t *testing.T) {
		requests := store.RecentRequests(3)
		require.Len(t, requests, 3)
		assert.Equal(t, "REQ001", requests[0].RequestID)
		assert.Equal(t, "REQ002", requests[1].RequestID)
		assert.Equal(t, "REQ003", requests[2].RequestID)
	})

	t.Run("limit above table size", func(t *testing.T) {
		requests := store.RecentRequests(100)
		assert.Len(t, requests, 5)
	})

	t.Run("negative limit", func(t *testing.T) {
		requests := store.RecentRequests(-1)
		assert.Empty(t, requests)
	})
}

func TestWorkingDays(t *testing.T) {
	store := newSampleStore(t)

	t.Run("week with a holiday", func(t *testing.T) {
		// Mon Jan 1 2024 is a holiday; Tue-Fri remain
		days, err := store.WorkingDays(
			date(2024, time.January, 1),
			date(2024, time.January, 5),
			store.Holidays(),
		)
		require.NoError(t, err)
		assert.Equal(t, 3, days)
	})

	t.Run("weekend only", func(t *testing.T) {
		days, err := store.WorkingDays(
			date(2024, time.January, 6), // Saturday
			date(2024, time.January, 7), // Sunday
			nil,
		)
		require.NoError(t, err)
		assert.Equal(t, 0, days)
	})

	t.Run("single working day", func(t *testing.T) {
		days, err := store.WorkingDays(
			date(2024, time.January, 2),
			date(2024, time.January, 2),
			nil,
		)
		require.NoError(t, err)
		assert.Equal(t, 1, days)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := store.WorkingDays(
			date(2024, time.January, 5),
			date(2024, time.January, 1),
			nil,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestAccessorsReturnCopies(t *testing.T) {
	store := newSampleStore(t)

	holidays := store.Holidays()
	holidays[0].Name = "mutated"

	fresh := store.Holidays()
	assert.Equal(t, "New Year's Day", fresh[0].Name)
}
