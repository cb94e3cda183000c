package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/timeoff/core"
)

const employeeRecentRequestLimit = 5

// Store holds the four tables the advisor queries for structured data.
// Loaded once at startup, read-only afterwards.
type Store struct {
	employees []core.Employee
	balances  []core.LeaveBalance
	requests  []core.TimeOffRequest
	holidays  []core.Holiday
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets a custom logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// NewStore creates an empty store. Populate it with LoadSample or LoadCSV.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{
		logger: slog.Default().With("component", "dataset"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Employees returns a copy of the employee table.
func (s *Store) Employees() []core.Employee {
	out := make([]core.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// Balances returns a copy of the leave balance table.
func (s *Store) Balances() []core.LeaveBalance {
	out := make([]core.LeaveBalance, len(s.balances))
	copy(out, s.balances)
	return out
}

// Requests returns a copy of the time-off request table.
func (s *Store) Requests() []core.TimeOffRequest {
	out := make([]core.TimeOffRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Holidays returns the holiday calendar in table order.
func (s *Store) Holidays() []core.Holiday {
	out := make([]core.Holiday, len(s.holidays))
	copy(out, s.holidays)
	return out
}

// Statistics computes aggregate figures over the whole dataset.
// MostRequestedType is the mode of request types; when several types share
// the highest count the lexicographically smallest wins, and when the
// request table is empty the field stays empty.
func (s *Store) Statistics() core.LeaveStatistics {
	stats := core.LeaveStatistics{
		TotalEmployees: len(s.employees),
		TotalRequests:  len(s.requests),
	}

	for _, balance := range s.balances {
		stats.TotalPTODays += balance.PTOBalance
	}
	if len(s.balances) > 0 {
		stats.AveragePTOBalance = stats.TotalPTODays / float64(len(s.balances))
	}

	typeCounts := make(map[core.RequestType]int)
	for _, req := range s.requests {
		switch req.Status {
		case core.StatusPending:
			stats.PendingRequests++
		case core.StatusApproved:
			stats.ApprovedRequests++
		}
		typeCounts[req.Type]++
	}

	for reqType, count := range typeCounts {
		better := count > typeCounts[stats.MostRequestedType]
		tied := count == typeCounts[stats.MostRequestedType] && reqType < stats.MostRequestedType
		if stats.MostRequestedType == "" || better || tied {
			stats.MostRequestedType = reqType
		}
	}

	return stats
}

// PolicySummary computes the lighter-weight dataset view attached to policy
// queries.
func (s *Store) PolicySummary() core.PolicySummary {
	stats := s.Statistics()
	return core.PolicySummary{
		TotalEmployees: stats.TotalEmployees,
		AveragePTO:     stats.AveragePTOBalance,
		TotalRequests:  stats.TotalRequests,
	}
}

// EmployeeSummary joins an employee row with its balance row and request
// history. Returns ErrEmployeeNotFound for unknown ids.
func (s *Store) EmployeeSummary(employeeID string) (*core.EmployeeSummary, error) {
	var employee *core.Employee
	for i := range s.employees {
		if s.employees[i].ID == employeeID {
			employee = &s.employees[i]
			break
		}
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, employeeID)
	}

	summary := &core.EmployeeSummary{
		Employee: *employee,
	}

	// First matching balance row; employees without one keep a nil balance
	for i := range s.balances {
		if s.balances[i].EmployeeID == employeeID {
			balance := s.balances[i]
			summary.Balance = &balance
			break
		}
	}

	for _, req := range s.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		summary.TotalRequests++
		switch req.Status {
		case core.StatusApproved:
			summary.ApprovedRequests++
		case core.StatusPending:
			summary.PendingRequests++
		}
		if len(summary.RecentRequests) < employeeRecentRequestLimit {
			summary.RecentRequests = append(summary.RecentRequests, req)
		}
	}

	return summary, nil
}

// RecentRequests returns up to limit requests in table order.
func (s *Store) RecentRequests(limit int) []core.TimeOffRequest {
	if limit < 0 {
		limit = 0
	}
	if limit > len(s.requests) {
		limit = len(s.requests)
	}
	out := make([]core.TimeOffRequest, limit)
	copy(out, s.requests[:limit])
	return out
}

// WorkingDays counts the days in [start, end] inclusive that fall on a
// weekday and are not in the holiday set. Returns ErrInvalidRange when end
// precedes start.
func (s *Store) WorkingDays(start, end time.Time, holidays []core.Holiday) (int, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("%w: %s before %s", ErrInvalidRange,
			end.Format(dateLayout), start.Format(dateLayout))
	}

	holidayDates := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidayDates[h.Date.Format(dateLayout)] = struct{}{}
	}

	days := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		weekday := current.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			continue
		}
		if _, isHoliday := holidayDates[current.Format(dateLayout)]; isHoliday {
			continue
		}
		days++
	}

	return days, nil
}
