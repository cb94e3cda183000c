package dataset

import (
	"time"

	"github.com/poiesic/timeoff/core"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// LoadSample populates the store with the built-in sample dataset.
// Used for demos and as a fallback when no CSV data directory exists.
func (s *Store) LoadSample() {
	s.employees = sampleEmployees()
	s.balances = sampleBalances()
	s.requests = sampleRequests()
	s.holidays = sampleHolidays()

	s.logger.Info("loaded sample dataset",
		"employees", len(s.employees),
		"requests", len(s.requests),
		"holidays", len(s.holidays))
}

func sampleEmployees() []core.Employee {
	return []core.Employee{
		{ID: "EMP001", Name: "John Smith", Department: "Engineering", HireDate: date(2020, time.January, 15), EmploymentStatus: "Full-time"},
		{ID: "EMP002", Name: "Jane Doe", Department: "Marketing", HireDate: date(2019, time.March, 20), EmploymentStatus: "Full-time"},
		{ID: "EMP003", Name: "Mike Johnson", Department: "Sales", HireDate: date(2021, time.June, 10), EmploymentStatus: "Full-time"},
		{ID: "EMP004", Name: "Sarah Wilson", Department: "HR", HireDate: date(2018, time.November, 5), EmploymentStatus: "Full-time"},
		{ID: "EMP005", Name: "David Brown", Department: "Finance", HireDate: date(2022, time.February, 28), EmploymentStatus: "Full-time"},
	}
}

func sampleBalances() []core.LeaveBalance {
	updated := date(2024, time.January, 15)
	return []core.LeaveBalance{
		{EmployeeID: "EMP001", PTOBalance: 15.5, SickBalance: 8.0, PersonalBalance: 3.0, LastUpdated: updated},
		{EmployeeID: "EMP002", PTOBalance: 22.0, SickBalance: 10.0, PersonalBalance: 5.0, LastUpdated: updated},
		{EmployeeID: "EMP003", PTOBalance: 8.75, SickBalance: 5.5, PersonalBalance: 2.0, LastUpdated: updated},
		{EmployeeID: "EMP004", PTOBalance: 30.0, SickBalance: 7.0, PersonalBalance: 4.0, LastUpdated: updated},
		{EmployeeID: "EMP005", PTOBalance: 12.25, SickBalance: 9.5, PersonalBalance: 1.5, LastUpdated: updated},
	}
}

func sampleRequests() []core.TimeOffRequest {
	return []core.TimeOffRequest{
		{
			RequestID: "REQ001", EmployeeID: "EMP001", Type: core.RequestTypeVacation,
			StartDate: date(2024, time.February, 15), EndDate: date(2024, time.February, 20),
			DaysRequested: 4.0, Status: core.StatusApproved,
			SubmittedDate: date(2024, time.January, 10), ApprovedBy: "Manager1", Comments: "Family vacation",
		},
		{
			RequestID: "REQ002", EmployeeID: "EMP002", Type: core.RequestTypeSick,
			StartDate: date(2024, time.January, 20), EndDate: date(2024, time.January, 20),
			DaysRequested: 1.0, Status: core.StatusApproved,
			SubmittedDate: date(2024, time.January, 19), ApprovedBy: "Manager2", Comments: "Not feeling well",
		},
		{
			RequestID: "REQ003", EmployeeID: "EMP003", Type: core.RequestTypePersonal,
			StartDate: date(2024, time.March, 10), EndDate: date(2024, time.March, 10),
			DaysRequested: 1.0, Status: core.StatusPending,
			SubmittedDate: date(2024, time.February, 15), Comments: "Doctor appointment",
		},
		{
			RequestID: "REQ004", EmployeeID: "EMP004", Type: core.RequestTypeVacation,
			StartDate: date(2024, time.April, 1), EndDate: date(2024, time.April, 5),
			DaysRequested: 3.0, Status: core.StatusApproved,
			SubmittedDate: date(2024, time.March, 1), ApprovedBy: "Manager1", Comments: "Spring break",
		},
		{
			RequestID: "REQ005", EmployeeID: "EMP005", Type: core.RequestTypeHoliday,
			StartDate: date(2024, time.January, 1), EndDate: date(2024, time.January, 1),
			DaysRequested: 1.0, Status: core.StatusApproved,
			SubmittedDate: date(2024, time.January, 1), ApprovedBy: "System", Comments: "New Year holiday",
		},
	}
}

func sampleHolidays() []core.Holiday {
	return []core.Holiday{
		{Name: "New Year's Day", Date: date(2024, time.January, 1), IsCompanyHoliday: true},
		{Name: "Martin Luther King Jr. Day", Date: date(2024, time.January, 15), IsCompanyHoliday: true},
		{Name: "Memorial Day", Date: date(2024, time.May, 27), IsCompanyHoliday: true},
		{Name: "Independence Day", Date: date(2024, time.July, 4), IsCompanyHoliday: true},
		{Name: "Labor Day", Date: date(2024, time.September, 2), IsCompanyHoliday: true},
		{Name: "Thanksgiving Day", Date: date(2024, time.November, 28), IsCompanyHoliday: true},
		{Name: "Christmas Day", Date: date(2024, time.December, 25), IsCompanyHoliday: true},
	}
}
