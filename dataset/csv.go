// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/poiesic/timeoff/core"
)

const dateLayout = "2006-01-02"

const (
	employeesFile = "employees.csv"
	balancesFile  = "leave_balances.csv"
	requestsFile  = "timeoff_requests.csv"
	holidaysFile  = "holidays.csv"
)

// LoadCSV populates the store from CSV files in dir. All four tables must
// parse; a partially loaded store is never left behind on error.
func (s *Store) LoadCSV(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDataDirNotFound, dir)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDataDirNotFound, dir)
	}

	employees, err := loadTable(filepath.Join(dir, employeesFile), 5, parseEmployee)
	if err != nil {
		return err
	}
	balances, err := loadTable(filepath.Join(dir, balancesFile), 5, parseBalance)
	if err != nil {
		return err
	}
	requests, err := loadTable(filepath.Join(dir, requestsFile), 10, parseRequest)
	if err != nil {
		return err
	}
	holidays, err := loadTable(filepath.Join(dir, holidaysFile), 3, parseHoliday)
	if err != nil {
		return err
	}

	s.employees = employees
	s.balances = balances
	s.requests = requests
	s.holidays = holidays

	s.logger.Info("loaded dataset from CSV",
		"dir", dir,
		"employees", len(employees),
		"requests", len(requests),
		"holidays", len(holidays))
	return nil
}

// SaveCSV writes the four tables to CSV files in dir, creating it if needed.
func (s *Store) SaveCSV(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tables := []struct {
		file   string
		header []string
		rows   [][]string
	}{
		{
			employeesFile,
			[]string{"employee_id", "name", "department", "hire_date", "employment_status"},
			employeeRows(s.employees),
		},
		{
			balancesFile,
			[]string{"employee_id", "pto_balance", "sick_balance", "personal_balance", "last_updated"},
			balanceRows(s.balances),
		},
		{
			requestsFile,
			[]string{"request_id", "employee_id", "request_type", "start_date", "end_date",
				"days_requested", "status", "submitted_date", "approved_by", "comments"},
			requestRows(s.requests),
		},
		{
			holidaysFile,
			[]string{"holiday_name", "date", "is_company_holiday"},
			holidayRows(s.holidays),
		},
	}

	for _, table := range tables {
		if err := writeTable(filepath.Join(dir, table.file), table.header, table.rows); err != nil {
			return err
		}
	}

	s.logger.Info("saved dataset to CSV", "dir", dir)
	return nil
}

// loadTable reads a CSV file, skips the header row, and parses each record.
func loadTable[T any](path string, fields int, parse func([]string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedRow, filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]T, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := parse(record)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", ErrMalformedRow, filepath.Base(path), i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseEmployee(record []string) (core.Employee, error) {
	hireDate, err := time.Parse(dateLayout, record[3])
	if err != nil {
		return core.Employee{}, err
	}
	return core.Employee{
		ID:               record[0],
		Name:             record[1],
		Department:       record[2],
		HireDate:         hireDate,
		EmploymentStatus: record[4],
	}, nil
}

func parseBalance(record []string) (core.LeaveBalance, error) {
	pto, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return core.LeaveBalance{}, err
	}
	sick, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return core.LeaveBalance{}, err
	}
	personal, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return core.LeaveBalance{}, err
	}
	lastUpdated, err := time.Parse(dateLayout, record[4])
	if err != nil {
		return core.LeaveBalance{}, err
	}
	return core.LeaveBalance{
		EmployeeID:      record[0],
		PTOBalance:      pto,
		SickBalance:     sick,
		PersonalBalance: personal,
		LastUpdated:     lastUpdated,
	}, nil
}

func parseRequest(record []string) (core.TimeOffRequest, error) {
	startDate, err := time.Parse(dateLayout, record[3])
	if err != nil {
		return core.TimeOffRequest{}, err
	}
	endDate, err := time.Parse(dateLayout, record[4])
	if err != nil {
		return core.TimeOffRequest{}, err
	}
	days, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return core.TimeOffRequest{}, err
	}
	submitted, err := time.Parse(dateLayout, record[7])
	if err != nil {
		return core.TimeOffRequest{}, err
	}
	return core.TimeOffRequest{
		RequestID:     record[0],
		EmployeeID:    record[1],
		Type:          core.RequestType(record[2]),
		StartDate:     startDate,
		EndDate:       endDate,
		DaysRequested: days,
		Status:        core.RequestStatus(record[6]),
		SubmittedDate: submitted,
		ApprovedBy:    record[8],
		Comments:      record[9],
	}, nil
}

func parseHoliday(record []string) (core.Holiday, error) {
	date, err := time.Parse(dateLayout, record[1])
	if err != nil {
		return core.Holiday{}, err
	}
	isCompany, err := strconv.ParseBool(record[2])
	if err != nil {
		return core.Holiday{}, err
	}
	return core.Holiday{
		Name:             record[0],
		Date:             date,
		IsCompanyHoliday: isCompany,
	}, nil
}

func employeeRows(employees []core.Employee) [][]string {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			e.ID, e.Name, e.Department, e.HireDate.Format(dateLayout), e.EmploymentStatus,
		})
	}
	return rows
}

func balanceRows(balances []core.LeaveBalance) [][]string {
	rows := make([][]string, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, []string{
			b.EmployeeID,
			strconv.FormatFloat(b.PTOBalance, 'f', -1, 64),
			strconv.FormatFloat(b.SickBalance, 'f', -1, 64),
			strconv.FormatFloat(b.PersonalBalance, 'f', -1, 64),
			b.LastUpdated.Format(dateLayout),
		})
	}
	return rows
}

func requestRows(requests []core.TimeOffRequest) [][]string {
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []string{
			r.RequestID,
			r.EmployeeID,
			string(r.Type),
			r.StartDate.Format(dateLayout),
			r.EndDate.Format(dateLayout),
			strconv.FormatFloat(r.DaysRequested, 'f', -1, 64),
			string(r.Status),
			r.SubmittedDate.Format(dateLayout),
			r.ApprovedBy,
			r.Comments,
		})
	}
	return rows
}

func holidayRows(holidays []core.Holiday) [][]string {
	rows := make([][]string, 0, len(holidays))
	for _, h := range holidays {
		rows = append(rows, []string{
			h.Name, h.Date.Format(dateLayout), strconv.FormatBool(h.IsCompanyHoliday),
		})
	}
	return rows
}
