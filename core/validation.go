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


package core

import "fmt"

// ValidateEmployee validates an Employee according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Name must not be empty
func ValidateEmployee(employee *Employee) error {
	if employee == nil {
		return fmt.Errorf("%w: employee is nil", ErrInvalidEmployee)
	}

	if employee.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEmployee, ErrEmptyEmployeeID)
	}

	if employee.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidEmployee)
	}

	return nil
}

// ValidateLeaveBalance validates a LeaveBalance according to domain rules.
//
// Validation rules:
//   - EmployeeID must not be empty
//   - All balances must be non-negative day counts
func ValidateLeaveBalance(balance *LeaveBalance) error {
	if balance == nil {
		return fmt.Errorf("%w: balance is nil", ErrInvalidBalance)
	}

	if balance.EmployeeID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidBalance, ErrEmptyEmployeeID)
	}

	if balance.PTOBalance < 0 || balance.SickBalance < 0 || balance.PersonalBalance < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBalance, ErrNegativeBalance)
	}

	return nil
}

// ValidateTimeOffRequest validates a TimeOffRequest according to domain rules.
//
// Validation rules:
//   - EmployeeID must not be empty
//   - Type and Status must be recognized values
//   - EndDate must not precede StartDate
//   - DaysRequested must be non-negative
//
// NOT validated:
//   - ApprovedBy (empty is valid for pending and denied requests)
func ValidateTimeOffRequest(request *TimeOffRequest) error {
	if request == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}

	if request.EmployeeID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrEmptyEmployeeID)
	}

	if err := ValidateRequestType(request.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if err := ValidateRequestStatus(request.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if request.EndDate.Before(request.StartDate) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrDatesOutOfOrder)
	}

	if request.DaysRequested < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrNegativeDays)
	}

	return nil
}

// ValidateDocumentChunk validates a DocumentChunk according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//
// NOT validated (populated later):
//   - Vector (can be empty until the ingestion pipeline embeds it)
//   - Ord (assigned by storage)
func ValidateDocumentChunk(chunk *DocumentChunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}

	return nil
}

// ValidateRequestType validates that a RequestType has a valid value.
func ValidateRequestType(t RequestType) error {
	switch t {
	case RequestTypeVacation, RequestTypeSick, RequestTypePersonal, RequestTypeHoliday:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidRequestType, string(t))
}

// ValidateRequestStatus validates that a RequestStatus has a valid value.
func ValidateRequestStatus(s RequestStatus) error {
	switch s {
	case StatusApproved, StatusPending, StatusDenied:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidRequestStatus, string(s))
}
