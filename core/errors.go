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

import "errors"

// Domain validation errors
var (
	// ErrInvalidEmployee indicates an Employee failed validation.
	ErrInvalidEmployee = errors.New("invalid employee")

	// ErrInvalidBalance indicates a LeaveBalance failed validation.
	ErrInvalidBalance = errors.New("invalid leave balance")

	// ErrInvalidRequest indicates a TimeOffRequest failed validation.
	ErrInvalidRequest = errors.New("invalid time-off request")

	// ErrInvalidChunk indicates a DocumentChunk failed validation.
	ErrInvalidChunk = errors.New("invalid document chunk")

	// ErrEmptyEmployeeID indicates a required employee id is missing.
	ErrEmptyEmployeeID = errors.New("employee id cannot be empty")

	// ErrNegativeBalance indicates a leave balance below zero.
	ErrNegativeBalance = errors.New("leave balance cannot be negative")

	// ErrInvalidRequestType indicates an unrecognized RequestType value.
	ErrInvalidRequestType = errors.New("invalid request type")

	// ErrInvalidRequestStatus indicates an unrecognized RequestStatus value.
	ErrInvalidRequestStatus = errors.New("invalid request status")

	// ErrDatesOutOfOrder indicates an end date before its start date.
	ErrDatesOutOfOrder = errors.New("end date cannot precede start date")

	// ErrNegativeDays indicates a negative days-requested count.
	ErrNegativeDays = errors.New("days requested cannot be negative")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)
