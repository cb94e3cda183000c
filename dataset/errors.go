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

import "errors"

var (
	// ErrEmployeeNotFound indicates the requested employee id has no row in
	// the employee table.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidRange indicates a date range whose end precedes its start.
	ErrInvalidRange = errors.New("end date precedes start date")

	// ErrDataDirNotFound indicates the CSV data directory does not exist.
	ErrDataDirNotFound = errors.New("data directory not found")

	// ErrMalformedRow indicates a CSV row that could not be parsed.
	ErrMalformedRow = errors.New("malformed row")
)
