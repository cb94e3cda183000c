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


// Package dataset provides the read-only tabular store backing the advisor's
// structured lookups.
//
// The store holds four tables: employees, leave balances, time-off requests
// and the holiday calendar. Tables are loaded once, either from CSV files or
// from the built-in sample data, and are never mutated afterwards. All query
// methods return copies, so callers cannot alias store internals.
//
// Table order is significant: RecentRequests and the request history inside
// EmployeeSummary follow the order rows were defined, not any date sort.
package dataset
