package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/poiesic/timeoff/core"
	"github.com/stretchr/testify/assert"
)

func chunk(seq int, content string) core.DocumentChunk {
	return core.DocumentChunk{
		SourceFile: "pto_policy.md",
		Seq:        seq,
		FileType:   "md",
		Content:    content,
	}
}

func TestRender_BalanceWithEmployeeSummary(t *testing.T) {
	result := &core.RetrievalResult{
		Query:    "balance for emp001",
		Category: core.CategoryBalance,
		Data: core.RetrievedData{
			EmployeeSummary: &core.EmployeeSummary{
				Employee: core.Employee{ID: "EMP001", Name: "John Smith", Department: "Engineering"},
				Balance: &core.LeaveBalance{
					EmployeeID:      "EMP001",
					PTOBalance:      15.5,
					SickBalance:     8,
					PersonalBalance: 3,
				},
				TotalRequests:   1,
				PendingRequests: 0,
			},
		},
	}

	rendered := Render(core.CategoryBalance, result, "balance for emp001")

	assert.Contains(t, rendered, "John Smith")
	assert.Contains(t, rendered, "Engineering")
	assert.Contains(t, rendered, "PTO Balance: 15.5 days")
	assert.Contains(t, rendered, "Question: balance for emp001")
	assert.NotContains(t, rendered, "not available")
}

func TestRender_BalanceWithoutBalanceRow(t *testing.T) {
	result := &core.RetrievalResult{
		Data: core.RetrievedData{
			EmployeeSummary: &core.EmployeeSummary{
				Employee: core.Employee{ID: "EMP010", Name: "Pat Lee"},
			},
		},
	}

	rendered := Render(core.CategoryBalance, result, "balance for emp010")
	assert.Contains(t, rendered, "PTO Balance: not available")
}

func TestRender_BalanceFallsBackToStatistics(t *testing.T) {
	result := &core.RetrievalResult{
		Data: core.RetrievedData{
			LeaveStatistics: &core.LeaveStatistics{
				TotalEmployees:    5,
				AveragePTOBalance: 17.7,
			},
		},
	}

	rendered := Render(core.CategoryBalance, result, "how much pto overall?")
	assert.Contains(t, rendered, "Total Employees: 5")
	assert.Contains(t, rendered, "Average PTO Balance: 17.7 days")
}

func TestRender_BalanceUnknownEmployee(t *testing.T) {
	result := &core.RetrievalResult{
		Data: core.RetrievedData{UnknownEmployeeID: "EMP999"},
	}

	rendered := Render(core.CategoryBalance, result, "balance for emp999")
	assert.Contains(t, rendered, "No record found for employee EMP999.")
}

func TestRender_PolicyUsesTopThreeDocuments(t *testing.T) {
	result := &core.RetrievalResult{
		Documents: []core.DocumentChunk{
			chunk(0, "First policy chunk"),
			chunk(1, "Second policy chunk"),
			chunk(2, "Third policy chunk"),
			chunk(3, "Fourth policy chunk"),
		},
	}

	rendered := Render(core.CategoryPolicy, result, "what is the policy?")

	assert.Contains(t, rendered, "First policy chunk")
	assert.Contains(t, rendered, "Third policy chunk")
	assert.NotContains(t, rendered, "Fourth policy chunk")
}

func TestRender_ProcessUsesTopTwoDocuments(t *testing.T) {
	result := &core.RetrievalResult{
		Documents: []core.DocumentChunk{
			chunk(0, "Step one"),
			chunk(1, "Step two"),
			chunk(2, "Step three"),
		},
	}

	rendered := Render(core.CategoryProcess, result, "how do I submit?")

	assert.Contains(t, rendered, "Step one")
	assert.Contains(t, rendered, "Step two")
	assert.NotContains(t, rendered, "Step three")
}

func TestRender_MissingDocumentsPlaceholder(t *testing.T) {
	result := &core.RetrievalResult{}

	rendered := Render(core.CategoryPolicy, result, "what is the policy?")
	assert.Contains(t, rendered, "Documentation not available.")
}

func TestRender_Holiday(t *testing.T) {
	result := &core.RetrievalResult{
		Data: core.RetrievedData{
			Holidays: []core.Holiday{
				{Name: "Christmas Day", Date: time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), IsCompanyHoliday: true},
			},
		},
	}

	rendered := Render(core.CategoryHoliday, result, "when is christmas?")
	assert.Contains(t, rendered, "Christmas Day: 2024-12-25")
}

func TestRender_HolidayPlaceholder(t *testing.T) {
	rendered := Render(core.CategoryHoliday, &core.RetrievalResult{}, "when is christmas?")
	assert.Contains(t, rendered, "Holiday data not available.")
}

func TestRender_Statistics(t *testing.T) {
	result := &core.RetrievalResult{
		Data: core.RetrievedData{
			LeaveStatistics: &core.LeaveStatistics{
				TotalEmployees:    5,
				AveragePTOBalance: 17.7,
				TotalPTODays:      88.5,
				PendingRequests:   1,
				ApprovedRequests:  4,
			},
		},
	}

	rendered := Render(core.CategoryStatistics, result, "show me a report")
	assert.Contains(t, rendered, "Total PTO Days: 88.5")
	assert.Contains(t, rendered, "Pending Requests: 1")
}

func TestRender_StatisticsPlaceholder(t *testing.T) {
	rendered := Render(core.CategoryStatistics, &core.RetrievalResult{}, "show me a report")
	assert.Contains(t, rendered, "Data summary not available.")
}

func TestRender_GeneralIncludesQuestion(t *testing.T) {
	result := &core.RetrievalResult{
		Documents: []core.DocumentChunk{chunk(0, "Some documentation")},
	}

	rendered := Render(core.CategoryGeneral, result, "tell me something")

	assert.Contains(t, rendered, "Some documentation")
	assert.Contains(t, rendered, "Question: tell me something")
	assert.True(t, strings.HasSuffix(rendered, "Answer:"))
}
