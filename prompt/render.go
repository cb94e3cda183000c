package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/poiesic/timeoff/core"
)

const (
	dateLayout = "2006-01-02"

	notAvailable = "not available"
)

// Render selects the template for the category and fills it with the
// category-appropriate slice of the retrieval result. Missing data renders
// as "not available" placeholders.
func Render(category core.Category, result *core.RetrievalResult, query string) string {
	var tmpl *template.Template
	var context string

	switch category {
	case core.CategoryBalance:
		tmpl = leaveBalanceTemplate
		context = employeeContext(result)
	case core.CategoryPolicy:
		tmpl = policyTemplate
		context = documentContext(result, 3)
	case core.CategoryProcess:
		tmpl = processTemplate
		context = documentContext(result, 2)
	case core.CategoryHoliday:
		tmpl = holidayTemplate
		context = holidayContext(result)
	case core.CategoryStatistics:
		tmpl = dataAnalysisTemplate
		context = statisticsContext(result)
	default:
		tmpl = qaTemplate
		context = documentContext(result, 3)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, promptInput{Context: context, Question: query}); err != nil {
		// Templates take plain strings; execution cannot fail in practice
		return fmt.Sprintf("Question: %s\nContext: %s", query, context)
	}
	return sb.String()
}

// employeeContext formats the employee summary, falling back to aggregate
// statistics when no specific employee was named.
func employeeContext(result *core.RetrievalResult) string {
	if summary := result.Data.EmployeeSummary; summary != nil {
		pto, sick, personal := notAvailable, notAvailable, notAvailable
		if summary.Balance != nil {
			pto = fmt.Sprintf("%g days", summary.Balance.PTOBalance)
			sick = fmt.Sprintf("%g days", summary.Balance.SickBalance)
			personal = fmt.Sprintf("%g days", summary.Balance.PersonalBalance)
		}
		return fmt.Sprintf(`Employee: %s
Department: %s
PTO Balance: %s
Sick Balance: %s
Personal Balance: %s
Total Requests: %d
Pending Requests: %d`,
			summary.Employee.Name,
			summary.Employee.Department,
			pto, sick, personal,
			summary.TotalRequests,
			summary.PendingRequests)
	}

	if result.Data.UnknownEmployeeID != "" {
		return fmt.Sprintf("No record found for employee %s.", result.Data.UnknownEmployeeID)
	}

	if stats := result.Data.LeaveStatistics; stats != nil {
		return statisticsLines(stats)
	}

	return "Employee data " + notAvailable + "."
}

// documentContext joins the top-ranked document chunks.
func documentContext(result *core.RetrievalResult, limit int) string {
	docs := result.Documents
	if len(docs) > limit {
		docs = docs[:limit]
	}
	if len(docs) == 0 {
		return "Documentation " + notAvailable + "."
	}

	contents := make([]string, len(docs))
	for i, doc := range docs {
		contents[i] = doc.Content
	}
	return strings.Join(contents, "\n\n")
}

func holidayContext(result *core.RetrievalResult) string {
	if len(result.Data.Holidays) == 0 {
		return "Holiday data " + notAvailable + "."
	}

	lines := make([]string, len(result.Data.Holidays))
	for i, holiday := range result.Data.Holidays {
		lines[i] = fmt.Sprintf("%s: %s", holiday.Name, holiday.Date.Format(dateLayout))
	}
	return strings.Join(lines, "\n")
}

func statisticsContext(result *core.RetrievalResult) string {
	if result.Data.LeaveStatistics == nil {
		return "Data summary " + notAvailable + "."
	}
	return statisticsLines(result.Data.LeaveStatistics)
}

func statisticsLines(stats *core.LeaveStatistics) string {
	return fmt.Sprintf(`Total Employees: %d
Average PTO Balance: %.1f days
Total PTO Days: %.1f
Pending Requests: %d
Approved Requests: %d`,
		stats.TotalEmployees,
		stats.AveragePTOBalance,
		stats.TotalPTODays,
		stats.PendingRequests,
		stats.ApprovedRequests)
}
