package prompt

import (
	"fmt"
	"strings"

	"github.com/poiesic/timeoff/core"
)

const previewContentLimit = 200

// ContextPreview formats a retrieval result as human-readable text. Used by
// the CLI to show what was retrieved for a query without calling the model.
func ContextPreview(result *core.RetrievalResult) string {
	if result.Data.Err != "" {
		return fmt.Sprintf("Error retrieving information: %s", result.Data.Err)
	}

	var sections []string

	if len(result.Documents) > 0 {
		sections = append(sections, "Relevant Documentation:")
		for i, doc := range result.Documents {
			if i == 3 {
				break
			}
			content := strings.TrimSpace(doc.Content)
			if len(content) > previewContentLimit {
				content = content[:previewContentLimit] + "..."
			}
			sections = append(sections, fmt.Sprintf("%d. %s", i+1, content))
		}
	}

	if stats := result.Data.LeaveStatistics; stats != nil {
		sections = append(sections,
			"\nLeave Statistics:",
			fmt.Sprintf("- Total Employees: %d", stats.TotalEmployees),
			fmt.Sprintf("- Average PTO Balance: %.1f days", stats.AveragePTOBalance),
			fmt.Sprintf("- Pending Requests: %d", stats.PendingRequests),
			fmt.Sprintf("- Approved Requests: %d", stats.ApprovedRequests))
	}

	if summary := result.Data.EmployeeSummary; summary != nil {
		sections = append(sections,
			"\nEmployee Summary:",
			fmt.Sprintf("- Name: %s", summary.Employee.Name),
			fmt.Sprintf("- Department: %s", summary.Employee.Department))
		if summary.Balance != nil {
			sections = append(sections,
				fmt.Sprintf("- PTO Balance: %g days", summary.Balance.PTOBalance),
				fmt.Sprintf("- Sick Balance: %g days", summary.Balance.SickBalance))
		}
	}

	if len(result.Data.Holidays) > 0 {
		sections = append(sections, "\nCompany Holidays:")
		for i, holiday := range result.Data.Holidays {
			if i == 5 {
				break
			}
			sections = append(sections, fmt.Sprintf("- %s: %s", holiday.Name, holiday.Date.Format(dateLayout)))
		}
	}

	if len(result.Data.RecentRequests) > 0 {
		sections = append(sections, "\nRecent Time-Off Requests:")
		for i, req := range result.Data.RecentRequests {
			if i == 3 {
				break
			}
			sections = append(sections, fmt.Sprintf("- %s: %s to %s (%s)",
				req.Type,
				req.StartDate.Format(dateLayout),
				req.EndDate.Format(dateLayout),
				req.Status))
		}
	}

	if len(sections) == 0 {
		return "No relevant information found."
	}
	return strings.Join(sections, "\n")
}
