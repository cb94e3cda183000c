package prompt

import "text/template"

type promptInput struct {
	Context  string
	Question string
}

var (
	qaTemplate = template.Must(template.New("qa").Parse(`Use the following context to answer the question at the end. If you don't know the answer, just say that you don't know, don't try to make up an answer.

Context:
{{.Context}}

Question: {{.Question}}

Answer:`))

	leaveBalanceTemplate = template.Must(template.New("leave-balance").Parse(`Based on the following employee leave balance information, answer the user's question:

Employee Data:
{{.Context}}

Question: {{.Question}}

Provide a clear, helpful response about their leave balance.`))

	policyTemplate = template.Must(template.New("policy").Parse(`Use the following policy documentation to answer the user's question about time-off policies:

Policy Documentation:
{{.Context}}

Question: {{.Question}}

Provide a comprehensive answer based on the policy information provided.`))

	processTemplate = template.Must(template.New("process").Parse(`Based on the following time-off request process documentation, guide the user through the process:

Process Documentation:
{{.Context}}

Question: {{.Question}}

Provide step-by-step guidance on how to complete their time-off request.`))

	holidayTemplate = template.Must(template.New("holiday").Parse(`Use the following holiday information to answer the user's question:

Holiday Data:
{{.Context}}

Question: {{.Question}}

Provide accurate information about company holidays.`))

	dataAnalysisTemplate = template.Must(template.New("data-analysis").Parse(`Based on the following time-off data summary, answer the user's question:

Data Summary:
{{.Context}}

Question: {{.Question}}

Provide insights and analysis based on the data provided.`))
)
