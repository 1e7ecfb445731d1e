package insight

import (
	"fmt"
	"strings"

	"github.com/zakarianasim073/construction-project-monitoring/internal/domain"
)

// maxBOQLinesInPrompt bounds how much of the baseline goes to the model.
const maxBOQLinesInPrompt = 3

// buildPrompt summarizes the project for the analyst prompt: name, contract
// value, the top BOQ lines, and record counts. The full ledger never leaves
// the process.
func buildPrompt(p *domain.Project) string {
	var b strings.Builder

	b.WriteString("Analyze the following construction project data and provide a concise executive summary and risk assessment.\n\n")
	fmt.Fprintf(&b, "Project Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Contract Value: %.0f\n\n", p.ContractValue)

	b.WriteString(fmt.Sprintf("BOQ Summary (Top %d items):\n", maxBOQLinesInPrompt))
	for i, l := range p.BOQ {
		if i >= maxBOQLinesInPrompt {
			break
		}
		fmt.Fprintf(&b, "- %s: %v/%v %s\n", l.Description, l.ExecutedQty, l.PlannedQty, l.Unit)
	}

	b.WriteString("\nFinancials:\n")
	fmt.Fprintf(&b, "- Bills: %d records\n", len(p.Bills))
	fmt.Fprintf(&b, "- Liabilities: %d records showing pending payments and retentions.\n\n", len(p.Liabilities))

	b.WriteString("Please provide:\n")
	b.WriteString("1. Overall Health Score (0-100%)\n")
	b.WriteString("2. Key Financial Risks (focus on retention and unbilled liabilities)\n")
	b.WriteString("3. Progress Bottlenecks based on BOQ execution vs Plan.\n")
	b.WriteString("4. A strategic recommendation for the Project Manager.\n\n")
	b.WriteString("Keep it professional, concise, and formatted in Markdown.\n")

	return b.String()
}
