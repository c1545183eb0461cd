package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/iafilius/QuantumResourcePlots/src/results"
	"github.com/iafilius/QuantumResourcePlots/src/types"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// WriteSummary prints one table row per group.
func WriteSummary(w io.Writer, title string, groups []types.Group) error {
	rows := make([][]string, 0, len(groups))
	total := 0
	for _, s := range results.Summarize(groups) {
		total += s.Count
		rows = append(rows, []string{
			s.Label,
			strconv.Itoa(s.Count),
			strconv.FormatUint(s.MinQubits, 10) + "–" + strconv.FormatUint(s.MaxQubits, 10),
			formatRuntime(s.MinRuntime) + "–" + formatRuntime(s.MaxRuntime),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("group", "records", "physical qubits", "runtime (s)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	out := titleStyle.Render(title) + "\n" + t.String() + "\n" +
		strconv.Itoa(len(groups)) + " group(s), " + strconv.Itoa(total) + " record(s)\n"
	_, err := io.WriteString(w, out)
	return err
}

// formatRuntime keeps the terminal table compact.
func formatRuntime(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
