package mirror

import (
	"fmt"
	"houseprojects/display"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	urgencyStyles = map[display.Urgency]lipgloss.Style{
		display.UrgencyOverdue: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		display.UrgencyDueSoon: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		display.UrgencyOnTrack: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

// Render draws the active projects of board as a table under title.
func Render(title string, board display.Board, now time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(board.Active) == 0 {
		b.WriteString(dimStyle.Render("No active projects"))
	} else {
		rows := make([][]string, 0, len(board.Active))
		for _, r := range board.Active {
			rows = append(rows, []string{
				r.Description,
				r.Group,
				r.Assignee,
				r.DueDate.String(),
				urgencyStyles[r.Urgency].Render(fmt.Sprint(r.DaysRemaining)),
				string(r.Priority),
				fmt.Sprintf("%d%%", r.ProgressPercent),
			})
		}
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(dimStyle).
			Headers("Description", "Group", "Assignee", "Due Date", "Days Remaining", "Priority", "Progress").
			Rows(rows...)
		b.WriteString(t.String())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d completed, updated %s", len(board.Completed), now.Format("2006-01-02 15:04"))))
	b.WriteString("\n")
	return b.String()
}
