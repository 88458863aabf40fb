package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybook/internal/journal"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	questionStyle     = lipgloss.NewStyle().Bold(true)
	noDataStyle       = lipgloss.NewStyle().Faint(true)
	entryDayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type SummaryCmd struct {
	Range string `help:"Aggregation window: today, week, or month." default:"week"`
}

func (c *SummaryCmd) Run(ctx *Context) error {
	r, err := journal.ParseRange(c.Range)
	if err != nil {
		return err
	}

	j, err := ctx.OpenJournal()
	if err != nil {
		return err
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	summary := j.Summary(r, today)
	fmt.Println(RenderSummary(summary))
	return nil
}

// RenderSummary formats an aggregate for terminal display.
func RenderSummary(s journal.Summary) string {
	var b strings.Builder

	title := fmt.Sprintf("Summary: %s (as of %s)", s.Range, s.AsOf)
	b.WriteString(summaryTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(noDataStyle.Render(fmt.Sprintf("%d of %d day(s) recorded", s.DaysWithData, len(s.Days))))
	b.WriteString("\n\n")

	for _, qs := range s.Questions {
		b.WriteString(questionStyle.Render(qs.Question.Text))
		b.WriteString("\n")

		switch {
		case qs.YesNo != nil:
			if qs.YesNo.Total == 0 {
				b.WriteString(noDataStyle.Render("  no data"))
			} else {
				b.WriteString(fmt.Sprintf("  yes %d · no %d · %.0f%% yes",
					qs.YesNo.Yes, qs.YesNo.No, qs.YesNo.YesPercent*100))
			}
		case qs.Slider != nil:
			if qs.Slider.Count == 0 {
				b.WriteString(noDataStyle.Render("  no data"))
			} else {
				b.WriteString(fmt.Sprintf("  average %.1f over %d day(s)", qs.Slider.Mean, qs.Slider.Count))
			}
		default:
			if len(qs.Entries) == 0 {
				b.WriteString(noDataStyle.Render("  no entries"))
			} else {
				for i, e := range qs.Entries {
					if i > 0 {
						b.WriteString("\n")
					}
					b.WriteString(fmt.Sprintf("  %s %s", entryDayStyle.Render(e.Day), e.Text))
				}
			}
		}
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
