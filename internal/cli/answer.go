package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
)

type AnswerCmd struct{}

func (c *AnswerCmd) Run(ctx *Context) error {
	j, err := ctx.OpenJournal()
	if err != nil {
		return err
	}

	questions := j.Questions()
	if len(questions) == 0 {
		fmt.Println("No questions configured. Add some with 'daybook question add'.")
		return nil
	}

	day := j.Day()

	// Per-question value holders, pre-filled from the working set so
	// re-answering starts from what was already recorded.
	yes := make([]bool, len(questions))
	slider := make([]int, len(questions))
	text := make([]string, len(questions))
	for i, q := range questions {
		slider[i] = constants.SliderMin
		a, ok := day.Answer(q.ID)
		if !ok {
			continue
		}
		if a.YesNo != nil {
			yes[i] = *a.YesNo
		}
		if a.Slider != nil {
			slider[i] = int(*a.Slider)
		}
		if a.FreeText != nil {
			text[i] = *a.FreeText
		}
	}

	groups := make([]*huh.Group, 0, len(questions))
	for i, q := range questions {
		switch q.Type {
		case models.QuestionYesNo:
			groups = append(groups, huh.NewGroup(
				huh.NewConfirm().
					Title(q.Text).
					Affirmative("Yes").
					Negative("No").
					Value(&yes[i]),
			))
		case models.QuestionSlider:
			opts := make([]huh.Option[int], 0, constants.SliderMax)
			for v := constants.SliderMin; v <= constants.SliderMax; v++ {
				opts = append(opts, huh.NewOption(fmt.Sprintf("%d", v), v))
			}
			groups = append(groups, huh.NewGroup(
				huh.NewSelect[int]().
					Title(q.Text).
					Options(opts...).
					Value(&slider[i]),
			))
		case models.QuestionFreeText:
			groups = append(groups, huh.NewGroup(
				huh.NewConfirm().
					Title(q.Text).
					Affirmative("Yes").
					Negative("No").
					Value(&yes[i]),
				huh.NewText().
					Title("Notes (optional)").
					Value(&text[i]),
			))
		}
	}

	form := huh.NewForm(groups...)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	for i, q := range questions {
		switch q.Type {
		case models.QuestionYesNo:
			day.SetYesNo(q.ID, yes[i])
		case models.QuestionSlider:
			day.SetSlider(q.ID, float64(slider[i]))
		case models.QuestionFreeText:
			day.SetYesNo(q.ID, yes[i])
			day.SetFreeText(q.ID, text[i])
		}
	}

	ctx.PerformAutomaticBackup()
	day.Save()

	if day.IsComplete(questions) {
		fmt.Printf("Saved. All questions answered for %s.\n", day.Day())
	} else {
		fmt.Printf("Saved answers for %s.\n", day.Day())
	}
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	j, err := ctx.OpenJournal()
	if err != nil {
		return err
	}

	questions := j.Questions()
	day := j.Day()

	fmt.Printf("Reflection for %s:\n\n", day.Day())
	answered := 0
	for _, q := range questions {
		marker := "[ ]"
		if a, ok := day.Answer(q.ID); ok && a.Answered(q.Type) {
			marker = "[x]"
			answered++
		}
		fmt.Printf("  %s %s\n", marker, q.Text)
	}

	fmt.Printf("\n%d/%d answered", answered, len(questions))
	if day.IsComplete(questions) {
		fmt.Print(" - complete")
	}
	fmt.Println()
	return nil
}
