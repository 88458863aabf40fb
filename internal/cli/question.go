package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daybook/internal/models"
)

type QuestionCmd struct {
	List   QuestionListCmd   `cmd:"" help:"List questions." default:"1"`
	Add    QuestionAddCmd    `cmd:"" help:"Add a new question."`
	Edit   QuestionEditCmd   `cmd:"" help:"Edit an existing question."`
	Delete QuestionDeleteCmd `cmd:"" help:"Delete questions by position."`
	Move   QuestionMoveCmd   `cmd:"" help:"Move questions to a new position."`
}

// parseQuestionType maps CLI spellings onto a question type.
func parseQuestionType(s string) (models.QuestionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yesno", "yes-no", "yes_no":
		return models.QuestionYesNo, nil
	case "slider":
		return models.QuestionSlider, nil
	case "text", "freetext", "free-text", "free_text":
		return models.QuestionFreeText, nil
	}
	return "", fmt.Errorf("invalid question type %q (expected yesno, slider, or text)", s)
}

func questionTypeLabel(t models.QuestionType) string {
	switch t {
	case models.QuestionYesNo:
		return "yes/no"
	case models.QuestionSlider:
		return "slider"
	case models.QuestionFreeText:
		return "free text"
	}
	return string(t)
}

type QuestionListCmd struct{}

func (c *QuestionListCmd) Run(ctx *Context) error {
	j, err := ctx.OpenJournal()
	if err != nil {
		return err
	}

	questions := j.Questions()
	if len(questions) == 0 {
		fmt.Println("No questions configured.")
		return nil
	}

	for i, q := range questions {
		fmt.Printf("%d. [%s] %s\n", i+1, questionTypeLabel(q.Type), q.Text)
	}
	return nil
}

type QuestionAddCmd struct {
	Text string `arg:"" help:"Question text."`
	Type string `help:"Question type: yesno, slider, or text." default:"yesno"`
}

func (c *QuestionAddCmd) Run(ctx *Context) error {
	qt, err := parseQuestionType(c.Type)
	if err != nil {
		return err
	}

	j, err := ctx.OpenJournal()
	if err != nil {
		return err
	}

	q, err := j.AddQuestion(c.Text, qt)
	if err != nil {
		return err
	}

	fmt.Printf("Added question: %s\n", q.Text)
	fmt.Println("Today's answers have been reset.")
	return nil
}

type QuestionEditCmd struct {
	Position int    `arg:"" help:"Question position (as shown by 'question list')."`
	Text     string `help:"New question text."`
	Type     string `help:"New question type: yesno, slider, or text." default:""`
}

func (c *QuestionEditCmd) Run(ctx *Context) error {
	j, err := ctx.OpenJournal()
	if err != nil {
		return err
	}

	questions := j.Questions()
	if c.Position < 1 || c.Position > len(questions) {
		return fmt.Errorf("position %d out of range (1-%d)", c.Position, len(questions))
	}
	q := questions[c.Position-1]

	text := c.Text
	if text == "" {
		text = q.Text
	}
	qt := q.Type
	if c.Type != "" {
		qt, err = parseQuestionType(c.Type)
		if err != nil {
			return err
		}
	}

	if _, err := j.UpdateQuestion(q.ID, text, qt); err != nil {
		return err
	}

	fmt.Printf("Updated question %d.\n", c.Position)
	fmt.Println("Today's answers have been reset.")
	return nil
}

type QuestionDeleteCmd struct {
	Positions []int `arg:"" help:"Question positions to delete (as shown by 'question list')."`
}

func (c *QuestionDeleteCmd) Run(ctx *Context) error {
	j, err := ctx.OpenJournal()
	if err != nil {
		return err
	}

	total := len(j.Questions())
	indices := make([]int, 0, len(c.Positions))
	for _, p := range c.Positions {
		if p < 1 || p > total {
			return fmt.Errorf("position %d out of range (1-%d)", p, total)
		}
		indices = append(indices, p-1)
	}

	j.DeleteQuestions(indices)

	fmt.Printf("Deleted %d question(s).\n", len(indices))
	fmt.Println("Today's answers have been reset.")
	return nil
}

type QuestionMoveCmd struct {
	Positions []int `arg:"" help:"Question positions to move (as shown by 'question list')."`
	To        int   `required:"" help:"Target position."`
}

func (c *QuestionMoveCmd) Run(ctx *Context) error {
	j, err := ctx.OpenJournal()
	if err != nil {
		return err
	}

	total := len(j.Questions())
	indices := make([]int, 0, len(c.Positions))
	for _, p := range c.Positions {
		if p < 1 || p > total {
			return fmt.Errorf("position %d out of range (1-%d)", p, total)
		}
		indices = append(indices, p-1)
	}
	if c.To < 1 || c.To > total {
		return fmt.Errorf("target position %d out of range (1-%d)", c.To, total)
	}

	j.MoveQuestions(indices, c.To-1)

	fmt.Printf("Moved %d question(s).\n", len(indices))
	fmt.Println("Today's answers have been reset.")
	return nil
}
