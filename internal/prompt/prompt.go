// Package prompt wraps interactive confirmation behind an interface so
// command code can be tested without a real terminal.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// Prompt configures a yes/no style question.
type Prompt struct {
	Message string
	Default bool
	Help    string
}

// Confirmer asks a single yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, cfg Prompt) (bool, error)
}

type surveyConfirmer struct{}

var _ Confirmer = (*surveyConfirmer)(nil)

// NewSurveyConfirmer returns a Confirmer backed by an interactive terminal
// prompt.
func NewSurveyConfirmer() Confirmer {
	return &surveyConfirmer{}
}

func (c *surveyConfirmer) Confirm(ctx context.Context, cfg Prompt) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	question := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(question, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
