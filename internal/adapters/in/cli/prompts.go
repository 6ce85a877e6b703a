package cli

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// prompter collects raw answers from the operator.
type prompter interface {
	Select(message string, options []string) (string, error)
	Input(message string, validate func(string) error) (string, error)
	Confirm(message string) (bool, error)
	Pause() error
}

// surveyPrompter asks on the terminal with survey.
type surveyPrompter struct {
	opts []survey.AskOpt
}

func newSurveyPrompter(opts ...survey.AskOpt) *surveyPrompter {
	return &surveyPrompter{opts: opts}
}

func (p *surveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 50,
	}
	err := survey.AskOne(prompt, &answer, p.opts...)
	return answer, err
}

func (p *surveyPrompter) Input(message string, validate func(string) error) (string, error) {
	var answer string
	opts := p.opts
	if validate != nil {
		opts = append(opts[:len(opts):len(opts)], survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	err := survey.AskOne(&survey.Input{Message: message}, &answer, opts...)
	return answer, err
}

func (p *surveyPrompter) Confirm(message string) (bool, error) {
	var ok bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &ok, p.opts...)
	return ok, err
}

func (p *surveyPrompter) Pause() error {
	var discard string
	return survey.AskOne(&survey.Input{Message: "Press enter to continue..."}, &discard, p.opts...)
}

// isInterrupt reports whether the operator aborted a prompt with Ctrl+C.
func isInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}
