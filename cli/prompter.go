package cli

import "github.com/AlecAivazis/survey/v2"

// Prompter collects answers from the user. The session depends on this
// interface so it can be driven by a script in tests instead of a
// terminal.
type Prompter interface {
	Text(message string) (string, error)
	Confirm(message string) (bool, error)
}

// SurveyPrompter asks questions on the terminal.
type SurveyPrompter struct{}

func (SurveyPrompter) Text(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (SurveyPrompter) Confirm(message string) (bool, error) {
	var answer bool
	if err := survey.AskOne(&survey.Confirm{Message: message}, &answer); err != nil {
		return false, err
	}
	return answer, nil
}
