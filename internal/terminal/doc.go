// Package terminal hosts the onboarding wizard in an interactive terminal.
//
// All interaction goes through a PromptDriver. NewSurveyDriver provides the
// real one on top of github.com/AlecAivazis/survey/v2; tests script a fake.
package terminal
