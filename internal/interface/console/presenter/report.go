// Package presenter formats application results as console text.
// All user-facing wording lives here; the layers below return typed results.
package presenter

import (
	"errors"
	"fmt"

	"github.com/gradebook/grade-analyzer/internal/application/command"
	"github.com/gradebook/grade-analyzer/internal/domain/roster"
	"github.com/gradebook/grade-analyzer/internal/domain/shared"
)

// Fixed console lines.
const (
	MenuTitle    = "--- Student Grade Analyzer ---"
	ReportTitle  = "--- Student Report ---"
	ReportRule   = "-------------------------"
	ExitMessage  = "Exiting program."
	ChoicePrompt = "Enter your choice: "
	NamePrompt   = "Enter student name: "
	GradePrompt  = "Enter a grade (or 'done' to finish): "

	MsgInvalidChoiceInput = "Invalid input. Please enter a number from 1 to 5."
	MsgInvalidChoice      = "Invalid choice. Please enter a number from 1 to 5."
)

// MenuItems are the numbered menu entries, in order.
var MenuItems = []string{
	"Add a new student",
	"Add grades for a student",
	"Show report (all students)",
	"Find top performer",
	"Exit",
}

// Presenter renders results with a theme.
type Presenter struct {
	theme Theme
}

// New creates a Presenter.
func New(theme Theme) *Presenter {
	return &Presenter{theme: theme}
}

// Menu returns the menu lines, starting with a blank line.
func (p *Presenter) Menu() []string {
	lines := make([]string, 0, len(MenuItems)+2)
	lines = append(lines, "", p.theme.Title.Render(MenuTitle))
	for i, item := range MenuItems {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return lines
}

// StudentAdded formats a successful add.
func (p *Presenter) StudentAdded(res *command.AddStudentResult) string {
	return p.theme.OK.Render(fmt.Sprintf("Student '%s' added successfully.", res.Name))
}

// Report formats a roster report.
func (p *Presenter) Report(r *roster.Report) []string {
	lines := make([]string, 0, len(r.Students)+6)
	lines = append(lines, "", p.theme.Title.Render(ReportTitle))

	for _, s := range r.Students {
		if !s.HasAverage {
			lines = append(lines, fmt.Sprintf("%s's average grade is N/A.", s.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s's average grade is %.1f.", s.Name, s.Average))
	}

	lines = append(lines, p.theme.Rule.Render(ReportRule))

	summary, err := r.Summary()
	if err != nil {
		return append(lines, "No grades have been entered for any student.")
	}

	return append(lines,
		fmt.Sprintf("Max Average: %.1f", summary.Max),
		fmt.Sprintf("Min Average: %.1f", summary.Min),
		fmt.Sprintf("Overall Average: %.1f", summary.Overall),
	)
}

// TopPerformer formats the top performer line.
func (p *Presenter) TopPerformer(top *roster.TopPerformer) string {
	return fmt.Sprintf("The student with the highest average is %s with a grade of %.1f.", top.Name, top.Average)
}

// Error maps a domain error to its console message. name is the student
// name the user typed, already trimmed.
func (p *Presenter) Error(err error, name string) string {
	return p.theme.Fail.Render(ErrorMessage(err, name))
}

// ErrorMessage is the unstyled form of Error.
func ErrorMessage(err error, name string) string {
	switch {
	case errors.Is(err, shared.ErrEmptyName):
		return "Name cannot be empty."
	case errors.Is(err, shared.ErrDuplicateStudent):
		return fmt.Sprintf("Student '%s' already exists.", name)
	case errors.Is(err, shared.ErrStudentNotFound):
		return fmt.Sprintf("No student found with the name '%s'.", name)
	case errors.Is(err, shared.ErrInvalidGradeFormat):
		return "Invalid input. Please enter a number."
	case errors.Is(err, shared.ErrGradeOutOfRange):
		return "Grade must be between 0 and 100."
	case errors.Is(err, shared.ErrEmptyRoster):
		return "No students available."
	case errors.Is(err, shared.ErrNoGradesRecorded):
		return "No students with valid grades to evaluate."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
