// Package console implements the interactive menu loop.
// It is the only layer that reads raw text: it turns menu choices and
// typed tokens into commands and queries, then prints the presenter's output.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gradebook/grade-analyzer/internal/application/command"
	"github.com/gradebook/grade-analyzer/internal/application/query"
	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/interface/console/presenter"
	"github.com/gradebook/grade-analyzer/pkg/logger"
)

// DoneToken ends grade entry. Matched case-insensitively after trimming.
const DoneToken = "done"

// MenuChoice is a validated menu selection.
type MenuChoice int

const (
	ChoiceAddStudent MenuChoice = iota + 1
	ChoiceAddGrades
	ChoiceShowReport
	ChoiceTopPerformer
	ChoiceExit
)

// String returns the operation name used in logs.
func (c MenuChoice) String() string {
	switch c {
	case ChoiceAddStudent:
		return "add_student"
	case ChoiceAddGrades:
		return "add_grades"
	case ChoiceShowReport:
		return "show_report"
	case ChoiceTopPerformer:
		return "top_performer"
	case ChoiceExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Handlers groups the use cases the menu dispatches to.
type Handlers struct {
	AddStudent   *command.AddStudentHandler
	AddGrade     *command.AddGradeHandler
	FindStudent  *query.FindStudentHandler
	Report       *query.GetReportHandler
	TopPerformer *query.GetTopPerformerHandler
}

// Router reads menu choices from in and writes the transcript to out.
type Router struct {
	in        *bufio.Scanner
	out       io.Writer
	handlers  Handlers
	presenter *presenter.Presenter
	log       *logger.Logger

	// lines is fed by the reader goroutine started in Run.
	lines chan string
}

// NewRouter creates a Router. A nil logger discards output.
func NewRouter(in io.Reader, out io.Writer, handlers Handlers, p *presenter.Presenter, log *logger.Logger) *Router {
	if log == nil {
		log = logger.Nop()
	}
	if p == nil {
		p = presenter.New(presenter.PlainTheme())
	}
	return &Router{
		in:        bufio.NewScanner(in),
		out:       out,
		handlers:  handlers,
		presenter: p,
		log:       log.With(logger.Component("console")),
	}
}

// ParseChoice validates a raw menu selection.
// ok is false for non-integers; an integer outside 1-5 returns ok with
// valid=false so the two cases can be reported differently.
func ParseChoice(raw string) (choice MenuChoice, ok bool, valid bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, false
	}
	c := MenuChoice(n)
	return c, true, c >= ChoiceAddStudent && c <= ChoiceExit
}

// IsDone reports whether token is the grade-entry sentinel.
func IsDone(token string) bool {
	return strings.EqualFold(strings.TrimSpace(token), DoneToken)
}

// Run loops until the user exits, input ends, or ctx is cancelled.
// End of input returns nil; cancellation returns ctx.Err() as soon as the
// pending prompt is abandoned, without reading further lines.
func (r *Router) Run(ctx context.Context) error {
	r.log.Info("session started")
	defer r.log.Info("session ended")

	stop := make(chan struct{})
	defer close(stop)
	r.lines = make(chan string)
	go r.readLines(r.lines, stop)

	err := r.loop(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (r *Router) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.printLines(r.presenter.Menu())
		raw, err := r.prompt(ctx, presenter.ChoicePrompt)
		if err != nil {
			return err
		}

		choice, isInt, valid := ParseChoice(raw)
		switch {
		case !isInt:
			r.println(presenter.MsgInvalidChoiceInput)
			continue
		case !valid:
			r.println(presenter.MsgInvalidChoice)
			continue
		}

		if choice == ChoiceExit {
			r.println(presenter.ExitMessage)
			return nil
		}

		if err := r.dispatch(ctx, choice); err != nil {
			return err
		}
	}
}

// dispatch runs one menu command. Domain errors are printed, not returned;
// only input failures and cancellation stop the loop.
func (r *Router) dispatch(ctx context.Context, choice MenuChoice) error {
	correlationID := uuid.New().String()
	log := r.log.With(
		logger.String("correlation_id", correlationID),
		logger.Operation(choice.String()),
	)
	ctx = logger.WithContext(ctx, log)

	start := time.Now()
	log.Debug("dispatching command")
	defer func() { log.Debug("command finished", logger.Latency(time.Since(start))) }()

	switch choice {
	case ChoiceAddStudent:
		return r.addStudent(ctx, correlationID)
	case ChoiceAddGrades:
		return r.addGrades(ctx, correlationID)
	case ChoiceShowReport:
		report, err := r.handlers.Report.Handle(ctx, query.GetReportQuery{})
		if err != nil {
			return r.fail(ctx, err, "")
		}
		r.printLines(r.presenter.Report(report))
	case ChoiceTopPerformer:
		top, err := r.handlers.TopPerformer.Handle(ctx, query.GetTopPerformerQuery{})
		if err != nil {
			return r.fail(ctx, err, "")
		}
		r.println(r.presenter.TopPerformer(top))
	}
	return nil
}

func (r *Router) addStudent(ctx context.Context, correlationID string) error {
	raw, err := r.prompt(ctx, presenter.NamePrompt)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(raw)

	res, err := r.handlers.AddStudent.Handle(ctx, command.AddStudentCommand{
		Name:          name,
		CorrelationID: correlationID,
	})
	if err != nil {
		return r.fail(ctx, err, name)
	}
	r.println(r.presenter.StudentAdded(res))
	return nil
}

func (r *Router) addGrades(ctx context.Context, correlationID string) error {
	raw, err := r.prompt(ctx, presenter.NamePrompt)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(raw)

	found, err := r.handlers.FindStudent.Handle(ctx, query.FindStudentQuery{Name: name})
	if err != nil {
		return r.fail(ctx, err, name)
	}

	log := logger.FromContext(ctx)
	accepted := 0
	defer func() {
		log.Debug("grade entry finished", logger.StudentName(found.Name), logger.Int("accepted", accepted))
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// End of input finishes grade entry like "done".
		token, err := r.prompt(ctx, presenter.GradePrompt)
		if err != nil {
			return err
		}
		if IsDone(token) {
			return nil
		}

		_, err = r.handlers.AddGrade.Handle(ctx, command.AddGradeCommand{
			Name:          found.Name,
			Token:         token,
			CorrelationID: correlationID,
		})
		if err != nil {
			if err := r.fail(ctx, err, found.Name); err != nil {
				return err
			}
			continue
		}
		accepted++
	}
}

// fail prints a domain error. Cancellation is returned instead, so it
// ends the session rather than showing up as a message.
func (r *Router) fail(ctx context.Context, err error, name string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}

	log := logger.FromContext(ctx).With(logger.Err(err))
	switch {
	case shared.IsValidation(err):
		log.Debug("input rejected")
	case shared.IsNotFound(err), shared.IsAlreadyExists(err):
		log.Debug("command refused")
	default:
		log.Error("command failed")
	}

	r.println(r.presenter.Error(err, name))
	return nil
}

// readLines feeds scanned lines to the prompt until input ends or stop closes.
func (r *Router) readLines(lines chan<- string, stop <-chan struct{}) {
	defer close(lines)
	for r.in.Scan() {
		select {
		case lines <- r.in.Text():
		case <-stop:
			return
		}
	}
}

// prompt prints text and waits for the next line. It returns io.EOF when
// input ends and ctx.Err() when ctx is cancelled first.
func (r *Router) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(r.out, text)

	select {
	case <-ctx.Done():
		fmt.Fprintln(r.out)
		return "", ctx.Err()
	case line, ok := <-r.lines:
		if !ok {
			fmt.Fprintln(r.out)
			if err := r.in.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(r.out)
			return "", err
		}
		return line, nil
	}
}

func (r *Router) println(line string) {
	fmt.Fprintln(r.out, line)
}

func (r *Router) printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
}
