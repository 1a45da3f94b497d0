package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
	"github.com/secmon-lab/surveyor/pkg/usecase"
)

// Screen is the interactive terminal front end of the survey. It asks
// questions, shows notices and tracks the current route.
type Screen struct {
	in  *bufio.Reader
	out io.Writer

	startReader sync.Once
	lines       chan string
	readErr     error

	mu    sync.Mutex
	route types.Route
}

var (
	_ interfaces.Navigator = (*Screen)(nil)
	_ usecase.Prompter     = (*Screen)(nil)
)

// NewScreen creates a Screen reading from in and writing to out
func NewScreen(in io.Reader, out io.Writer) *Screen {
	return &Screen{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan string),
		route: types.RouteHome,
	}
}

// Route returns the route the screen currently shows
func (s *Screen) Route() types.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

// Navigate implements interfaces.Navigator
func (s *Screen) Navigate(ctx context.Context, route types.Route) error {
	if !route.IsValid() {
		return goerr.New("unknown route", goerr.V("route", route))
	}

	s.mu.Lock()
	prev := s.route
	s.route = route
	s.mu.Unlock()

	ctxlog.From(ctx).Debug("navigated", "from", prev, "to", route)
	if route == types.RouteDashboard && prev != types.RouteDashboard {
		s.printf("\nThank you! All questions are answered.\n")
	}
	return nil
}

// Ask implements usecase.Prompter. Answers are chosen by their 1-based
// number as printed; the result is the matching answer control.
func (s *Screen) Ask(ctx context.Context, question *model.Question) (string, error) {
	s.printf("\nQuestion %d of %d\n%s\n", question.Number, model.QuestionCount, question.Text)
	for i, answer := range question.Answers {
		s.printf("  %d) %s\n", i+1, answer)
	}
	s.printf("> ")

	line, err := s.readLine(ctx)
	if err != nil {
		return "", err
	}

	choice, err := strconv.Atoi(line)
	if err != nil {
		// Unparseable input maps to a control the submitter will reject
		return usecase.AnswerControl(-1), nil
	}
	return usecase.AnswerControl(choice - 1), nil
}

// Notice implements usecase.Prompter
func (s *Screen) Notice(ctx context.Context, message string) {
	if message == "" {
		return
	}
	s.printf("! %s\n", message)
}

// readLine reads one trimmed line. It returns early when ctx is cancelled;
// a line that arrives afterwards is kept for the next read.
func (s *Screen) readLine(ctx context.Context) (string, error) {
	s.startReader.Do(func() { go s.readLoop() })

	select {
	case <-ctx.Done():
		return "", goerr.Wrap(ctx.Err(), "input cancelled")
	case line, ok := <-s.lines:
		if !ok {
			return "", goerr.Wrap(s.readErr, "failed to read answer")
		}
		return line, nil
	}
}

// readLoop is the only reader of s.in. It closes s.lines once input ends.
func (s *Screen) readLoop() {
	for {
		line, err := s.in.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			s.readErr = err
			close(s.lines)
			return
		}
		s.lines <- strings.TrimSpace(line)
	}
}

func (s *Screen) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
