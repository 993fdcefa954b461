package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
	"slacks-cli/internal/interfaces"
)

// ErrNoInput is returned when input ends before an answer is accepted
var ErrNoInput = errors.New("no input")

// NewConsole returns a survey-backed console when stdin is a terminal and a
// plain line console otherwise
func NewConsole(in *os.File, out io.Writer) interfaces.Console {
	if term.IsTerminal(int(in.Fd())) {
		return NewSurveyConsole(in, out)
	}
	return NewLineConsole(in, out)
}

// LineConsole prompts with "description [current]: " and reads one line per answer
type LineConsole struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineConsole creates a console reading answers from in
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Prompt writes the prompt and returns the trimmed line that follows
func (c *LineConsole) Prompt(description string, current *string) (string, error) {
	if _, err := fmt.Fprintf(c.out, "%s [%s]: ", description, interfaces.Display(current)); err != nil {
		return "", err
	}

	line, err := c.reader.ReadString('\n')
	if err != nil {
		// A final line without newline still counts as an answer
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Warn writes the rejection reason on its own line
func (c *LineConsole) Warn(message string) error {
	_, err := fmt.Fprintln(c.out, message)
	return err
}

// Println writes an informational line
func (c *LineConsole) Println(message string) error {
	_, err := fmt.Fprintln(c.out, message)
	return err
}

// SurveyConsole uses survey inputs with the current value as default
type SurveyConsole struct {
	in  *os.File
	out io.Writer
}

// NewSurveyConsole creates a console for interactive terminals
func NewSurveyConsole(in *os.File, out io.Writer) *SurveyConsole {
	return &SurveyConsole{in: in, out: out}
}

// Prompt asks with survey.Input; an empty answer yields the current value
func (c *SurveyConsole) Prompt(description string, current *string) (string, error) {
	prompt := &survey.Input{
		Message: description + ":",
	}
	if current != nil {
		prompt.Default = *current
	} else {
		prompt.Help = "No current value (None)"
	}

	var answer string
	opts := []survey.AskOpt{}
	if f, ok := c.out.(*os.File); ok {
		opts = append(opts, survey.WithStdio(c.in, f, os.Stderr))
	}
	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

// Warn prints the rejection reason
func (c *SurveyConsole) Warn(message string) error {
	_, err := fmt.Fprintf(c.out, "✗ %s\n", message)
	return err
}

// Println writes an informational line
func (c *SurveyConsole) Println(message string) error {
	_, err := fmt.Fprintln(c.out, message)
	return err
}
