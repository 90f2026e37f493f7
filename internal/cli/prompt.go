package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

const mealPrompt = "Enter the meal you ate:"

// Prompter reads the one meal description a run logs. An empty string means
// the user gave no input.
type Prompter interface {
	ReadMeal(ctx context.Context) (string, error)
}

// NewPrompter returns an interactive form when in is a terminal and a plain
// line reader otherwise (pipes, redirected files).
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return &FormPrompter{in: in, out: out}
	}
	return NewLinePrompter(in, out)
}

type FormPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *FormPrompter) ReadMeal(ctx context.Context) (string, error) {
	var meal string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(mealPrompt).
			Placeholder("e.g. two scrambled eggs and a slice of toast").
			Value(&meal),
	)).
		WithInput(p.in).
		WithOutput(p.out).
		WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return meal, nil
}

type LinePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

func NewLinePrompter(r io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), out: out}
}

// ReadMeal reads up to the first newline. EOF before any text is empty input.
func (p *LinePrompter) ReadMeal(_ context.Context) (string, error) {
	if _, err := fmt.Fprint(p.out, mealPrompt+" "); err != nil {
		return "", err
	}

	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
