// Package prompt asks for a line of text on the terminal.
package prompt

import (
	"context"
	"io"

	"github.com/manifoldco/promptui"
)

// Line is a blocking single-line prompt. It satisfies router.Prompter.
//
// Stdin and Stdout default to the process's own. When Prompt returns because
// its context is done, the goroutine running the prompt stays blocked on
// Stdin until the next line arrives or Stdin is closed; its answer is dropped.
type Line struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

type result struct {
	text string
	err  error
}

// Prompt shows label and waits for the user to submit. It returns early with
// ctx.Err() when ctx is done first.
func (l Line) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}
	p := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Stdin:     l.Stdin,
		Stdout:    l.Stdout,
	}

	done := make(chan result, 1)
	go func() {
		text, err := p.Run()
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.text, r.err
	}
}
