// Package app runs an interactive practice session over plain text
// streams. It drives the quiz package only through its public API, so the
// same flow is scriptable from tests.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/numberninja/internal/progress"
	"github.com/abhisek/numberninja/internal/quiz"
)

// Options configures a session run.
type Options struct {
	Kind     progress.QuizKind
	Progress *progress.Store

	In  io.Reader
	Out io.Writer

	// SessionOpts are passed through to quiz.NewSession (rand/clock
	// injection for tests).
	SessionOpts []quiz.SessionOption
}

// Run plays one full session, prompting for each answer on opts.In and
// writing feedback to opts.Out. It returns the finished session so callers
// can inspect the score. An input stream that ends early abandons the
// session without recording anything.
func Run(ctx context.Context, opts Options) (*quiz.Session, error) {
	s := quiz.NewSession(opts.Kind, opts.Progress, opts.SessionOpts...)
	in := bufio.NewScanner(opts.In)
	out := opts.Out

	fmt.Fprintf(out, "%s Quiz — %d questions. Let's go!\n", opts.Kind.DisplayName(), quiz.TotalQuestions)

	for s.State() == quiz.StateAwaitingAnswer {
		fmt.Fprintf(out, "\nQuestion %d/%d:  %s\n", s.Index()+1, quiz.TotalQuestions, s.QuestionText())

		answered := false
		for !answered {
			fmt.Fprint(out, "Your answer: ")
			if !in.Scan() {
				if err := in.Err(); err != nil {
					return s, fmt.Errorf("read answer: %w", err)
				}
				fmt.Fprintln(out, "\nSession abandoned.")
				return s, nil
			}
			text := strings.TrimSpace(in.Text())
			if text == "" {
				continue
			}

			res, err := s.SubmitAnswer(text)
			if err != nil {
				fmt.Fprintln(out, "Please enter a number.")
				continue
			}
			answered = true

			if res.Correct {
				fmt.Fprintln(out, "Correct! 🎉")
				if res.Special {
					fmt.Fprintln(out, "6-7 🎉 That's sixty-seven!")
				}
			} else {
				fmt.Fprintf(out, "Not quite. The answer is %d.\n", res.CorrectAnswer)
			}
		}

		s.Advance(ctx)
	}

	fmt.Fprintf(out, "\nHomework complete! You scored %d/%d.\n", s.Score(), quiz.TotalQuestions)
	return s, nil
}
