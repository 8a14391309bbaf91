package script

import (
	"context"
	"fmt"
	"time"
)

// WaitAction is the step keyword that pauses the script.
const WaitAction = "wait"

// Script represents a parsed RCX command script.
type Script struct {
	// Steps are the script steps in file order
	Steps []*Step
}

// Step represents a single script line.
type Step struct {
	// Line is the 1-based source line number
	Line int

	// Action is a catalog action name or WaitAction
	Action string

	// Args are the integer action arguments (e.g. the motor index)
	Args []int

	// Wait is the pause duration of a WaitAction step
	Wait time.Duration
}

// Runner executes catalog actions. *remote.Sender satisfies it.
type Runner interface {
	Do(ctx context.Context, action string, args ...int) error
}

// Run executes every step in order against r.
// Wait steps sleep for their duration; the context cancels both.
//
// Example:
//
//	sc, _ := script.Parse("square.rcx")
//	err := sc.Run(ctx, remote.New(port))
func (s *Script) Run(ctx context.Context, r Runner) error {
	for _, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		if err := step.Run(ctx, r); err != nil {
			return fmt.Errorf("line %d: %w", step.Line, err)
		}
	}
	return nil
}

// Run executes a single step against r.
func (s *Step) Run(ctx context.Context, r Runner) error {
	if s.Action == WaitAction {
		return sleep(ctx, s.Wait)
	}

	if err := r.Do(ctx, s.Action, s.Args...); err != nil {
		return fmt.Errorf("%s: %w", s.Action, err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("cancelled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
