package main

import "fmt"

// StepError reports which stage of a run failed and on what input.
type StepError struct {
	Step   string // e.g. "load config", "build deck"
	Target string // file or backend involved, may be empty
	Err    error
}

func (e *StepError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("failed to %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Step, e.Target, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// wrapStep attaches run context to err. A nil err stays nil.
func wrapStep(step, target string, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Step: step, Target: target, Err: err}
}
