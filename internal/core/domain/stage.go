package domain

import "errors"

// Stage identifies the phase of the build pipeline an error originated from.
// The same underlying condition (e.g. a missing path) means different things
// at different stages, so every failure carries its stage.
type Stage string

const (
	// StageClassification covers project inspection and strategy selection.
	StageClassification Stage = "classification"
	// StageComposition covers flag composition.
	StageComposition Stage = "composition"
	// StageInvocation covers toolchain process execution.
	StageInvocation Stage = "invocation"
)

// StageError attaches the originating pipeline stage to a build error.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

// Unwrap exposes the underlying error for errors.Is/As matching.
func (e *StageError) Unwrap() error {
	return e.Err
}

// AtStage wraps err with its originating stage. A nil err stays nil.
func AtStage(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

// StageOf reports the stage attached to err, if any.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
