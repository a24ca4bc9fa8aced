package services

import (
	"errors"
	"fmt"
)

// Step names the remote operation a workflow was in when it failed, so the
// user-facing message can say which step broke.
type Step string

const (
	StepFolderCreate Step = "folder creation"
	StepUpload       Step = "document upload"
	StepRowInsert    Step = "row insert"
	StepCellUpdate   Step = "cell update"
	StepSheetRead    Step = "register read"
)

// FieldError is a validation failure on a specific input field. It is raised
// before any remote call is made.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// StepError is a remote I/O failure at a named workflow step. Detail carries
// the document slot or cell involved when there is one.
type StepError struct {
	Step   Step
	Detail string
	Err    error
}

func (e *StepError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s failed (%s): %v", e.Step, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// ErrRecordNotFound is returned when a row identity cannot be relocated in a
// fresh register snapshot. No remote mutation happens in that case.
var ErrRecordNotFound = errors.New("record not found in register")
