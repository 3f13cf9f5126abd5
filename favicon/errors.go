package favicon

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the source path does not resolve to an
// existing file. Nothing has been processed or written when it is returned.
var ErrSourceNotFound = errors.New("source file not found")

// Stage names the step of a run that failed.
type Stage string

// Processing stages.
const (
	StageDecode Stage = "decode"
	StageResize Stage = "resize"
	StageEncode Stage = "encode"
	StageWrite  Stage = "write"
)

// ProcessingError is returned when decoding the source, or resizing,
// encoding or writing an artifact fails. Artifacts written before the
// failure are not rolled back.
type ProcessingError struct {
	Stage Stage
	// Artifact is empty for failures concerning the source.
	Artifact string
	Err      error
}

func (e *ProcessingError) Error() string {
	if e.Artifact == "" {
		return fmt.Sprintf("failed to %s source: %s", e.Stage, e.Err)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Stage, e.Artifact, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
