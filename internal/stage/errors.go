package stage

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStage matches any *InvalidStageError via errors.Is.
	ErrInvalidStage = errors.New("stage: invalid stage")
	// ErrNoNextStage is returned when advancing past the last stage.
	ErrNoNextStage = errors.New("stage: no next stage")
	// ErrNoPreviousStage is returned when retreating before the first stage.
	ErrNoPreviousStage = errors.New("stage: no previous stage")
)

// InvalidStageError reports an id that is not part of the registry.
type InvalidStageError struct {
	ID ID
}

func (e *InvalidStageError) Error() string {
	return fmt.Sprintf("stage: %q is not a registered stage", string(e.ID))
}

// Is lets errors.Is(err, ErrInvalidStage) match.
func (e *InvalidStageError) Is(target error) bool {
	return target == ErrInvalidStage
}
