package city

import (
	"errors"
	"fmt"

	"github.com/conn-castle/smart-city/internal/messages"
)

// ErrSubsystemNotFound matches any SubsystemNotFoundError with errors.Is.
var ErrSubsystemNotFound = errors.New("subsystem not found")

// SubsystemNotFoundError reports a lookup of a subsystem name the city does not have.
type SubsystemNotFoundError struct {
	Name string
}

func (e *SubsystemNotFoundError) Error() string {
	return fmt.Sprintf(messages.SubsystemNotFoundErrFmt, e.Name)
}

// Is reports whether target is ErrSubsystemNotFound.
func (e *SubsystemNotFoundError) Is(target error) bool {
	return target == ErrSubsystemNotFound
}

// UserMessage renders the error the way the console shows it.
func (e *SubsystemNotFoundError) UserMessage() string {
	return fmt.Sprintf(messages.SubsystemNotFoundFmt, e.Name)
}
