package intern

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by errors returned for IDs a table never issued.
var ErrOutOfRange = errors.New("intern: id out of range")

// OutOfRangeError is returned when an ID is not below the table's length,
// for example an ID taken from a different table.
type OutOfRangeError struct {
	ID  ID
	Len int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("intern: id %d out of range [0, %d)", e.ID, e.Len)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
