package vectorx

import (
	"errors"
	"fmt"
)

// ErrElementCopy marks any failure raised by a Traits.Copy hook. The hook's
// own error remains reachable through errors.Is/As.
var ErrElementCopy = errors.New("vectorx: element copy failed")

func copyErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrElementCopy, op, err)
}
