package options

import (
	"context"
	"errors"
)

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
