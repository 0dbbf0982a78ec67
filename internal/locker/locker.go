package locker

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotAcquired = errors.New("lock not acquired")

// Locker serializes work on a key. The returned unlock func is safe to call
// more than once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

func EmployeeKey(employeeID uint) string {
	return fmt.Sprintf("turnos:empleado:%d", employeeID)
}
