package health

import (
	"context"
	"fmt"
	"os"
)

// DirCheck fails unless dir exists and is a directory.
func DirCheck(dir string) CheckFunc {
	return func(context.Context) error {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrCheckFailed, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", ErrCheckFailed, dir)
		}
		return nil
	}
}
