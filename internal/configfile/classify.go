package configfile

import (
	"errors"
	"io/fs"
	"os"
)

// Classify maps an error from opening the configuration file to a Kind.
// The boolean is false when err is outside the classified kinds; such errors
// must not be recovered. A nil error classifies as Success.
func Classify(err error) (Kind, bool) {
	switch {
	case err == nil:
		return Success, true
	case errors.Is(err, fs.ErrNotExist):
		return NotFound, true
	case isDirectoryErr(err):
		return IsDirectory, true
	case isBusyErr(err):
		return Busy, true
	}
	return Unopened, false
}

func isBusyErr(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	for _, target := range busyErrnos {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
