//go:build unix

package configfile

import (
	"errors"
	"syscall"
)

// busyErrnos are the errno values meaning the open could not complete
// immediately: the would-block family and ETIMEDOUT.
var busyErrnos = []error{
	syscall.EAGAIN,
	syscall.EWOULDBLOCK,
	syscall.EALREADY,
	syscall.EINPROGRESS,
	syscall.ETIMEDOUT,
}

func isDirectoryErr(err error) bool {
	return errors.Is(err, syscall.EISDIR)
}
