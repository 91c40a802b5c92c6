package configfile

import (
	"fmt"
	"io"
)

// Kind is the classified result of an open attempt.
type Kind int

const (
	// Unopened is the zero value: no attempt has been classified.
	Unopened Kind = iota
	// Success means the file was opened (and closed again).
	Success
	// NotFound means no entry exists at the path.
	NotFound
	// IsDirectory means the path exists but is a directory.
	IsDirectory
	// Busy means the open would block or timed out.
	Busy
)

const (
	msgNotFound    = "Couldn't find the config.txt file!"
	msgIsDirectory = "Found config.txt but it is a directory, couldn't read it"
	msgBusy        = "Filesystem under heavy load, can't complete reading configuration file"
)

func (k Kind) String() string {
	switch k {
	case Unopened:
		return "unopened"
	case Success:
		return "success"
	case NotFound:
		return "not-found"
	case IsDirectory:
		return "is-directory"
	case Busy:
		return "busy"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Message returns the line printed for k, or "" when nothing is printed.
func (k Kind) Message() string {
	switch k {
	case NotFound:
		return msgNotFound
	case IsDirectory:
		return msgIsDirectory
	case Busy:
		return msgBusy
	default:
		return ""
	}
}

// Outcome is the result of a single Attempt.
type Outcome struct {
	Kind Kind
	Path string
}

// Failed reports whether o is one of the classified failures.
func (o Outcome) Failed() bool {
	return o.Kind == NotFound || o.Kind == IsDirectory || o.Kind == Busy
}

// Report writes the message for o to w as a single line. Nothing is written
// for Success or Unopened.
func Report(w io.Writer, o Outcome) error {
	msg := o.Kind.Message()
	if msg == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}
