package configfile

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/lc/configopen/internal/filesys"
)

// DefaultPath is the configuration file name, resolved against the working
// directory at the time of the attempt.
const DefaultPath = "config.txt"

// Opener attempts to open a single path through a filesystem.
type Opener struct {
	fs   filesys.Opener
	path string
}

// New returns an Opener for DefaultPath on the local disk.
func New() *Opener {
	return NewWithPath(filesys.OS(), DefaultPath)
}

// NewWithPath returns an Opener for path on fs.
func NewWithPath(fs filesys.Opener, path string) *Opener {
	return &Opener{
		fs:   fs,
		path: path,
	}
}

// Path returns the path the Opener attempts.
func (o *Opener) Path() string { return o.path }

// Attempt opens the path once and classifies the result. Classified failures
// are reported through the Outcome with a nil error. Any other failure is
// returned as an error and the Outcome is Unopened.
//
// A handle obtained from the filesystem is always closed before Attempt
// returns; a close failure is reported as an error.
func (o *Opener) Attempt() (out Outcome, err error) {
	out.Path = o.path

	f, err := o.fs.Open(o.path)
	if err != nil {
		if kind, ok := Classify(err); ok {
			out.Kind = kind
			return out, nil
		}
		return Outcome{Path: o.path}, fmt.Errorf("opening config file: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	// open(2) succeeds on directories; the handle has to be inspected.
	info, err := f.Stat()
	if err != nil {
		if kind, ok := Classify(err); ok {
			out.Kind = kind
			return out, nil
		}
		return Outcome{Path: o.path}, fmt.Errorf("opening config file: %w", err)
	}
	if info.IsDir() {
		out.Kind = IsDirectory
		return out, nil
	}

	out.Kind = Success
	return out, nil
}
