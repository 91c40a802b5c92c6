// Package configfile performs the one-shot open of the configuration file and
// classifies the result.
//
// # Outcomes
//
// An attempt moves from Unopened to exactly one of:
//
//	Success      the path is a readable regular file
//	NotFound     nothing exists at the path
//	IsDirectory  the path names a directory
//	Busy         the open would block or timed out
//
// Each failure kind carries a fixed, user-facing message (see Kind.Message).
// Success carries none.
//
// # Basic Usage
//
//	out, err := configfile.New().Attempt()
//	if err != nil {
//		log.Fatal(err) // not one of the classified kinds
//	}
//	_ = configfile.Report(os.Stdout, out)
//
// # Error Handling
//
// Only the three kinds above are recovered. Any other failure (permission
// denied, too many open files, I/O error, invalid path) is returned to the
// caller wrapped with "opening config file", and must be treated as fatal.
//
// The handle obtained on success is closed before Attempt returns; nothing
// is ever read from it.
package configfile
