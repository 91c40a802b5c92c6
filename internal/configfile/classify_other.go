//go:build !unix

package configfile

// Opening a directory does not fail on these platforms; directories are
// detected after the open from the handle's FileInfo.
var busyErrnos []error

func isDirectoryErr(error) bool { return false }
