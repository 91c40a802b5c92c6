// Command configopen tries to open config.txt in the current working
// directory and explains, on stdout, why it could not.
//
// Usage:
//
//	configopen
//
// The command takes no arguments. It prints nothing when the file opens,
// and one line when it is missing, is a directory, or the filesystem is too
// busy to complete the open. Those cases exit 0. Any other failure is logged
// to stderr and the process exits 1.
package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lc/configopen/internal/buildinfo"
	"github.com/lc/configopen/internal/configfile"
	"github.com/lc/configopen/internal/log"
)

func main() {
	root := newRootCmd(configfile.New(), os.Stdout)
	if err := root.Execute(); err != nil {
		log.Fatal("config file attempt failed", "error", err)
	}
	log.Sync()
}

func newRootCmd(opener *configfile.Opener, stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "configopen",
		Short: "Open config.txt and report why it cannot be read",
		Long: `configopen opens config.txt in the current directory for reading.

Nothing is printed when the file opens. A single line is printed when
config.txt is missing, is a directory, or the filesystem is too busy to
complete the open. Any other failure is fatal.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opener, cmd.OutOrStdout())
		},
	}
	root.SetOut(stdout)
	return root
}

func run(opener *configfile.Opener, stdout io.Writer) error {
	runID := uuid.NewString()
	log.Debug("opening config file",
		"run", runID,
		"path", opener.Path(),
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
	)

	out, err := opener.Attempt()
	if err != nil {
		return err
	}
	log.Debug("config file attempt classified", "run", runID, "outcome", out.Kind.String())

	return configfile.Report(stdout, out)
}
