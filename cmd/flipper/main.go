package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	authcmd "github.com/catalystcommunity/flipper/v1/cmd/flipper/commands/auth"
	dnscmd "github.com/catalystcommunity/flipper/v1/cmd/flipper/commands/dns"
	"github.com/catalystcommunity/flipper/v1/internal/record"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Exit codes reported to the shell
const (
	exitFailure      = 1
	exitConfig       = 2
	exitValidation   = 3
	exitNotFound     = 4
	exitAuth         = 5
	exitTransport    = 6
	exitPartialBatch = 7
)

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "flipper",
		Usage:   "Flip NS1 DNS records between primary and secondary sites",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		Flags:   dnscmd.GlobalFlags(),
		Commands: append(dnscmd.Commands(),
			authcmd.Command(),
		),
	}
}

// exitCode maps an error to the process exit status. A partial batch is
// checked first since its per-record causes may wrap other kinds.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, record.ErrPartialBatch):
		return exitPartialBatch
	case errors.Is(err, record.ErrConfig):
		return exitConfig
	case errors.Is(err, record.ErrValidation):
		return exitValidation
	case errors.Is(err, record.ErrNotFound):
		return exitNotFound
	case errors.Is(err, record.ErrAuth):
		return exitAuth
	case errors.Is(err, record.ErrTransport):
		return exitTransport
	default:
		return exitFailure
	}
}

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
