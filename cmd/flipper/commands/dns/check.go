package dns

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/flipper/v1/internal/flipper"
	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// newCheckCommand displays the current values of a record
func newCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Show the A/CNAME records for a name",
		ArgsUsage: "<fqdn>",
		Description: `Look up the records the provider serves for a fully qualified domain
name and print zone, type and values. The zone and record type are found by
searching the provider. Nothing is modified.

Example:
  flipper check www.example.com`,
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("%w: requires 1 argument: <fqdn>", record.ErrValidation)
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	records, err := svc.Check(ctx, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	flipper.WriteRecords(stdout(cmd), records)
	return nil
}
