package dns

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/flipper/v1/internal/flipper"
	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// newFlipCommand replaces the values of one record
func newFlipCommand() *cli.Command {
	return &cli.Command{
		Name:      "flip",
		Usage:     "Replace a record's values",
		ArgsUsage: "<fqdn> <record_type> <zone> <new_values...>",
		Description: `Replace the complete answer set of a record with the given values.
The previous values are fetched first and printed next to the new ones.

If the record does not exist the update is still attempted; with
--create-missing (or create_missing: true in settings) it is created instead.

Examples:
  flipper flip www.example.com A example.com 192.0.2.10 192.0.2.11
  flipper flip app.example.com CNAME example.com app-west.example.com`,
		Action: runFlip,
	}
}

func runFlip(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() < 3 {
		return fmt.Errorf("%w: requires at least 4 arguments: <fqdn> <record_type> <zone> <new_values...>", record.ErrValidation)
	}

	key, err := record.NewKey(args.Get(2), args.Get(0), args.Get(1))
	if err != nil {
		return err
	}

	req := flipper.Request{Key: key, Values: record.Values(args.Slice()[3:])}
	if err := req.Validate(); err != nil {
		return err
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	res, err := svc.Flip(ctx, req)
	if err != nil {
		if res != nil && res.PreviousMissing {
			fmt.Fprintf(stdout(cmd), "No previous value for %s\n", key)
		}
		return fmt.Errorf("failed to flip %s: %w", key.Domain, err)
	}

	flipper.WriteResult(stdout(cmd), res)
	return nil
}
