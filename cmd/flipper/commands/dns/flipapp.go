package dns

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/flipper/v1/internal/flipconfig"
	"github.com/catalystcommunity/flipper/v1/internal/flipper"
	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// newFlipAppCommand flips every record of an application
func newFlipAppCommand() *cli.Command {
	return &cli.Command{
		Name:    "flip_app",
		Aliases: []string{"flip-app"},
		Usage:   "Flip all records of an application to its primary or secondary site",
		Description: `Flip DNS records for an application based on a flip definition file.
Records are processed in file order. A record that fails does not stop the
others; a summary of every record is printed and the command exits non-zero
if any record failed.

Use -list to show the applications in the file, or -list -app <name> to show
an application's definitions next to the values currently served.

Definition file format:
  [app_name]
  fqdn: <fqdn> <record_type> [zone]
  primary: <value>[,<value>...]
  secondary: <value>[,<value>...]

Examples:
  flipper flip_app -file flips.txt -app payments -site secondary
  flipper flip_app -file flips.txt -list`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "path to the flip definition file",
			},
			&cli.StringFlag{
				Name:  "app",
				Usage: "application name",
			},
			&cli.StringFlag{
				Name:  "site",
				Usage: "site to flip to (primary or secondary)",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "list available applications instead of flipping",
			},
		},
		Action: runFlipApp,
	}
}

func runFlipApp(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("file")
	app := cmd.String("app")
	if path == "" {
		return fmt.Errorf("%w: -file is required", record.ErrValidation)
	}

	defs, err := flipconfig.Load(path)
	if err != nil {
		return err
	}

	out := stdout(cmd)

	if cmd.Bool("list") {
		if app == "" {
			flipper.WriteApplications(out, defs)
			return nil
		}
		return describeApp(ctx, cmd, out, defs, app)
	}

	if app == "" || cmd.String("site") == "" {
		return fmt.Errorf("%w: -app and -site are required unless -list is specified", record.ErrValidation)
	}
	site, err := record.ParseSite(cmd.String("site"))
	if err != nil {
		return err
	}
	if _, ok := defs.Lookup(app); !ok {
		return unknownAppError(defs, app)
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Flipping records for application: %s (site: %s)\n", app, site)
	summary, err := svc.FlipApp(ctx, defs, app, site)
	if summary != nil {
		flipper.WriteSummary(out, summary)
	}
	return err
}

// describeApp prints an application's definitions alongside the values the
// provider currently serves
func describeApp(ctx context.Context, cmd *cli.Command, out io.Writer, defs *flipconfig.File, app string) error {
	application, ok := defs.Lookup(app)
	if !ok {
		return unknownAppError(defs, app)
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfig for %s:\n", app)
	for _, r := range application.Records {
		fmt.Fprintf(out, "FQDN: %s\n", r.FQDN)
		fmt.Fprintf(out, "Primary: %s\n", r.Primary)
		fmt.Fprintf(out, "Secondary: %s\n", r.Secondary)

		live, err := svc.Check(ctx, r.FQDN)
		if err != nil {
			fmt.Fprintf(out, "  %v\n\n", err)
			continue
		}
		for _, l := range live {
			fmt.Fprintf(out, "-- FQDN: %s\n", l.Key.Domain)
			fmt.Fprintf(out, "   Zone: %s\n", l.Key.Zone)
			fmt.Fprintf(out, "   Record Type: %s\n", l.Key.Type)
			fmt.Fprintf(out, "   Record Values: %s\n\n", l.Values)
		}
	}
	return nil
}

func unknownAppError(defs *flipconfig.File, app string) error {
	return fmt.Errorf("%w: unknown application %q (available: %s)", record.ErrNotFound, app, strings.Join(defs.Names(), ", "))
}
