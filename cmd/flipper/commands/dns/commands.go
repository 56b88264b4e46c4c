// Package dns holds the record inspection and failover commands.
package dns

import "github.com/urfave/cli/v3"

// Commands returns the check, flip and flip_app commands.
//
// Typical failover:
//  1. flipper flip_app -file flips.txt -list            - see what is defined
//  2. flipper flip_app -file flips.txt -list -app shop  - compare with live values
//  3. flipper flip_app -file flips.txt -app shop -site secondary
//  4. flipper check www.example.com                     - confirm
func Commands() []*cli.Command {
	return []*cli.Command{
		newCheckCommand(),
		newFlipCommand(),
		newFlipAppCommand(),
	}
}
