// Package auth stores and removes the NS1 API key.
package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/catalystcommunity/flipper/v1/internal/config"
	"github.com/catalystcommunity/flipper/v1/internal/record"
	"github.com/catalystcommunity/flipper/v1/internal/secrets"
)

// Command returns the auth command group
func Command() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the NS1 API key",
		Description: `Store or remove the API key used for NS1 requests.

The key is looked up in this order:
  1. NSONE_API_KEY environment variable
  2. credentials file (~/.flipper/credentials, or credentials_file in settings)
  3. OS keyring (service "flipper")

Commands:
  flipper auth login           - Prompt for a key and store it in the keyring
  flipper auth login --file    - Store it in the credentials file instead
  flipper auth logout          - Remove the key from the keyring`,
		Commands: []*cli.Command{
			newLoginCommand(),
			newLogoutCommand(),
		},
	}
}

func newLoginCommand() *cli.Command {
	return &cli.Command{
		Name:      "login",
		Usage:     "Store the NS1 API key",
		ArgsUsage: "[api-key]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "file",
				Usage: "write the key to the credentials file instead of the keyring",
			},
		},
		Action: runLogin,
	}
}

func newLogoutCommand() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Remove the NS1 API key from the keyring",
		Action: runLogout,
	}
}

func runLogin(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}

	key := strings.TrimSpace(cmd.Args().First())
	if key == "" {
		var err error
		key, err = promptKey(cmd.Root().Reader, out)
		if err != nil {
			return err
		}
	}
	if key == "" {
		return fmt.Errorf("%w: api key cannot be empty", record.ErrValidation)
	}

	if !cmd.Bool("file") {
		if err := secrets.StoreAPIKey(key); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ API key stored in keyring (service %q)\n", secrets.KeyringService)
		return nil
	}

	settings, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return err
	}
	path, err := settings.CredentialsPath()
	if err != nil {
		return fmt.Errorf("%w: %v", record.ErrConfig, err)
	}
	if err := secrets.WriteCredentialsFile(path, secrets.APIKeyName, key); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ API key written to %s\n", path)
	return nil
}

func runLogout(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}

	if err := secrets.ClearAPIKey(); err != nil {
		return err
	}
	fmt.Fprintln(out, "✓ API key removed from keyring")
	return nil
}

// promptKey reads the key without echo on a terminal, or as one line from
// any other reader
func promptKey(in io.Reader, out io.Writer) (string, error) {
	if in == nil {
		in = os.Stdin
	}
	fmt.Fprint(out, "NS1 API key: ")

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		keyBytes, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read api key: %w", err)
		}
		return strings.TrimSpace(string(keyBytes)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read api key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
