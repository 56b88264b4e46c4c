package dns

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/flipper/v1/internal/config"
	"github.com/catalystcommunity/flipper/v1/internal/flipper"
	"github.com/catalystcommunity/flipper/v1/internal/ns1"
	"github.com/catalystcommunity/flipper/v1/internal/record"
	"github.com/catalystcommunity/flipper/v1/internal/secrets"
)

// GlobalFlags are the root flags shared by check, flip and flip_app
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to settings file (default ~/.flipper/settings.yaml)",
			Sources: cli.EnvVars("FLIPPER_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "endpoint",
			Usage:   "NS1 API base URL",
			Sources: cli.EnvVars("FLIPPER_ENDPOINT"),
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "per-request timeout",
		},
		&cli.BoolFlag{
			Name:  "create-missing",
			Usage: "create records the provider does not have instead of attempting an update",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log API calls to stderr",
		},
	}
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func newLogger(cmd *cli.Command) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if w := cmd.Root().ErrWriter; w != nil {
		log.SetOutput(w)
	}
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if cmd.Bool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// loadSettings reads the settings file and applies flag overrides
func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	settings, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("endpoint") {
		settings.Endpoint = cmd.String("endpoint")
	}
	if cmd.IsSet("timeout") {
		settings.Timeout = cmd.Duration("timeout")
	}
	if cmd.IsSet("create-missing") {
		settings.CreateMissing = cmd.Bool("create-missing")
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", record.ErrConfig, err)
	}
	return settings, nil
}

// newService wires settings, credential and API client together. It fails
// with a configuration error before any network call when no API key is
// available.
func newService(cmd *cli.Command) (*flipper.Service, error) {
	log := newLogger(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	credPath, err := settings.CredentialsPath()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", record.ErrConfig, err)
	}

	cred, err := secrets.LoadCredential(secrets.DefaultChain(credPath))
	if err != nil {
		return nil, err
	}

	client := ns1.NewClient(settings.Endpoint, cred.Key(),
		ns1.WithTimeout(settings.Timeout),
		ns1.WithLogger(log),
	)

	return flipper.New(client, flipper.Options{
		CheckTypes:    settings.CheckTypes,
		CreateMissing: settings.CreateMissing,
	}, log), nil
}
