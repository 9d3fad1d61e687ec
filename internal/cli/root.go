// Package cli implements the lifelog command line client.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lifelog-timeline/internal/client"
)

// Deps holds the process resources commands use, so tests can replace them.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Getenv     func(string) string
	ConfigPath func() (string, error)
	RunTUI     func(ctx context.Context, api *client.Client, cfg Config) error
}

// DefaultDeps returns the production dependencies.
func DefaultDeps() Deps {
	return Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Getenv:     os.Getenv,
		ConfigPath: DefaultConfigPath,
		RunTUI:     runTUI,
	}
}

// app is the state shared by the commands of one invocation.
type app struct {
	deps       Deps
	configPath string
	cfg        Config
}

// NewRootCommand builds the lifelog command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	a := &app{deps: deps}

	root := &cobra.Command{
		Use:   "lifelog",
		Short: "Browse and edit your life-log timeline",
		Long: `lifelog talks to a timeline server.

  lifelog login --username alice     Log in (password from LIFELOG_PASSWORD or stdin)
  lifelog day [YYYY-MM-DD]           Show a day grouped by time
  lifelog entry add --schema journal --title "..."
  lifelog entry rm <id>
  lifelog archives [type]            List archive types or archives of one type
  lifelog sources [type]             List source types or sources of one type
  lifelog filters                    List the available filters
  lifelog tui                        Open the terminal viewer`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}
	root.SetOut(deps.Stdout)
	root.SetErr(deps.Stderr)
	root.SetIn(deps.Stdin)

	root.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/lifelog/config.toml)")
	root.PersistentFlags().String("server", "", "server base URL, overrides the config file")

	root.AddCommand(
		a.loginCommand(),
		a.dayCommand(),
		a.entryCommand(),
		a.archivesCommand(),
		a.sourcesCommand(),
		a.filtersCommand(),
		a.tuiCommand(),
	)
	return root
}

// SetVersion sets the version printed by --version.
func SetVersion(root *cobra.Command, version string) {
	root.Version = version
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = a.deps.Getenv("LIFELOG_CONFIG")
	}
	if path == "" {
		p, err := a.deps.ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	if server, _ := cmd.Flags().GetString("server"); server != "" {
		cfg.Server = server
	}

	a.configPath = path
	a.cfg = cfg
	return nil
}

func (a *app) client() *client.Client {
	opts := []client.Option{client.WithToken(a.cfg.Token)}
	if a.cfg.Timezone != "" && a.cfg.Timezone != "Local" {
		opts = append(opts, client.WithTimezone(a.cfg.Timezone))
	}
	return client.New(a.cfg.Server, opts...)
}
