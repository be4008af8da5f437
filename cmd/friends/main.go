// Package main is the entry point for the friends CLI.
//
// The CLI checks that every friend site is reachable, renders the friends
// page fragment and publishes it.
//
// Usage:
//
//	friends check -c friends.toml             # Check every visible site
//	friends render -c friends.toml --deploy   # Render and publish the page
//	friends validate -c friends.toml          # Validate the friend list
//	friends version                           # Show version info
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Eofs791/tcdw-friends/config"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errUnhealthy is returned by check when any site failed. It exits 1
// without printing an error, since the report already says what failed.
var errUnhealthy = errors.New("one or more sites are unhealthy")

// newRootCmd builds the command tree. Each call gets its own viper instance
// so flag and env layering never leaks between invocations.
func newRootCmd() *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:   "friends",
		Short: "Health check and publish a friends link page",
		Long: `friends keeps a blog's friends page healthy.

It checks every listed site in small concurrent batches, reports which
ones are down, timing out or redirecting, and renders the list into the
HTML fragment shown on the friends page.

Quick start:
  1. Create a friend list (friends.toml)
  2. Run: friends check -c friends.toml
  3. Run: friends render -c friends.toml --deploy

Example friend list:
  [[blogs]]
  name = "Example Blog"
  url = "https://blog.example.com"
  avatar = "https://blog.example.com/avatar.png"

Settings can also come from a settings file (--settings) or from
FRIENDS_* environment variables, e.g. FRIENDS_BATCH_SIZE=10.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", config.DefaultSites, "path to friend list file (.toml, .yaml, .yml or .json)")
	pf.String("settings", "", "path to settings file")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "json", "log format: json or text")
	bindFlags(v, pf, map[string]string{
		"sites":      "config",
		"log.level":  "log-level",
		"log.format": "log-format",
	})

	root.AddCommand(
		newCheckCmd(v),
		newRenderCmd(v),
		newValidateCmd(v),
		newVersionCmd(),
	)
	return root
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errUnhealthy) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// newVersionCmd prints version information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of this friends binary.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "friends %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

// setup loads the layered settings and builds the logger for cmd.
func setup(cmd *cobra.Command, v *viper.Viper) (*config.Settings, *slog.Logger, error) {
	file, _ := cmd.Flags().GetString("settings")
	s, err := config.LoadSettings(v, file)
	if err != nil {
		return nil, nil, err
	}
	return s, newLogger(cmd.ErrOrStderr(), s.Log), nil
}
