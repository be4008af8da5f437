package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	friends "github.com/Eofs791/tcdw-friends"
	"github.com/Eofs791/tcdw-friends/config"
)

// newCheckCmd checks every visible friend site once and reports the results.
func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every friend site is reachable",
		Long: `Check every visible site in the friend list.

Sites are checked in batches: the sites of one batch are requested
concurrently, and the next batch starts only when the previous one has
finished. Each request has its own timeout and redirects are reported,
not followed.

One line is printed per site, in list order, followed by a summary.

Exit codes:
  0 - Every site answered 200 or a redirect
  1 - At least one site failed or timed out, or the list is invalid

Example:
  friends check -c friends.toml
  friends check -c friends.yaml --batch-size 10 --timeout 5s --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, v)
		},
	}

	f := cmd.Flags()
	f.Int("batch-size", config.DefaultBatchSize, "number of sites checked concurrently")
	f.Duration("timeout", config.DefaultTimeout, "timeout for each site")
	f.String("user-agent", config.DefaultUserAgent, "User-Agent header sent with every request")
	f.String("format", string(friends.FormatText), "report format: text or json")
	bindFlags(v, f, map[string]string{
		"batch_size": "batch-size",
		"timeout":    "timeout",
		"user_agent": "user-agent",
		"format":     "format",
	})

	return cmd
}

func runCheck(cmd *cobra.Command, v *viper.Viper) error {
	s, logger, err := setup(cmd, v)
	if err != nil {
		return err
	}

	cfg, err := config.Load(s.Sites)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	endpoints, err := config.BuildEndpoints(cfg)
	if err != nil {
		return fmt.Errorf("failed to build endpoints: %w", err)
	}

	format, err := friends.ParseFormat(s.Format)
	if err != nil {
		return err
	}

	checker, err := friends.New(
		friends.WithEndpoints(endpoints...),
		friends.WithBatchSize(s.BatchSize),
		friends.WithTimeout(s.Timeout),
		friends.WithUserAgent(s.UserAgent),
		friends.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create checker: %w", err)
	}

	rep := friends.NewReporter(cmd.OutOrStdout(), friends.WithFormat(format))
	summary := checker.Run(cmd.Context(), rep)
	if err := rep.Err(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !summary.Healthy() {
		return errUnhealthy
	}
	return nil
}
