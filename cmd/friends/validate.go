package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Eofs791/tcdw-friends/config"
)

// newValidateCmd validates a friend list without checking any site.
func newValidateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a friend list",
		Long: `Validate a friend list without checking any site.

This command parses the file, expands environment variables in URLs, and
validates every entry. It's useful for CI pipelines or before a deploy.

Exit codes:
  0 - Friend list is valid
  1 - Friend list is invalid (error details printed to stderr)

Example:
  friends validate -c friends.toml
  friends validate --config friends.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, v)
		},
	}
}

func runValidate(cmd *cobra.Command, v *viper.Viper) error {
	s, _, err := setup(cmd, v)
	if err != nil {
		return err
	}

	cfg, err := config.Load(s.Sites)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := config.BuildEndpoints(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	blogsHidden := countHidden(cfg.Blogs)
	nonBlogsHidden := countHidden(cfg.NonBlogs)
	total := len(cfg.Blogs) + len(cfg.NonBlogs)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Blogs:     %d (%d hidden)\n", len(cfg.Blogs), blogsHidden)
	fmt.Fprintf(out, "  Non-blogs: %d (%d hidden)\n", len(cfg.NonBlogs), nonBlogsHidden)
	fmt.Fprintf(out, "  Checked:   %d of %d total\n", total-blogsHidden-nonBlogsHidden, total)

	return nil
}

func countHidden(fcs []config.FriendConfig) int {
	n := 0
	for _, fc := range fcs {
		if fc.Hidden {
			n++
		}
	}
	return n
}
