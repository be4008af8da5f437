package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Eofs791/tcdw-friends/assets"
	"github.com/Eofs791/tcdw-friends/config"
	"github.com/Eofs791/tcdw-friends/internal/deploy"
	"github.com/Eofs791/tcdw-friends/internal/render"
)

// newRenderCmd renders the friend list into the page fragment and optionally
// publishes it.
func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the friends page fragment",
		Long: `Render the friend list into the HTML fragment of the friends page.

Blogs are rendered first, then other sites; hidden entries are skipped.
The footer (embedded by default, or --footer) is appended at the end.

With --deploy the file is copied to the remote path with scp and the
site cache is purged with an HTTP DELETE.

Example:
  friends render -c friends.toml
  friends render -c friends.toml -o dist/friends.html --deploy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, v)
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", config.DefaultOutput, "output file")
	f.String("footer", "", "footer HTML file (default: embedded footer)")
	f.Bool("deploy", false, "upload the output with scp and purge the site cache")
	f.String("remote", config.DefaultRemote, "scp destination, user@host:/path")
	f.String("cache-url", config.DefaultCacheURL, "URL purged with DELETE after upload (empty to skip)")
	bindFlags(v, f, map[string]string{
		"output":           "output",
		"footer":           "footer",
		"deploy.remote":    "remote",
		"deploy.cache_url": "cache-url",
	})

	return cmd
}

func runRender(cmd *cobra.Command, v *viper.Viper) error {
	s, logger, err := setup(cmd, v)
	if err != nil {
		return err
	}

	cfg, err := config.Load(s.Sites)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sections, err := config.BuildSections(cfg)
	if err != nil {
		return fmt.Errorf("failed to build endpoints: %w", err)
	}

	footer, err := assets.Footer(s.Footer)
	if err != nil {
		return err
	}

	page, err := render.Page(sections, footer)
	if err != nil {
		return err
	}
	if err := render.WriteFile(s.Output, page); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Written to %s\n", s.Output)

	if deployFlag, _ := cmd.Flags().GetBool("deploy"); !deployFlag {
		return nil
	}

	d, err := deploy.New(s.Deploy.Remote, s.Deploy.CacheURL,
		deploy.WithLogger(logger),
		deploy.WithRunner(deploy.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}),
	)
	if err != nil {
		return fmt.Errorf("deploy failed: %w", err)
	}
	if err := d.Deploy(cmd.Context(), s.Output); err != nil {
		return fmt.Errorf("deploy failed: %w", err)
	}
	return nil
}
