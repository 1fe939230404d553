package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/passport-scorer/scorer-ui/internal/buildinfo"
	uierrors "github.com/passport-scorer/scorer-ui/internal/errors"
	"github.com/passport-scorer/scorer-ui/pkg/assets"
	"github.com/passport-scorer/scorer-ui/pkg/footer"
	"github.com/passport-scorer/scorer-ui/pkg/layout"
	"github.com/passport-scorer/scorer-ui/pkg/render"
	"github.com/passport-scorer/scorer-ui/pkg/vdom"
)

type renderOptions struct {
	mode      string
	className string
	commit    string
	pretty    bool
	page      bool
}

func renderCmd(configPath *string) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the footer HTML",
		Long: `Render the footer and print it to stdout.

Examples:
  scorer-ui render
  scorer-ui render --mode=dark --class="mt-8" --pretty
  scorer-ui render --page > footer.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("mode") {
				opts.mode = cfg.Footer.DefaultMode
			}
			if opts.commit == "" {
				opts.commit = buildinfo.CommitOr(cfg.Footer.CommitHash)
			}

			var resolver assets.Resolver
			if cfg.Static.Manifest != "" {
				m, err := assets.Load(cfg.Static.Manifest)
				if err != nil {
					return uierrors.New("E104").WithDetail("Could not load " + cfg.Static.Manifest).Wrap(err)
				}
				resolver = assets.NewResolver(m, cfg.Static.Prefix)
			} else {
				resolver = assets.NewPassthroughResolver(cfg.Static.Prefix)
			}

			return writeFooter(cmd.OutOrStdout(), resolver, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Display mode: light or dark")
	cmd.Flags().StringVar(&opts.className, "class", "", "Extra classes for the root element")
	cmd.Flags().StringVar(&opts.commit, "commit", "", "Commit hash to link (default from config or build)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the footer in a full HTML page")

	return cmd
}

func writeFooter(w io.Writer, resolver assets.Resolver, opts renderOptions) error {
	props := footer.Props{
		Mode:       footer.DisplayMode(opts.mode),
		ClassName:  opts.className,
		CommitHash: opts.commit,
	}
	node := footer.New(resolver).Render(props)
	r := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty})

	if opts.page {
		page := layout.Page(layout.PageOptions{
			Title:  "Passport Scorer",
			Dark:   props.Mode.IsDark(),
			Footer: vdom.Footer(node),
		})
		if err := r.RenderPage(w, page); err != nil {
			return uierrors.New("E400").Wrap(err)
		}
		return nil
	}

	if err := r.RenderToWriter(w, node); err != nil {
		return uierrors.New("E400").Wrap(err)
	}
	_, err := fmt.Fprintln(w)
	return err
}
