package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passport-scorer/scorer-ui/internal/buildinfo"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version, commit, and build information for scorer-ui.`,
		Run: func(cmd *cobra.Command, args []string) {
			bi := buildinfo.Get()
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, bi.Version)
				return
			}

			commit := bi.Commit
			if commit == "" {
				commit = "none"
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  Version:    %s\n", bi.Version)
			fmt.Fprintf(out, "  Commit:     %s\n", commit)
			fmt.Fprintf(out, "  Built:      %s\n", bi.Date)
			fmt.Fprintf(out, "  Go version: %s\n", bi.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", bi.Platform)
			fmt.Fprintln(out)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
