package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the selectable affiliations, posts and skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := api.FormOptions(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, opts)
		}
		fmt.Fprintf(out, "Affiliations: %s\n", strings.Join(opts.Affiliations, ", "))
		fmt.Fprintf(out, "Posts:        %s\n", strings.Join(opts.Posts, ", "))
		fmt.Fprintf(out, "Skills:       %s\n", strings.Join(opts.Skills, ", "))
		return nil
	},
}
