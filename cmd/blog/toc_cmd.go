package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-blog"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
)

func (a *cliApp) tocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toc <slug>",
		Short: "Print the table of contents of an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTOC(cmd, args[0])
		},
	}
}

func (a *cliApp) runTOC(cmd *cobra.Command, slug string) error {
	var view postscmd.PostView
	msg := postscmd.ShowPostCommand{Slug: slug, Result: &view}
	if err := a.module.Commands.Show.Execute(cmd.Context(), msg); err != nil {
		return err
	}

	headings := view.Headings
	if a.jsonOut {
		if headings == nil {
			headings = []blog.Heading{}
		}
		return writeJSON(a.out, headings)
	}

	for _, heading := range headings {
		indent := strings.Repeat("  ", max(heading.Level-2, 0))
		fmt.Fprintf(a.out, "%s- %s (#%s)\n", indent, heading.Text, heading.ID)
	}
	return nil
}
