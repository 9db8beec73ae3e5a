package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-blog"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
)

func (a *cliApp) relatedCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "related <slug>",
		Short: "List articles sharing a category or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRelated(cmd, args[0], limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results (default from config)")
	return cmd
}

func (a *cliApp) runRelated(cmd *cobra.Command, slug string, limit int) error {
	var related []blog.Post
	msg := postscmd.RelatedPostsCommand{Slug: slug, Limit: limit, Result: &related}
	if err := a.module.Commands.Related.Execute(cmd.Context(), msg); err != nil {
		return err
	}

	rows := make([]postSummary, 0, len(related))
	for _, post := range related {
		rows = append(rows, a.summarize(post))
	}

	if a.jsonOut {
		return writeJSON(a.out, rows)
	}
	return writePostTable(a.out, rows, false)
}
