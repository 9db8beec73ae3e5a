package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-blog"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
)

func (a *cliApp) listCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, category)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list one category")
	return cmd
}

func (a *cliApp) runList(cmd *cobra.Command, category string) error {
	var list []blog.Post
	msg := postscmd.ListPostsCommand{Category: category, Result: &list}
	if err := a.module.Commands.List.Execute(cmd.Context(), msg); err != nil {
		return err
	}

	rows := make([]postSummary, 0, len(list))
	for _, post := range list {
		rows = append(rows, a.summarize(post))
	}
	a.module.Logger.Debug("blog.cli.list", "category", category, "posts", len(rows))

	if a.jsonOut {
		return writeJSON(a.out, rows)
	}
	return writePostTable(a.out, rows, false)
}
