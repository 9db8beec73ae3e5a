package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-blog"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
)

func (a *cliApp) searchCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Fuzzy search titles, summaries and categories",
		Long: `Fuzzy search titles, summaries and categories.

Examples:
  blog search "load balancng"
  blog search --category dsa heaps`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, category, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only search one category")
	return cmd
}

func (a *cliApp) runSearch(cmd *cobra.Command, category, text string) error {
	var matches []blog.Match
	msg := postscmd.SearchPostsCommand{Category: category, Text: text, Result: &matches}
	if err := a.module.Commands.Search.Execute(cmd.Context(), msg); err != nil {
		return err
	}

	rows := make([]postSummary, 0, len(matches))
	for _, match := range matches {
		row := a.summarize(match.Post)
		score := match.Score
		row.Score = &score
		row.Field = match.Field
		rows = append(rows, row)
	}
	a.module.Logger.Debug("blog.cli.search", "text", text, "matches", len(rows))

	if a.jsonOut {
		return writeJSON(a.out, rows)
	}
	return writePostTable(a.out, rows, true)
}
