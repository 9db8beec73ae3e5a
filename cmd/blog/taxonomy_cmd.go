package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-blog"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
)

type countEntry struct {
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
	Posts int    `json:"posts"`
}

func (a *cliApp) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with post counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTaxonomy(cmd, postscmd.TaxonomyCategories, "CATEGORY\tLABEL\tPOSTS", blog.CategoryLabel)
		},
	}
}

func (a *cliApp) tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags with post counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTaxonomy(cmd, postscmd.TaxonomyTags, "TAG\tPOSTS", nil)
		},
	}
}

func (a *cliApp) runTaxonomy(cmd *cobra.Command, kind, header string, label func(string) string) error {
	var entries []postscmd.TaxonomyEntry
	msg := postscmd.ListTaxonomyCommand{Kind: kind, Result: &entries}
	if err := a.module.Commands.Taxonomy.Execute(cmd.Context(), msg); err != nil {
		return err
	}

	if a.jsonOut {
		out := make([]countEntry, 0, len(entries))
		for _, entry := range entries {
			row := countEntry{Name: entry.Name, Posts: entry.Posts}
			if label != nil {
				row.Label = label(entry.Name)
			}
			out = append(out, row)
		}
		return writeJSON(a.out, out)
	}
	return writeCounts(a.out, header, entries, label)
}
