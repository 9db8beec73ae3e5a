package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goliatone/go-blog"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
)

const dateLayout = "2006-01-02"

type postSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Date        string   `json:"date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	ReadMinutes int      `json:"read_minutes"`
	Score       *float64 `json:"score,omitempty"`
	Field       string   `json:"field,omitempty"`
}

func (a *cliApp) summarize(post blog.Post) postSummary {
	summary := postSummary{
		Slug:        post.Slug,
		Title:       post.Title,
		Category:    post.Category,
		Tags:        post.Tags,
		Summary:     post.Summary,
		ReadMinutes: a.module.Module.ReadingTime(post),
	}
	if post.HasDate() {
		summary.Date = post.Date.Format(dateLayout)
	}
	return summary
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writePostTable(w io.Writer, rows []postSummary, withScore bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "SLUG\tDATE\tCATEGORY\tREAD\tTITLE"
	if withScore {
		header += "\tSCORE\tFIELD"
	}
	fmt.Fprintln(tw, header)
	for _, row := range rows {
		date := row.Date
		if date == "" {
			date = "-"
		}
		line := fmt.Sprintf("%s\t%s\t%s\t%d min\t%s", row.Slug, date, row.Category, row.ReadMinutes, row.Title)
		if withScore && row.Score != nil {
			line += fmt.Sprintf("\t%.3f\t%s", *row.Score, row.Field)
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

func writeCounts(w io.Writer, header string, entries []postscmd.TaxonomyEntry, label func(string) string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, entry := range entries {
		if label != nil {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", entry.Name, label(entry.Name), entry.Posts)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\n", entry.Name, entry.Posts)
	}
	return tw.Flush()
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}
