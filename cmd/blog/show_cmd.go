package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-blog"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
)

type postDetail struct {
	postSummary
	CategoryLabel string         `json:"category_label"`
	Content       string         `json:"content,omitempty"`
	HTML          string         `json:"html,omitempty"`
	Headings      []blog.Heading `json:"headings,omitempty"`
	Extra         map[string]any `json:"extra,omitempty"`
}

func (a *cliApp) showCmd() *cobra.Command {
	var html bool
	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Print an article header and body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd, args[0], html)
		},
	}
	cmd.Flags().BoolVar(&html, "html", false, "Render the body to HTML")
	return cmd
}

func (a *cliApp) runShow(cmd *cobra.Command, slug string, html bool) error {
	var view postscmd.PostView
	msg := postscmd.ShowPostCommand{Slug: slug, Render: html, Result: &view}
	if err := a.module.Commands.Show.Execute(cmd.Context(), msg); err != nil {
		return err
	}
	post := view.Post

	detail := postDetail{
		postSummary:   a.summarize(post),
		CategoryLabel: post.CategoryLabel(),
		Headings:      view.Headings,
		Extra:         post.Extra,
	}
	if html {
		detail.HTML = string(view.HTML)
	} else {
		detail.Content = post.Content
	}

	if a.jsonOut {
		return writeJSON(a.out, detail)
	}

	date := detail.Date
	if date == "" {
		date = "undated"
	}
	fmt.Fprintf(a.out, "%s\n", post.Title)
	fmt.Fprintf(a.out, "%s | %s | %d min read\n", detail.CategoryLabel, date, detail.ReadMinutes)
	fmt.Fprintf(a.out, "tags: %s\n\n", joinTags(post.Tags))
	if html {
		fmt.Fprintln(a.out, detail.HTML)
		return nil
	}
	fmt.Fprintln(a.out, detail.Content)
	return nil
}
