// Package markdown loads article sources: it enumerates collection
// directories, splits frontmatter from bodies, extracts heading outlines and
// renders bodies to HTML with anchors that match the outline.
package markdown
