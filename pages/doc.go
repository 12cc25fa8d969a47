// Package pages walks a PDF's page tree, starting from the trailer's /Root
// catalog, to produce an ordered list of leaf /Page nodes. The tree's
// /Count fields are never trusted; the recursive traversal itself defines
// the page count, and cyclic /Kids graphs are rejected.
package pages
