// Package resolver assembles a PDF's cross-reference chain from raw bytes
// and resolves indirect object references on demand, caching the results.
package resolver
