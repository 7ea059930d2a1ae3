// Package discovery answers search requests over the catalog. An Engine
// composes full catalog reads with a filter chain (name text, capability
// categories, tags), pagination, and rate-limited admission. Filtering
// always operates over the complete in-memory snapshot returned by the
// catalog; there is no partial or streamed fetch.
package discovery
