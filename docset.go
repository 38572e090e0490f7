// Package docset provides a CLI tool for building offline documentation
// sets. It crawls documentation sites, cleans their HTML through a filter
// pipeline, extracts a searchable entry index, and persists per-site page
// databases and metadata as JSON docsets.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package docset
