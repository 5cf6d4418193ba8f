// Package govnotice ingests published notices from government websites and
// turns raw page content into structured, deduplicated, categorized, and
// summarized records for downstream display. It renders pages in a headless
// browser, harvests candidate items from the DOM, enriches them with a
// category, derived metadata, and a plain-language summary, and persists the
// survivors.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, gemini/, sqlite/).
package govnotice
