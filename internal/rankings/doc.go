// Package rankings extracts rank-ordered team lists from power rankings
// articles.
//
// NBA.com reworks its article markup several times a season, so extraction
// runs as a cascade of three strategies over a materialized node sequence:
// a marker-adjacency scan for literal "#N" rank markers, an ordinal-prefix
// scan over block elements ("3. Boston Celtics"), and a last-resort scan
// over flattened text lines. Each strategy only fills ranks the previous
// ones left open; the cascade stops as soon as every requested rank is
// resolved.
//
// The package also exports the plausibility heuristic the article selector
// uses to tell ranking articles apart from ordinary news pages.
package rankings
