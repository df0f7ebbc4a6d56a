// Package cli implements the command-line interface for rankwatch.
//
// The cli package provides the Cobra-based CLI that runs the full pipeline:
// find the freshest NBA.com power rankings article, extract the top-ranked
// teams, aggregate each team's upcoming games, and render the result as
// text, JSON, or an iCalendar file. Configuration comes from rankwatch.yaml
// and RANKWATCH_* environment variables, with flags taking final precedence.
package cli
