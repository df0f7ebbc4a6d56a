// Package roster maintains the canonical NBA team table and the
// normalization rules that map free-form team references onto it.
package roster

import (
	"os"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"
)

// defaultTeams lists the 30 NBA teams in display form. Order matters:
// substring scans in the rankings package break ties by roster order.
var defaultTeams = []string{
	"Atlanta Hawks",
	"Boston Celtics",
	"Brooklyn Nets",
	"Charlotte Hornets",
	"Chicago Bulls",
	"Cleveland Cavaliers",
	"Dallas Mavericks",
	"Denver Nuggets",
	"Detroit Pistons",
	"Golden State Warriors",
	"Houston Rockets",
	"Indiana Pacers",
	"Los Angeles Clippers",
	"Los Angeles Lakers",
	"Memphis Grizzlies",
	"Miami Heat",
	"Milwaukee Bucks",
	"Minnesota Timberwolves",
	"New Orleans Pelicans",
	"New York Knicks",
	"Oklahoma City Thunder",
	"Orlando Magic",
	"Philadelphia 76ers",
	"Phoenix Suns",
	"Portland Trail Blazers",
	"Sacramento Kings",
	"San Antonio Spurs",
	"Toronto Raptors",
	"Utah Jazz",
	"Washington Wizards",
}

// defaultAliases maps shorthand spellings seen in feeds and articles to full
// team names.
var defaultAliases = map[string]string{
	"la clippers":      "los angeles clippers",
	"la lakers":        "los angeles lakers",
	"ny knicks":        "new york knicks",
	"portland blazers": "portland trail blazers",
	"gs warriors":      "golden state warriors",
	"okc thunder":      "oklahoma city thunder",
	"phx suns":         "phoenix suns",
	"76ers":            "philadelphia 76ers",
	"san antonio":      "san antonio spurs",
	"new orleans":      "new orleans pelicans",
}

// Registry resolves free-form team references to canonical display names.
// Built once at startup and read-only afterwards.
type Registry struct {
	teams   []string          // display names, roster order
	byKey   map[string]string // normalized name -> display name
	aliases map[string]string // normalized alias -> normalized name
}

// New builds a registry from an explicit team list and alias table. Alias
// keys and values may use any spelling; both are normalized during
// construction. Alias chains are rejected so that Normalize stays
// idempotent.
func New(teams []string, aliases map[string]string) (*Registry, error) {
	if len(teams) == 0 {
		return nil, errors.New("roster: no teams")
	}

	r := &Registry{
		teams:   make([]string, 0, len(teams)),
		byKey:   make(map[string]string, len(teams)),
		aliases: make(map[string]string, len(aliases)),
	}

	for rawKey, rawTarget := range aliases {
		key := clean(rawKey)
		target := clean(rawTarget)
		if key == "" || target == "" {
			return nil, errors.Newf("roster: empty alias mapping %q -> %q", rawKey, rawTarget)
		}
		r.aliases[key] = target
	}
	for key, target := range r.aliases {
		if next, ok := r.aliases[target]; ok && next != target {
			return nil, errors.Newf("roster: alias chain %q -> %q -> %q", key, target, next)
		}
	}

	for _, name := range teams {
		display := strings.TrimSpace(name)
		if display == "" {
			return nil, errors.New("roster: empty team name")
		}
		key := r.Normalize(display)
		if prev, ok := r.byKey[key]; ok {
			return nil, errors.Newf("roster: %q and %q normalize to the same key %q", prev, display, key)
		}
		r.teams = append(r.teams, display)
		r.byKey[key] = display
	}

	return r, nil
}

// Default builds the registry from the built-in NBA roster and alias table.
func Default() *Registry {
	r, err := New(defaultTeams, defaultAliases)
	if err != nil {
		// built-in tables are static; failing here is a bug
		panic(err)
	}
	return r
}

// File is the on-disk roster override format:
//
//	teams:
//	  - Boston Celtics
//	aliases:
//	  gs warriors: Golden State Warriors
type File struct {
	Teams   []string          `yaml:"teams"`
	Aliases map[string]string `yaml:"aliases"`
}

// LoadFile builds a registry from a YAML roster file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read roster file")
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse roster file")
	}

	return New(f.Teams, f.Aliases)
}

// Normalize reduces free-form text to the key used for team lookups:
// lowercase, punctuation to spaces, whitespace collapsed, the standalone
// token "la" expanded to "los angeles", and the alias table applied.
// Idempotent: normalizing an already-normalized key returns it unchanged.
func (r *Registry) Normalize(text string) string {
	key := clean(text)
	if target, ok := r.aliases[key]; ok {
		return target
	}
	return key
}

// IsKnown reports whether text normalizes to a rostered team.
func (r *Registry) IsKnown(text string) bool {
	_, ok := r.byKey[r.Normalize(text)]
	return ok
}

// Resolve maps text to its canonical display name. The boolean reports
// whether resolution succeeded; on failure the trimmed input comes back so
// callers can decide whether to drop or surface it.
func (r *Registry) Resolve(text string) (string, bool) {
	if display, ok := r.byKey[r.Normalize(text)]; ok {
		return display, true
	}
	return strings.TrimSpace(text), false
}

// Canonicalize returns the canonical display name when text resolves, and
// the trimmed input unchanged when it doesn't.
func (r *Registry) Canonicalize(text string) string {
	display, _ := r.Resolve(text)
	return display
}

// Teams returns the display names in roster order.
func (r *Registry) Teams() []string {
	out := make([]string, len(r.teams))
	copy(out, r.teams)
	return out
}

// Len returns the number of rostered teams.
func (r *Registry) Len() int {
	return len(r.teams)
}

// clean lowercases text, turns punctuation into spaces, collapses runs of
// whitespace, and expands the standalone token "la" to "los angeles".
func clean(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	for i, f := range fields {
		if f == "la" {
			fields[i] = "los angeles"
		}
	}
	return strings.Join(fields, " ")
}
