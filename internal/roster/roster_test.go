package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	reg := Default()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Boston Celtics", "boston celtics"},
		{"punctuation stripped", "Boston, Celtics!", "boston celtics"},
		{"whitespace collapsed", "boston    celtics", "boston celtics"},
		{"la expanded", "LA Clippers", "los angeles clippers"},
		{"la mid-string", "the LA lakers", "the los angeles lakers"},
		{"la not expanded inside word", "atlanta hawks", "atlanta hawks"},
		{"alias ny", "NY Knicks", "new york knicks"},
		{"alias sixers", "76ers", "philadelphia 76ers"},
		{"alias city only", "San Antonio", "san antonio spurs"},
		{"unknown passes through", "Springfield Atoms", "springfield atoms"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	reg := Default()

	inputs := []string{
		"LA Clippers",
		"Los Angeles Clippers",
		"la   clippers",
		"NY Knicks",
		"76ers",
		"Portland Blazers",
		"not a team at all",
	}

	for _, in := range inputs {
		once := reg.Normalize(in)
		assert.Equal(t, once, reg.Normalize(once), "input %q", in)
	}
}

func TestNormalize_VariantsAgree(t *testing.T) {
	reg := Default()

	a := reg.Normalize("LA Clippers")
	b := reg.Normalize("Los Angeles Clippers")
	c := reg.Normalize("la   clippers")

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestIsKnown(t *testing.T) {
	reg := Default()

	assert.True(t, reg.IsKnown("Boston Celtics"))
	assert.True(t, reg.IsKnown("GS Warriors"))
	assert.True(t, reg.IsKnown("okc thunder"))
	assert.False(t, reg.IsKnown("Seattle SuperSonics"))
	assert.False(t, reg.IsKnown(""))
}

func TestResolve(t *testing.T) {
	reg := Default()

	tests := []struct {
		name     string
		in       string
		want     string
		resolved bool
	}{
		{"canonical", "Boston Celtics", "Boston Celtics", true},
		{"alias", "PHX Suns", "Phoenix Suns", true},
		{"la form", "LA Lakers", "Los Angeles Lakers", true},
		{"espn city", "New Orleans", "New Orleans Pelicans", true},
		{"unknown trimmed", "  Springfield Atoms  ", "Springfield Atoms", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := reg.Resolve(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.resolved, ok)
		})
	}
}

func TestCanonicalize_FixedPoint(t *testing.T) {
	reg := Default()

	inputs := []string{
		"LA Clippers",
		"Boston Celtics",
		"portland blazers",
		"  Some Unknown Team  ",
		"",
	}

	for _, in := range inputs {
		once := reg.Canonicalize(in)
		assert.Equal(t, once, reg.Canonicalize(once), "input %q", in)
	}
}

func TestCanonicalize_AliasesAgree(t *testing.T) {
	reg := Default()

	for _, variant := range []string{"LA Clippers", "Los Angeles Clippers", "la clippers"} {
		assert.Equal(t, "Los Angeles Clippers", reg.Canonicalize(variant))
	}
}

func TestDefault_FullRoster(t *testing.T) {
	reg := Default()

	assert.Equal(t, 30, reg.Len())

	teams := reg.Teams()
	require.Len(t, teams, 30)
	assert.Equal(t, "Atlanta Hawks", teams[0])
	assert.Equal(t, "Washington Wizards", teams[29])

	// Every rostered name resolves to itself.
	for _, team := range teams {
		got, ok := reg.Resolve(team)
		assert.True(t, ok, "team %q", team)
		assert.Equal(t, team, got)
	}
}

func TestTeams_ReturnsCopy(t *testing.T) {
	reg := Default()

	teams := reg.Teams()
	teams[0] = "mutated"

	assert.Equal(t, "Atlanta Hawks", reg.Teams()[0])
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		teams   []string
		aliases map[string]string
	}{
		{"no teams", nil, nil},
		{"empty team name", []string{"Boston Celtics", "  "}, nil},
		{"duplicate key", []string{"Boston Celtics", "boston   celtics"}, nil},
		{"empty alias", []string{"Boston Celtics"}, map[string]string{"": "boston celtics"}},
		{"alias chain", []string{"Boston Celtics"}, map[string]string{"a": "b", "b": "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.teams, tt.aliases)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `
teams:
  - Boston Celtics
  - Denver Nuggets
aliases:
  the champs: Denver Nuggets
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, "Denver Nuggets", reg.Canonicalize("THE CHAMPS"))
	assert.True(t, reg.IsKnown("Boston Celtics"))
	assert.False(t, reg.IsKnown("Atlanta Hawks"))
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("teams: {not: a list}"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
