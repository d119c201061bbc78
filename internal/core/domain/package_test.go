package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		pkg    string
		url    string
		branch string
	}{
		{
			name: "https with git suffix",
			line: "https://github.com/bedrock-fem/bedrock.git",
			pkg:  "bedrock",
			url:  "https://github.com/bedrock-fem/bedrock.git",
		},
		{
			name:   "branch fragment",
			line:   "https://github.com/bedrock-fem/strata.git#release",
			pkg:    "strata",
			url:    "https://github.com/bedrock-fem/strata.git",
			branch: "release",
		},
		{
			name: "scp-like ssh form",
			line: "git@github.com:bedrock-fem/strata4py.git",
			pkg:  "strata4py",
			url:  "git@github.com:bedrock-fem/strata4py.git",
		},
		{
			name: "no git suffix, trailing slash",
			line: "https://example.com/mirrors/fiat/",
			pkg:  "fiat",
			url:  "https://example.com/mirrors/fiat",
		},
		{
			name: "surrounding whitespace",
			line: "  https://github.com/bedrock-fem/tessella.git  ",
			pkg:  "tessella",
			url:  "https://github.com/bedrock-fem/tessella.git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.ParseSource(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.pkg, p.Name)
			assert.Equal(t, tt.url, p.URL)
			assert.Equal(t, tt.branch, p.Branch)
		})
	}
}

func TestParseSource_Malformed(t *testing.T) {
	for _, line := range []string{"", "   ", "https://github.com/org/.git"} {
		_, err := domain.ParseSource(line)
		require.Error(t, err, "line %q", line)
		require.ErrorIs(t, err, domain.ErrMalformedSource, "line %q", line)
	}
}

func TestSet_AddDeduplicates(t *testing.T) {
	s := domain.NewSet()
	require.True(t, s.Add(domain.Package{Name: "fiat", URL: "https://a/fiat.git"}))
	require.False(t, s.Add(domain.Package{Name: "fiat", URL: "https://b/fiat.git"}))
	assert.Equal(t, 1, s.Len())

	p, ok := s.Get("fiat")
	require.True(t, ok)
	assert.Equal(t, "https://a/fiat.git", p.URL, "first declaration wins")
}

func TestSet_InstallOrder(t *testing.T) {
	s := domain.NewSet()
	s.Add(domain.Package{Name: domain.Strata4pyPackage})
	s.Add(domain.Package{Name: "fiat"})
	s.Add(domain.Package{Name: domain.StrataPackage})
	s.Add(domain.Package{Name: domain.RootPackage})
	s.Add(domain.Package{Name: "tessella"})

	var names []string
	for _, p := range s.InstallOrder() {
		names = append(names, p.Name)
	}

	// Secondary packages in discovery order, then strata, then its binding.
	assert.Equal(t, []string{"fiat", domain.RootPackage, "tessella", domain.StrataPackage, domain.Strata4pyPackage}, names)
}

func TestPackage_Primary(t *testing.T) {
	assert.True(t, domain.Package{Name: domain.StrataPackage}.Primary())
	assert.True(t, domain.Package{Name: domain.Strata4pyPackage}.Primary())
	assert.False(t, domain.Package{Name: domain.RootPackage}.Primary())
}
