package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
)

func TestSSHSource(t *testing.T) {
	assert.Equal(t, "git@github.com:bedrock-fem/strata.git",
		domain.SSHSource("https://github.com/bedrock-fem/strata.git"))
	assert.Equal(t, "git@github.com:bedrock-fem/strata.git",
		domain.SSHSource("https://github.com/bedrock-fem/strata"))
	assert.Equal(t, "git@github.com:bedrock-fem/strata.git",
		domain.SSHSource("git@github.com:bedrock-fem/strata.git"))
}

func TestHTTPSSource(t *testing.T) {
	assert.Equal(t, "https://github.com/bedrock-fem/strata.git",
		domain.HTTPSSource("git@github.com:bedrock-fem/strata.git"))
	assert.Equal(t, "https://github.com/bedrock-fem/strata.git",
		domain.HTTPSSource("https://github.com/bedrock-fem/strata.git"))
	assert.Equal(t, "https://github.com/bedrock-fem/strata.git",
		domain.HTTPSSource("http://github.com/bedrock-fem/strata"))
}
