package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
)

func TestPolicyFor(t *testing.T) {
	assert.Equal(t, domain.RebuildOnChange, domain.PolicyFor(domain.StrataPackage))
	assert.Equal(t, domain.RebuildOnChange, domain.PolicyFor(domain.Strata4pyPackage))
	assert.Equal(t, domain.RebuildAlways, domain.PolicyFor("fiat"))
}

func TestShouldRebuild(t *testing.T) {
	tests := []struct {
		name   string
		policy domain.RebuildPolicy
		state  domain.ChangeState
		force  bool
		want   bool
	}{
		{"always rebuilds even when unchanged", domain.RebuildAlways, domain.Unchanged, false, true},
		{"on-change skips unchanged", domain.RebuildOnChange, domain.Unchanged, false, false},
		{"on-change rebuilds changed", domain.RebuildOnChange, domain.Changed, false, true},
		{"force overrides unchanged", domain.RebuildOnChange, domain.Unchanged, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.ShouldRebuild(tt.state, tt.force))
		})
	}
}
