package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ngpack/internal/core/domain"
)

func TestResolution_Classify(t *testing.T) {
	tests := []struct {
		name            string
		names           []domain.EntryPointName
		wantRoles       []domain.Role
		wantPrimary     domain.EntryPointName
		wantSecondaries []domain.EntryPointName
	}{
		{
			name:            "single name is primary",
			names:           []domain.EntryPointName{"core/testing"},
			wantRoles:       []domain.Role{domain.RolePrimary},
			wantPrimary:     "core/testing",
			wantSecondaries: []domain.EntryPointName{},
		},
		{
			name:            "repeated primary stays primary",
			names:           []domain.EntryPointName{"core", "core", "core"},
			wantRoles:       []domain.Role{domain.RolePrimary, domain.RolePrimary, domain.RolePrimary},
			wantPrimary:     "core",
			wantSecondaries: []domain.EntryPointName{},
		},
		{
			name:            "later names are secondary",
			names:           []domain.EntryPointName{"core", "testing", "core", "animations"},
			wantRoles:       []domain.Role{domain.RolePrimary, domain.RoleSecondary, domain.RolePrimary, domain.RoleSecondary},
			wantPrimary:     "core",
			wantSecondaries: []domain.EntryPointName{"testing", "animations"},
		},
		{
			name:            "secondaries are deduplicated in insertion order",
			names:           []domain.EntryPointName{"http", "testing", "upgrade", "testing", "upgrade"},
			wantRoles:       []domain.Role{domain.RolePrimary, domain.RoleSecondary, domain.RoleSecondary, domain.RoleSecondary, domain.RoleSecondary},
			wantPrimary:     "http",
			wantSecondaries: []domain.EntryPointName{"testing", "upgrade"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := domain.NewResolution()
			require.False(t, res.HasPrimary())

			roles := make([]domain.Role, 0, len(tt.names))
			for _, n := range tt.names {
				roles = append(roles, res.Classify(n))
			}

			assert.Equal(t, tt.wantRoles, roles)
			assert.True(t, res.HasPrimary())
			assert.Equal(t, tt.wantPrimary, res.Primary())
			assert.ElementsMatch(t, tt.wantSecondaries, res.Secondaries())
			assert.Equal(t, len(tt.wantSecondaries), len(res.Secondaries()))
			for i, s := range tt.wantSecondaries {
				assert.Equal(t, s, res.Secondaries()[i])
			}
			assert.False(t, res.IsSecondary(tt.wantPrimary), "primary must never be secondary")
		})
	}
}

func TestResolution_SecondariesIsACopy(t *testing.T) {
	var res domain.Resolution
	res.Classify("core")
	res.Classify("testing")

	got := res.Secondaries()
	got[0] = "mutated"

	assert.Equal(t, []domain.EntryPointName{"testing"}, res.Secondaries())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "primary", domain.RolePrimary.String())
	assert.Equal(t, "secondary", domain.RoleSecondary.String())
}
