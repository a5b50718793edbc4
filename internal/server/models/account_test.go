package models

import (
	"testing"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountClass(t *testing.T) {
	tests := []struct {
		in   string
		want AccountClass
	}{
		{"user", ClassUser},
		{"Admin", ClassAdmin},
		{"superadmin", ClassSuperAdmin},
		{"super-admin", ClassSuperAdmin},
		{" SUPER_ADMIN ", ClassSuperAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAccountClass(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAccountClass("owner")
	assert.ErrorIs(t, err, common.ErrUnknownAccountClass)
}

func TestAccountClass_StringRoundTrip(t *testing.T) {
	for _, c := range Classes() {
		got, err := ParseAccountClass(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	assert.Equal(t, "AccountClass(7)", AccountClass(7).String())
}

func TestDescriptor(t *testing.T) {
	d, err := Descriptor(ClassUser)
	require.NoError(t, err)
	assert.Equal(t, ClassDescriptor{Class: ClassUser, Collection: "users", IdentifierField: "email", SecretField: "password"}, d)

	d, err = Descriptor(ClassAdmin)
	require.NoError(t, err)
	assert.Equal(t, "adminEmail", d.IdentifierField)
	assert.Equal(t, "adminPassword", d.SecretField)

	d, err = Descriptor(ClassSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, "superadmins", d.Collection)
	assert.Equal(t, "superAdminEmail", d.IdentifierField)
	assert.Equal(t, "superAdminPassword", d.SecretField)

	_, err = Descriptor(AccountClass(-1))
	assert.ErrorIs(t, err, common.ErrUnknownAccountClass)
}

func TestDescriptors_DisjointCollections(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Classes() {
		d, err := Descriptor(c)
		require.NoError(t, err)
		assert.False(t, seen[d.Collection], "collection %s reused", d.Collection)
		seen[d.Collection] = true
	}
}
