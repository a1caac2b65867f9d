package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionsRoundTrip(t *testing.T) {
	perms := Permissions{
		PermVisualizarEstoque: true,
		PermEditarValores:     false,
	}

	val, err := perms.Value()
	require.NoError(t, err)

	var decoded Permissions
	require.NoError(t, decoded.Scan([]byte(val.(string))))
	assert.Equal(t, perms, decoded)
}

func TestPermissionsScanNil(t *testing.T) {
	var perms Permissions
	require.NoError(t, perms.Scan(nil))
	assert.Empty(t, perms)
}

func TestHasPermission(t *testing.T) {
	comum := User{
		AccessType:  AccessComum,
		Permissions: Permissions{PermVisualizarEstoque: true},
	}
	assert.True(t, comum.HasPermission(PermVisualizarEstoque))
	assert.False(t, comum.HasPermission(PermGerenciarAdmin))

	// Admin master ignora o mapa de permissões
	admin := User{AccessType: AccessAdmin}
	assert.True(t, admin.HasPermission(PermGerenciarAdmin))
	assert.True(t, admin.IsAdmin())
}
