package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/vendor-portal/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "64f0c2a1e4b0a1b2c3d4e5f6"
	testIssuer = "vmm-test"
)

func TestInspect_LeeClaimsSinSecreto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "vendor", testIssuer, 60)
	require.NoError(t, err)

	info, err := pkgjwt.Inspect(tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, info.Subject)
	assert.Equal(t, "vendor", info.Role)
	assert.False(t, info.ExpiresAt.IsZero())
	assert.True(t, info.ExpiresAt.After(time.Now()))
}

func TestInspect_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "vendor", testIssuer, -1)
	require.NoError(t, err)

	info, err := pkgjwt.Inspect(tok)
	require.NoError(t, err, "la inspección no valida exp; solo informa")
	assert.True(t, info.ExpiresAt.Before(time.Now()))
}

func TestInspect_TokenOpaco_RetornaError(t *testing.T) {
	_, err := pkgjwt.Inspect("t1")
	assert.Error(t, err)

	_, err = pkgjwt.Inspect("")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "vendor", testIssuer, 60)
	assert.Error(t, err)
}
