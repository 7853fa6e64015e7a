package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashService_HashAndVerify(t *testing.T) {
	svc := NewBcryptHashService()

	hash, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	ok, err := svc.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHashService_VerifyMismatch(t *testing.T) {
	svc := NewBcryptHashService()

	hash, err := svc.Hash("password-one")
	require.NoError(t, err)

	// Wrong password is a clean false, not an error.
	ok, err := svc.Verify("password-two", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHashService_VerifyMalformedHash(t *testing.T) {
	svc := NewBcryptHashService()

	_, err := svc.Verify("anything", "not-a-bcrypt-hash")
	assert.Error(t, err)
}

func TestBcryptHashService_HashesAreSalted(t *testing.T) {
	svc := NewBcryptHashService()

	h1, err := svc.Hash("same-password")
	require.NoError(t, err)
	h2, err := svc.Hash("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
