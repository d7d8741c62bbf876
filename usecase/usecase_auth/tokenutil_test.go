package usecase_auth

import (
	"testing"

	"github.com/ninelens/reviewrec/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &domain.User{
		ID:   primitive.NewObjectID(),
		Name: "alice",
	}

	token, err := CreateAccessToken(user, "secret", 2)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	authorized, err := IsAuthorized(token, "secret")
	require.NoError(t, err)
	assert.True(t, authorized)

	id, err := ExtractIDFromToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), id)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID()}

	token, err := CreateRefreshToken(user, "refresh-secret", 168)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(token, "refresh-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), id)
}

func TestWrongSecretIsRejected(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "alice"}

	token, err := CreateAccessToken(user, "secret", 2)
	require.NoError(t, err)

	authorized, err := IsAuthorized(token, "other-secret")
	assert.Error(t, err)
	assert.False(t, authorized)

	_, err = ExtractIDFromToken(token, "other-secret")
	assert.Error(t, err)
}

func TestMalformedTokenIsRejected(t *testing.T) {
	authorized, err := IsAuthorized("not-a-token", "secret")
	assert.Error(t, err)
	assert.False(t, authorized)
}
