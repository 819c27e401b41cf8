// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Karpushin

package store

import (
	"strings"
	"testing"

	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func Test_buildUpdateUserQuery_OnlySuppliedColumns(t *testing.T) {
	userID := uuid.New()
	bio := "gopher"

	query, args, err := buildUpdateUserQuery(models.UserUpdate{UserID: userID, Bio: &bio})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, `update "user"`)
	require.Contains(t, q, "bio = ")

	// Only the supplied column may appear in the SET clause; every column
	// shows up in RETURNING, so assert on assignments.
	require.NotContains(t, q, "username = ")
	require.NotContains(t, q, "email = ")
	require.NotContains(t, q, "password_hash = ")

	// updated_at is the trigger's business, never set by the builder.
	require.NotContains(t, q, "updated_at = ")

	require.Contains(t, query, "$1")
	require.Contains(t, q, "returning")

	require.Len(t, args, 2)
	require.Equal(t, bio, args[0])
	require.Equal(t, userID, args[1])
}

func Test_buildUpdateUserQuery_AllColumns(t *testing.T) {
	username := "john"
	email := "john@example.com"
	bio := "gopher"
	image := "https://example.com/a.png"
	hash := "$argon2id$hash"

	query, args, err := buildUpdateUserQuery(models.UserUpdate{
		UserID:       uuid.New(),
		Username:     &username,
		Email:        &email,
		Bio:          &bio,
		Image:        &image,
		PasswordHash: &hash,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, c := range []string{"username", "email", "bio", "image", "password_hash"} {
		require.Contains(t, q, c)
	}

	require.Len(t, args, 6)
}

func Test_buildUpdateArticleQuery_OnlySuppliedColumns(t *testing.T) {
	articleID := uuid.New()
	title := "Retitled"

	query, args, err := buildUpdateArticleQuery(models.ArticleUpdate{ArticleID: articleID, Title: &title})
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "update article")
	require.Contains(t, q, "title = ")
	require.NotContains(t, q, "description = ")
	require.NotContains(t, q, "body = ")
	require.NotContains(t, q, "tag_list = ")

	// The slug column must never be assigned: permalinks are immutable here.
	require.NotContains(t, q, "slug = ")

	require.Contains(t, q, "returning")

	require.Len(t, args, 2)
	require.Equal(t, title, args[0])
	require.Equal(t, articleID, args[1])
}

func Test_buildUpdateArticleQuery_TagListBoundAsArray(t *testing.T) {
	query, args, err := buildUpdateArticleQuery(models.ArticleUpdate{
		ArticleID: uuid.New(),
		TagList:   []string{"go", "postgres"},
	})
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(query), "tag_list")

	require.Len(t, args, 2)
	require.IsType(t, &pq.StringArray{}, args[0])
}
