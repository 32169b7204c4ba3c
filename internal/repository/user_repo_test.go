package repository

import (
	"context"
	"testing"

	"go-catalog-api/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo(t *testing.T) {
	db := testdb.Open(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	created := testdb.User(t, db, "ana@example.com", "secret")

	byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.True(t, byEmail.CheckPassword("secret"))

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, byEmail.SetPassword("changed"))
	require.NoError(t, repo.UpdatePassword(ctx, created.ID, byEmail.Password))

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.CheckPassword("changed"))
	assert.False(t, reloaded.CheckPassword("secret"))

	assert.ErrorIs(t, repo.UpdatePassword(ctx, created.ID+100, "x"), ErrUserNotFound)
}

func TestCategoryAndLocationRepo(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()

	category := testdb.Category(t, db, "Hardware", "Tools")
	city := testdb.City(t, db, "Zagreb County", "Zagreb")

	categories := NewCategoryRepo(db)
	ok, err := categories.Exists(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = categories.Exists(ctx, category.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)

	found, err := categories.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hardware", found.MainCategory.Name)

	_, err = categories.FindByID(ctx, category.ID+1)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	locations := NewLocationRepo(db)
	gotCity, err := locations.FindCityByID(ctx, city.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zagreb County", gotCity.State.Name)

	_, err = locations.FindCityByID(ctx, city.ID+1)
	assert.ErrorIs(t, err, ErrCityNotFound)
}
