package member_test

import (
	"context"
	"sync"
	"testing"

	"github.com/ifclub/ifclub-api/internal/member"
	"github.com/ifclub/ifclub-api/internal/model"
	"github.com/ifclub/ifclub-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMember(email string) *model.Member {
	return model.NewMember(model.NewMemberParams{
		Email:        email,
		PasswordHash: "$2a$04$hash",
		Name:         "tester",
	})
}

func TestMemberRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := member.NewMemberRepository(testutil.SetupTestDB(t))

	// Given
	created := newTestMember("a@x.com")

	// When
	require.NoError(t, repo.Create(ctx, created))

	// Then: the store assigned an id and both lookups see the row
	assert.NotZero(t, created.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
	assert.Equal(t, model.StatusActive, byID.Status)
	assert.Equal(t, model.GameProgressNotStarted, byID.GameProgress)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestMemberRepository_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := member.NewMemberRepository(testutil.SetupTestDB(t))
	require.NoError(t, repo.Create(ctx, newTestMember("a@x.com")))

	// When
	err := repo.Create(ctx, newTestMember("a@x.com"))

	// Then
	assert.ErrorIs(t, err, member.ErrDuplicateEmail)

	members, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestMemberRepository_Create_ConcurrentSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := member.NewMemberRepository(testutil.SetupTestDB(t))

	const workers = 8
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, newTestMember("race@x.com"))
		}(i)
	}
	wg.Wait()

	// Then: exactly one registration wins
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, member.ErrDuplicateEmail)
	}
	assert.Equal(t, 1, succeeded)

	members, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestMemberRepository_FindMisses(t *testing.T) {
	ctx := context.Background()
	repo := member.NewMemberRepository(testutil.SetupTestDB(t))

	// FindByEmail signals absence with nil
	found, err := repo.FindByEmail(ctx, "nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, found)

	// FindByID signals absence with ErrMemberNotFound
	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)

	members, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestMemberRepository_DeleteByID_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := member.NewMemberRepository(testutil.SetupTestDB(t))
	created := newTestMember("a@x.com")
	require.NoError(t, repo.Create(ctx, created))

	require.NoError(t, repo.DeleteByID(ctx, created.ID))
	require.NoError(t, repo.DeleteByID(ctx, created.ID))
	require.NoError(t, repo.DeleteByID(ctx, 12345))

	_, err := repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)

	// the email is free again
	assert.NoError(t, repo.Create(ctx, newTestMember("a@x.com")))
}

func TestMemberRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := member.NewMemberRepository(testutil.SetupTestDB(t))
	first := newTestMember("a@x.com")
	second := newTestMember("b@x.com")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.UpdateRefreshToken(ctx, first.ID, "stored-refresh"))

	t.Run("saves profile columns and keeps the refresh token", func(t *testing.T) {
		loaded, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)

		loaded.Name = "renamed"
		loaded.PhoneNumber = "010-1111-2222"
		loaded.RefreshToken = nil
		require.NoError(t, repo.Update(ctx, loaded))

		reloaded, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", reloaded.Name)
		assert.Equal(t, "010-1111-2222", reloaded.PhoneNumber)
		require.NotNil(t, reloaded.RefreshToken)
		assert.Equal(t, "stored-refresh", *reloaded.RefreshToken)
	})

	t.Run("member deleted after load", func(t *testing.T) {
		third := newTestMember("c@x.com")
		require.NoError(t, repo.Create(ctx, third))
		loaded, err := repo.FindByID(ctx, third.ID)
		require.NoError(t, err)
		require.NoError(t, repo.DeleteByID(ctx, third.ID))

		loaded.Name = "ghost"
		err = repo.Update(ctx, loaded)

		assert.ErrorIs(t, err, member.ErrMemberNotFound)
		_, err = repo.FindByID(ctx, third.ID)
		assert.ErrorIs(t, err, member.ErrMemberNotFound)
	})

	t.Run("unique index rejects a taken email", func(t *testing.T) {
		loaded, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)

		loaded.Email = "b@x.com"
		err = repo.Update(ctx, loaded)

		assert.ErrorIs(t, err, member.ErrDuplicateEmail)
	})
}

func TestMemberRepository_UpdateRefreshToken(t *testing.T) {
	ctx := context.Background()
	repo := member.NewMemberRepository(testutil.SetupTestDB(t))
	created := newTestMember("a@x.com")
	require.NoError(t, repo.Create(ctx, created))

	// overwrite keeps only the latest value
	require.NoError(t, repo.UpdateRefreshToken(ctx, created.ID, "first"))
	require.NoError(t, repo.UpdateRefreshToken(ctx, created.ID, "second"))

	loaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.RefreshToken)
	assert.Equal(t, "second", *loaded.RefreshToken)

	err = repo.UpdateRefreshToken(ctx, 999, "orphan")
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}
