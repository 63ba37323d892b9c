package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvcoutinho/santinho/internal/models"
	"github.com/rvcoutinho/santinho/internal/storage/sqldb"
	"github.com/rvcoutinho/santinho/internal/upload"
)

func newTestPostService(t *testing.T) (*PostService, *sqldb.DB, *upload.PhotoStore) {
	t.Helper()

	store, err := sqldb.New(sqldb.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	photos, err := upload.NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	return NewPostService(store, photos), store, photos
}

func TestCreatePost(t *testing.T) {
	svc, store, photos := newTestPostService(t)
	ctx := context.Background()

	user := models.NewUser("maria", "hash")
	require.NoError(t, store.CreateUser(ctx, user))

	post, err := svc.Create(ctx, user.ID, "Ana Souza", "5", "flyer.jpg", strings.NewReader("jpegbytes"))
	require.NoError(t, err)

	assert.Equal(t, 5, post.FlyerCount)
	assert.NotEmpty(t, post.CandidateID)
	assert.True(t, strings.HasPrefix(post.PhotoURL, upload.URLPrefix))

	// Photo on disk
	entries, err := os.ReadDir(photos.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// Post visible in the feed
	feed, err := store.ListFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Ana Souza", feed[0].CandidateName)
}

func TestCreatePostTrimsInput(t *testing.T) {
	svc, store, _ := newTestPostService(t)
	ctx := context.Background()

	user := models.NewUser("maria", "hash")
	require.NoError(t, store.CreateUser(ctx, user))

	_, err := svc.Create(ctx, user.ID, "  Ana Souza  ", " 3 ", "f.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	candidates, err := store.ListCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Ana Souza", candidates[0].Name)
}

func TestCreatePostValidation(t *testing.T) {
	svc, store, photos := newTestPostService(t)
	ctx := context.Background()

	user := models.NewUser("maria", "hash")
	require.NoError(t, store.CreateUser(ctx, user))

	tests := []struct {
		name      string
		candidate string
		flyers    string
		photo     bool
		wantErr   error
	}{
		{"missing candidate", "", "5", true, ErrMissingCandidate},
		{"blank candidate", "   ", "5", true, ErrMissingCandidate},
		{"non-numeric count", "Ana", "many", true, ErrBadFlyerCount},
		{"zero count", "Ana", "0", true, ErrBadFlyerCount},
		{"negative count", "Ana", "-3", true, ErrBadFlyerCount},
		{"missing photo", "Ana", "5", false, ErrMissingPhoto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var photo io.Reader
			if tt.photo {
				photo = strings.NewReader("jpegbytes")
			}
			_, err := svc.Create(ctx, user.ID, tt.candidate, tt.flyers, "f.jpg", photo)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}

	// No rows or files should exist after only failed submissions.
	n, err := store.CountPosts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	entries, err := os.ReadDir(photos.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFeedServiceHome(t *testing.T) {
	svc, store, _ := newTestPostService(t)
	ctx := context.Background()

	user := models.NewUser("maria", "hash")
	require.NoError(t, store.CreateUser(ctx, user))

	for _, p := range []struct {
		candidate string
		flyers    string
	}{
		{"Ana Souza", "3"},
		{"Ana Souza", "5"},
		{"Beto Lima", "10"},
	} {
		_, err := svc.Create(ctx, user.ID, p.candidate, p.flyers, "f.jpg", strings.NewReader("x"))
		require.NoError(t, err)
	}

	home, err := NewFeedService(store).Home(ctx)
	require.NoError(t, err)

	assert.Len(t, home.Feed, 3)
	require.Len(t, home.Ranking, 2)
	assert.Equal(t, "Beto Lima", home.Ranking[0].Name)
	assert.EqualValues(t, 10, home.Ranking[0].TotalFlyers)
	assert.Equal(t, "Ana Souza", home.Ranking[1].Name)
	assert.EqualValues(t, 8, home.Ranking[1].TotalFlyers)
}
