package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MashookhKhanlol/youtube-clone/internal/database"
	"github.com/MashookhKhanlol/youtube-clone/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.Migrate(db), "failed to migrate test database")
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()

	u := &domain.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createVideo(t *testing.T, db *gorm.DB, ownerID int64, title string) *domain.Video {
	t.Helper()

	v := &domain.Video{
		OwnerID:     ownerID,
		Title:       title,
		VideoURL:    "videos/" + title + ".mp4",
		IsPublished: true,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func TestIsUniqueViolation_SQLiteDriver(t *testing.T) {
	db := setupDB(t)
	u := createUser(t, db, "alice")
	v := createVideo(t, db, u.ID, "clip")

	require.NoError(t, db.Create(&domain.VideoView{VideoID: v.ID, UserID: u.ID}).Error)

	// the sqlite translator does not know the pure-Go driver's error type,
	// so the raw constraint error must be matched directly
	err := db.Create(&domain.VideoView{VideoID: v.ID, UserID: u.ID}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err), "duplicate insert not recognized: %v", err)
	assert.True(t, IsUniqueViolation(fmt.Errorf("create view: %w", err)))
	assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
}

func TestUserRepository_SwapRefreshTokenHash(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)
	u := createUser(t, db, "alice")

	oldHash := "hash-v1"
	require.NoError(t, repo.SetRefreshTokenHash(ctx, u.ID, &oldHash))

	// first rotation wins
	swapped, err := repo.SwapRefreshTokenHash(ctx, u.ID, "hash-v1", "hash-v2")
	require.NoError(t, err)
	assert.True(t, swapped)

	// replay with the superseded hash loses
	swapped, err = repo.SwapRefreshTokenHash(ctx, u.ID, "hash-v1", "hash-v3")
	require.NoError(t, err)
	assert.False(t, swapped)

	// the winner's hash is the stored one
	stored, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RefreshTokenHash)
	assert.Equal(t, "hash-v2", *stored.RefreshTokenHash)
}

func TestUserRepository_SwapAfterRevokeFails(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)
	u := createUser(t, db, "alice")

	hash := "hash-v1"
	require.NoError(t, repo.SetRefreshTokenHash(ctx, u.ID, &hash))
	require.NoError(t, repo.SetRefreshTokenHash(ctx, u.ID, nil))

	swapped, err := repo.SwapRefreshTokenHash(ctx, u.ID, "hash-v1", "hash-v2")
	require.NoError(t, err)
	assert.False(t, swapped)
}

func TestUserRepository_GetByIdentifier(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)
	createUser(t, db, "alice")

	byUsername, err := repo.GetByIdentifier(ctx, "alice")
	require.NoError(t, err)
	byEmail, err := repo.GetByIdentifier(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, byUsername.ID, byEmail.ID)

	_, err = repo.GetByIdentifier(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLikeRepository_ToggleVideo(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewLikeRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	v := createVideo(t, db, alice.ID, "clip")

	liked, err := repo.Toggle(ctx, alice.ID, domain.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	// a second user likes the same video independently
	liked, err = repo.Toggle(ctx, bob.ID, domain.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := repo.Count(ctx, domain.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// toggling again removes only the caller's like
	liked, err = repo.Toggle(ctx, alice.ID, domain.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = repo.Count(ctx, domain.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	exists, err := repo.Exists(ctx, bob.ID, domain.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLikeRepository_TargetsAreIndependent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewLikeRepository(db)
	alice := createUser(t, db, "alice")
	v := createVideo(t, db, alice.ID, "clip")

	tweet := &domain.Tweet{OwnerID: alice.ID, Content: "hi"}
	require.NoError(t, db.Create(tweet).Error)

	_, err := repo.Toggle(ctx, alice.ID, domain.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, alice.ID, domain.LikeTargetTweet, tweet.ID)
	require.NoError(t, err)

	videoCount, err := repo.Count(ctx, domain.LikeTargetVideo, v.ID)
	require.NoError(t, err)
	tweetCount, err := repo.Count(ctx, domain.LikeTargetTweet, tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), videoCount)
	assert.Equal(t, int64(1), tweetCount)
}

func TestSubscriptionRepository_Toggle(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewSubscriptionRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	subscribed, err := repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)

	count, err := repo.CountSubscribers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// subscribing is directional
	count, err = repo.CountSubscribers(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	subscribed, err = repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)

	count, err = repo.CountSubscribers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSubscriptionRepository_SubscriberIDs(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewSubscriptionRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	_, err := repo.Toggle(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, carol.ID, alice.ID)
	require.NoError(t, err)

	ids, err := repo.SubscriberIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{bob.ID, carol.ID}, ids)
}

func TestWatchHistoryRepository_RewatchBumpsNotDuplicates(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewWatchHistoryRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	first := createVideo(t, db, bob.ID, "first")
	second := createVideo(t, db, bob.ID, "second")

	require.NoError(t, repo.Record(ctx, alice.ID, first.ID))
	require.NoError(t, repo.Record(ctx, alice.ID, second.ID))
	// re-watch the first video: it should move to the front, not duplicate
	require.NoError(t, repo.Record(ctx, alice.ID, first.ID))

	watched, err := repo.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, watched, 2)
	assert.Equal(t, first.ID, watched[0].Video.ID)
	assert.Equal(t, second.ID, watched[1].Video.ID)
	assert.Equal(t, "bob", watched[0].Owner.Username)
}

func TestWatchHistoryRepository_SkipsDeletedVideos(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewWatchHistoryRepository(db)
	videos := NewVideoRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	v := createVideo(t, db, bob.ID, "gone")

	require.NoError(t, repo.Record(ctx, alice.ID, v.ID))
	require.NoError(t, videos.Delete(ctx, v.ID))

	watched, err := repo.List(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, watched)
}

func TestVideoRepository_ViewsAreDistinctPerUser(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewVideoRepository(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	v := createVideo(t, db, alice.ID, "clip")

	require.NoError(t, repo.AddView(ctx, v.ID, bob.ID))
	// the same viewer again is a no-op
	require.NoError(t, repo.AddView(ctx, v.ID, bob.ID))
	require.NoError(t, repo.AddView(ctx, v.ID, alice.ID))

	count, err := repo.ViewCount(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	total, err := repo.TotalViewsByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestVideoRepository_ListFilters(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewVideoRepository(db)
	alice := createUser(t, db, "alice")

	createVideo(t, db, alice.ID, "golang tutorial")
	createVideo(t, db, alice.ID, "cooking show")
	draft := &domain.Video{OwnerID: alice.ID, Title: "draft", VideoURL: "videos/draft.mp4"}
	require.NoError(t, db.Create(draft).Error)

	published, total, err := repo.List(ctx, VideoFilter{OnlyPublished: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, published, 2)

	matched, total, err := repo.List(ctx, VideoFilter{Query: "GOLANG", OnlyPublished: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matched, 1)
	assert.Equal(t, "golang tutorial", matched[0].Title)
}

func TestPlaylistRepository_AddVideoIdempotent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewPlaylistRepository(db)
	alice := createUser(t, db, "alice")
	v := createVideo(t, db, alice.ID, "clip")

	p := &domain.Playlist{OwnerID: alice.ID, Name: "favs"}
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.AddVideo(ctx, p.ID, v.ID))
	require.NoError(t, repo.AddVideo(ctx, p.ID, v.ID))

	loaded, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Videos, 1)

	require.NoError(t, repo.RemoveVideo(ctx, p.ID, v.ID))
	loaded, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Videos)
}

func TestAggregatesAreZeroForFreshChannel(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	alice := createUser(t, db, "alice")

	videos := NewVideoRepository(db)
	likes := NewLikeRepository(db)
	subscriptions := NewSubscriptionRepository(db)

	totalVideos, err := videos.CountByOwner(ctx, alice.ID)
	require.NoError(t, err)
	totalViews, err := videos.TotalViewsByOwner(ctx, alice.ID)
	require.NoError(t, err)
	totalLikes, err := likes.CountForOwnerVideos(ctx, alice.ID)
	require.NoError(t, err)
	totalSubs, err := subscriptions.CountSubscribers(ctx, alice.ID)
	require.NoError(t, err)

	assert.Zero(t, totalVideos)
	assert.Zero(t, totalViews)
	assert.Zero(t, totalLikes)
	assert.Zero(t, totalSubs)
}
