package feed_service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localbuzz-feed-service/internal/config"
	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
	"localbuzz-feed-service/internal/model"
	image_memory "localbuzz-feed-service/internal/repository/image/memory"
	post_repository "localbuzz-feed-service/internal/repository/post"
	post_memory "localbuzz-feed-service/internal/repository/post/memory"
	user_mock "localbuzz-feed-service/mocks/user"
)

var feedCfg = config.Feed{
	DefaultPageSize:       20,
	MaxPageSize:           100,
	AdSlateSize:           10,
	RecomputeLookbackDays: 30,
}

type feedFixture struct {
	svc        *FeedService
	postRepo   post_repository.Repository
	userClient *user_mock.Client
}

func newFeedFixture(t *testing.T) *feedFixture {
	t.Helper()
	log := logger.New("test")
	postRepo := post_memory.NewPostRepository(log)
	imageRepo := image_memory.NewImageRepository(log)
	userClient := new(user_mock.Client)

	svc := NewFeedService(
		postRepo,
		imageRepo,
		NewAdProvider(postRepo, feedCfg.AdSlateSize),
		userClient,
		feedCfg,
		log,
		metrics.NewNoopProvider(),
	)
	return &feedFixture{svc: svc, postRepo: postRepo, userClient: userClient}
}

type seedOpts struct {
	authorID   int64
	category   model.PostCategory
	pincode    string
	createdAt  time.Time
	hotScore   float64
	adApproved bool
}

func (f *feedFixture) seed(t *testing.T, opts seedOpts) *model.Post {
	t.Helper()
	post, err := f.postRepo.Create(context.Background(), &model.Post{
		AuthorID:     opts.authorID,
		Category:     opts.category,
		Headline:     fmt.Sprintf("%s in %s", opts.category, opts.pincode),
		Pincode:      opts.pincode,
		HotScore:     opts.hotScore,
		IsAdApproved: opts.adApproved,
		CreatedAt:    pgtype.Timestamptz{Time: opts.createdAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: opts.createdAt, Valid: true},
	})
	require.NoError(t, err)
	return post
}

var viewer = &model.User{ID: 1, LocalBody: "Kochi Corporation", Pincode: "682001"}

func TestFeedService_Feed_UnknownTab(t *testing.T) {
	f := newFeedFixture(t)

	_, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "Trending"})
	assert.ErrorIs(t, err, custom_errors.ErrInvalidFeedTab)
}

func TestFeedService_Feed_TabIsCaseInsensitive(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: base})

	page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "aLL"})
	require.NoError(t, err)
	assert.Len(t, page.Posts, 1)
}

func TestFeedService_Feed_ExcludesAdsFromPosts(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: base})
	ad := f.seed(t, seedOpts{authorID: 3, category: model.CategoryAdvertisement, pincode: "682001", createdAt: base.Add(time.Hour), adApproved: true})
	f.seed(t, seedOpts{authorID: 3, category: model.CategoryAdvertisement, pincode: "682001", createdAt: base.Add(2 * time.Hour)})

	page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All"})
	require.NoError(t, err)

	require.Len(t, page.Posts, 1)
	assert.Equal(t, model.CategoryNews, page.Posts[0].Post.Category)

	// Only the approved ad makes the slate.
	require.Len(t, page.Ads, 1)
	assert.Equal(t, ad.ID, page.Ads[0].Post.ID)
}

func TestFeedService_Feed_AdSlateCap(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		f.seed(t, seedOpts{
			authorID:   3,
			category:   model.CategoryAdvertisement,
			pincode:    "682001",
			createdAt:  base.Add(time.Duration(i) * time.Minute),
			adApproved: true,
		})
	}

	page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All"})
	require.NoError(t, err)

	assert.Empty(t, page.Posts)
	require.Len(t, page.Ads, 10)
	// Newest first.
	for i := 1; i < len(page.Ads); i++ {
		assert.True(t, page.Ads[i-1].Post.CreatedAt.Time.After(page.Ads[i].Post.CreatedAt.Time))
	}
}

func TestFeedService_Feed_ProblemsTab(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: base})
	problem := f.seed(t, seedOpts{authorID: 2, category: model.CategoryProblem, pincode: "682001", createdAt: base})
	f.seed(t, seedOpts{authorID: 2, category: model.CategoryProblem, pincode: "110001", createdAt: base})

	page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "Problems"})
	require.NoError(t, err)

	require.Len(t, page.Posts, 1)
	assert.Equal(t, problem.ID, page.Posts[0].Post.ID)
}

func TestFeedService_Feed_YoursIgnoresLocality(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	mine := f.seed(t, seedOpts{authorID: viewer.ID, category: model.CategoryNews, pincode: "110001", createdAt: base})
	f.seed(t, seedOpts{authorID: 99, category: model.CategoryNews, pincode: "682001", createdAt: base})

	page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "Yours"})
	require.NoError(t, err)

	require.Len(t, page.Posts, 1)
	assert.Equal(t, mine.ID, page.Posts[0].Post.ID)
}

func TestFeedService_Feed_TodayTabHotOrder(t *testing.T) {
	f := newFeedFixture(t)
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	cold := f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: now.Add(-time.Hour), hotScore: 100})
	hot := f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: now.Add(-2 * time.Hour), hotScore: 500})
	// Posted yesterday, never on the Today tab regardless of score.
	f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: now.Add(-24 * time.Hour), hotScore: 900})

	page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "Today"})
	require.NoError(t, err)

	require.Len(t, page.Posts, 2)
	assert.Equal(t, hot.ID, page.Posts[0].Post.ID)
	assert.Equal(t, cold.ID, page.Posts[1].Post.ID)
}

func TestFeedService_Feed_ScopePriority(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	home := f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: base})
	away := f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "110001", createdAt: base})

	t.Run("explicit pincode wins", func(t *testing.T) {
		page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", Pincode: "110001", LocalBody: "Kochi Corporation"})
		require.NoError(t, err)
		require.Len(t, page.Posts, 1)
		assert.Equal(t, away.ID, page.Posts[0].Post.ID)
	})

	t.Run("local body resolves through identity", func(t *testing.T) {
		f.userClient.On("GetUserByLocalBody", mock.Anything, "Delhi NDMC").
			Return(&model.User{ID: 50, LocalBody: "Delhi NDMC", Pincode: "110001"}, nil).Once()

		page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", LocalBody: "Delhi NDMC"})
		require.NoError(t, err)
		require.Len(t, page.Posts, 1)
		assert.Equal(t, away.ID, page.Posts[0].Post.ID)
	})

	t.Run("unknown local body propagates not found", func(t *testing.T) {
		f.userClient.On("GetUserByLocalBody", mock.Anything, "Atlantis").
			Return(nil, custom_errors.ErrUserNotFound).Once()

		_, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", LocalBody: "Atlantis"})
		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
	})

	t.Run("falls back to the user's pincode", func(t *testing.T) {
		page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All"})
		require.NoError(t, err)
		require.Len(t, page.Posts, 1)
		assert.Equal(t, home.ID, page.Posts[0].Post.ID)
	})
}

func TestFeedService_Feed_TodayTabPaginationWithTiedScores(t *testing.T) {
	f := newFeedFixture(t)
	now := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	// Duplicate scores force the continuation to fall through to the
	// (created_at, id) tiebreak.
	scores := []float64{500, 500, 500, 300, 300, 100, 100}
	for i, score := range scores {
		f.seed(t, seedOpts{
			authorID:  2,
			category:  model.CategoryNews,
			pincode:   "682001",
			createdAt: now.Add(-time.Duration(i+1) * time.Minute),
			hotScore:  score,
		})
	}

	var collected []*model.Post
	cursor := ""
	for pages := 0; ; pages++ {
		require.Less(t, pages, 10, "cursor never terminated")

		page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "Today", Limit: 2, Cursor: cursor})
		require.NoError(t, err)
		for _, p := range page.Posts {
			collected = append(collected, p.Post)
		}
		if page.NextCursor == nil {
			assert.Len(t, page.Posts, 1)
			break
		}
		require.Len(t, page.Posts, 2)
		cursor = *page.NextCursor
	}

	require.Len(t, collected, len(scores))
	seen := map[int64]bool{}
	for i, post := range collected {
		assert.False(t, seen[post.ID], "post %d repeated across pages", post.ID)
		seen[post.ID] = true
		if i == 0 {
			continue
		}
		prev := collected[i-1]
		if prev.HotScore == post.HotScore {
			assert.True(t, prev.CreatedAt.Time.After(post.CreatedAt.Time),
				"tied scores must keep newest-first order")
		} else {
			assert.Greater(t, prev.HotScore, post.HotScore)
		}
	}
}

func TestFeedService_Feed_Pagination(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: base.Add(time.Duration(i) * time.Minute)})
	}

	first, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", Limit: 2})
	require.NoError(t, err)
	require.Len(t, first.Posts, 2)
	require.NotNil(t, first.NextCursor)

	second, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", Limit: 2, Cursor: *first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Posts, 2)
	require.NotNil(t, second.NextCursor)

	third, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", Limit: 2, Cursor: *second.NextCursor})
	require.NoError(t, err)
	require.Len(t, third.Posts, 1)
	assert.Nil(t, third.NextCursor)

	seen := map[int64]bool{}
	for _, page := range [][]*model.PostDetailed{first.Posts, second.Posts, third.Posts} {
		for _, p := range page {
			assert.False(t, seen[p.Post.ID], "post %d repeated across pages", p.Post.ID)
			seen[p.Post.ID] = true
		}
	}
	assert.Len(t, seen, 5)
}

func TestFeedService_Feed_PaginationStableUnderInsertion(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: base.Add(time.Duration(i) * time.Minute)})
	}

	first, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", Limit: 2})
	require.NoError(t, err)
	require.NotNil(t, first.NextCursor)

	// A newer post arriving between page fetches must not shift the
	// remaining pages.
	f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: base.Add(time.Hour)})

	second, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", Limit: 2, Cursor: *first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Posts, 2)

	for _, p := range second.Posts {
		for _, q := range first.Posts {
			assert.NotEqual(t, q.Post.ID, p.Post.ID)
		}
	}
}

func TestFeedService_Feed_InvalidCursor(t *testing.T) {
	f := newFeedFixture(t)

	_, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", Cursor: "not-base64!"})
	assert.ErrorIs(t, err, custom_errors.ErrInvalidCursor)
}

func TestFeedService_Feed_CursorDisciplineMismatch(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return base }
	for i := 0; i < 3; i++ {
		f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: base.Add(time.Duration(i) * time.Minute)})
	}

	newest, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", Limit: 1})
	require.NoError(t, err)
	require.NotNil(t, newest.NextCursor)

	// A newest-first cursor handed to the hot-ordered Today tab is invalid.
	_, err = f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "Today", Cursor: *newest.NextCursor})
	assert.ErrorIs(t, err, custom_errors.ErrInvalidCursor)
}

func TestFeedService_Feed_LimitClamp(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: base.Add(time.Duration(i) * time.Second)})
	}

	t.Run("default page size", func(t *testing.T) {
		page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All"})
		require.NoError(t, err)
		assert.Len(t, page.Posts, 20)
	})

	t.Run("clamped at maximum", func(t *testing.T) {
		page, err := f.svc.Feed(context.Background(), viewer, FeedQuery{Tab: "All", Limit: 500})
		require.NoError(t, err)
		assert.Len(t, page.Posts, 100)
	})
}

func TestFeedService_Refresh(t *testing.T) {
	f := newFeedFixture(t)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		f.seed(t, seedOpts{authorID: 2, category: model.CategoryNews, pincode: "682001", createdAt: base.Add(time.Duration(i) * time.Minute)})
	}

	posts, err := f.svc.Refresh(context.Background(), viewer, FeedQuery{Tab: "All"})
	require.NoError(t, err)

	assert.Len(t, posts, 20)
	for i := 1; i < len(posts); i++ {
		assert.True(t, posts[i-1].Post.CreatedAt.Time.After(posts[i].Post.CreatedAt.Time))
	}
}
