package feed_service

import (
	"context"
	"log/slog"
	"time"

	"localbuzz-feed-service/internal/clients/user"
	"localbuzz-feed-service/internal/config"
	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
	"localbuzz-feed-service/internal/model"
	"localbuzz-feed-service/internal/pagination"
	image_repository "localbuzz-feed-service/internal/repository/image"
	post_repository "localbuzz-feed-service/internal/repository/post"
)

// FeedService plans the candidate query for a tab, pages it with opaque
// cursors and assembles the result with the separately-sourced ad slate.
// It only ever reads.
type FeedService struct {
	postRepo   post_repository.Repository
	imageRepo  image_repository.Repository
	ads        AdProvider
	userClient user_client.Client
	cfg        config.Feed
	log        *logger.Logger
	metrics    metrics.Provider
	now        func() time.Time
}

func NewFeedService(
	postRepo post_repository.Repository,
	imageRepo image_repository.Repository,
	ads AdProvider,
	userClient user_client.Client,
	cfg config.Feed,
	log *logger.Logger,
	metrics metrics.Provider,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		imageRepo:  imageRepo,
		ads:        ads,
		userClient: userClient,
		cfg:        cfg,
		log:        log,
		metrics:    metrics,
		now:        time.Now,
	}
}

// plan resolves tab and locality scope into repository filters plus the
// ordering discipline the paginator needs.
func (s *FeedService) plan(ctx context.Context, user *model.User, query FeedQuery) (model.FeedFilters, model.FeedOrder, error) {
	tab, ok := model.ParseFeedTab(query.Tab)
	if !ok {
		return model.FeedFilters{}, "", custom_errors.ErrInvalidFeedTab
	}

	excludeAds := model.CategoryAdvertisement
	filters := model.FeedFilters{
		ExcludeCategory: &excludeAds,
		Order:           model.OrderNewest,
	}

	if tab == model.TabYours {
		// A user's own posts are visible to them regardless of scope.
		authorID := user.ID
		filters.AuthorID = &authorID
		return filters, filters.Order, nil
	}

	pincode, err := s.resolveScope(ctx, user, query)
	if err != nil {
		return model.FeedFilters{}, "", err
	}
	filters.Pincode = &pincode

	switch tab {
	case model.TabToday:
		today := s.now().UTC()
		filters.CreatedOn = &today
		filters.Order = model.OrderHot
	case model.TabProblems:
		category := model.CategoryProblem
		filters.Category = &category
	case model.TabUpdates:
		category := model.CategoryUpdate
		filters.Category = &category
	}

	return filters, filters.Order, nil
}

// resolveScope picks the locality: explicit pincode wins, then an explicit
// local body name resolved through the identity provider, then the
// requesting user's own pincode.
func (s *FeedService) resolveScope(ctx context.Context, user *model.User, query FeedQuery) (string, error) {
	if query.Pincode != "" {
		return query.Pincode, nil
	}
	if query.LocalBody != "" {
		scopeUser, err := s.userClient.GetUserByLocalBody(ctx, query.LocalBody)
		if err != nil {
			s.log.Debug("Failed to resolve local body scope",
				slog.String("local_body", query.LocalBody),
				slog.String("error", err.Error()))
			return "", err
		}
		return scopeUser.Pincode, nil
	}
	return user.Pincode, nil
}

func (s *FeedService) Feed(ctx context.Context, user *model.User, query FeedQuery) (result *model.FeedPage, err error) {
	defer func() {
		s.metrics.IncrementFeedRequests(query.Tab, err == nil)
	}()

	filters, order, err := s.plan(ctx, user, query)
	if err != nil {
		return nil, err
	}

	if query.Cursor != "" {
		cursor, decodeErr := pagination.Decode(query.Cursor, order)
		if decodeErr != nil {
			return nil, decodeErr
		}
		filters.AfterHotScore = cursor.HotScore
		filters.AfterCreatedAt = &cursor.CreatedAt
		filters.AfterID = &cursor.ID
	}

	limit := pagination.ClampLimit(query.Limit, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	// One extra row to learn whether a next page exists.
	filters.Limit = limit + 1

	posts, err := s.postRepo.ListFeed(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list feed candidates", slog.String("tab", query.Tab), slog.String("error", err.Error()))
		return nil, err
	}

	var nextCursor *string
	if len(posts) > limit {
		posts = posts[:limit]
		token := pagination.Encode(pagination.FromPost(posts[len(posts)-1], order))
		nextCursor = &token
	}

	detailed, err := s.attachImages(ctx, posts)
	if err != nil {
		return nil, err
	}

	var scope string
	if filters.Pincode != nil {
		scope = *filters.Pincode
	} else {
		scope = user.Pincode
	}

	adPosts, err := s.ads.Slate(ctx, scope)
	if err != nil {
		s.log.Error("Failed to fetch ad slate", slog.String("pincode", scope), slog.String("error", err.Error()))
		return nil, err
	}
	ads, err := s.attachImages(ctx, adPosts)
	if err != nil {
		return nil, err
	}
	if ads == nil {
		ads = []*model.PostDetailed{}
	}

	return &model.FeedPage{
		Posts:      detailed,
		NextCursor: nextCursor,
		Ads:        ads,
	}, nil
}

func (s *FeedService) Refresh(ctx context.Context, user *model.User, query FeedQuery) ([]*model.PostDetailed, error) {
	filters, _, err := s.plan(ctx, user, query)
	if err != nil {
		return nil, err
	}
	filters.Limit = s.cfg.DefaultPageSize

	posts, err := s.postRepo.ListFeed(ctx, filters)
	if err != nil {
		s.log.Error("Failed to refresh feed", slog.String("tab", query.Tab), slog.String("error", err.Error()))
		return nil, err
	}

	return s.attachImages(ctx, posts)
}

func (s *FeedService) attachImages(ctx context.Context, posts []*model.Post) ([]*model.PostDetailed, error) {
	ids := make([]int64, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}

	images, err := s.imageRepo.GetByPosts(ctx, ids)
	if err != nil {
		s.log.Error("Failed to load post images", slog.String("error", err.Error()))
		return nil, err
	}

	detailed := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		detailed = append(detailed, &model.PostDetailed{
			Post:   post,
			Images: images[post.ID],
			Votes: &model.VoteSummary{
				Upvotes:   post.Upvotes,
				Downvotes: post.Downvotes,
			},
		})
	}
	return detailed, nil
}
