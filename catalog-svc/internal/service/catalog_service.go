package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"food-tracker/catalog-svc/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrSync        = errors.New("change committed locally but not flushed to replica")
	ErrFirstReview = errors.New("restaurant saved but first review was rejected")
	ErrNoMapLink   = errors.New("restaurant has no map link")
)

type CatalogService struct {
	repo       CatalogRepository
	cache      AggregateCache
	replicator Replicator
	qr         QRGenerator
	logger     *zap.SugaredLogger
}

// NewCatalogService wires the facade. cache and qr may be nil; a nil
// replicator means the database commit is the only durability step.
func NewCatalogService(repo CatalogRepository, cache AggregateCache, replicator Replicator, qr QRGenerator, logger *zap.SugaredLogger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CatalogService{
		repo:       repo,
		cache:      cache,
		replicator: replicator,
		qr:         qr,
		logger:     logger,
	}
}

// committed runs after every successful write: drop cached aggregates, then
// flush the change. The caller only reports success if this returns nil.
func (s *CatalogService) committed(ctx context.Context, change domain.ChangeEvent) error {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warnw("retrying aggregate cache invalidation", "change", change.Type, "error", err)
			if err := s.cache.Invalidate(ctx); err != nil {
				s.logger.Errorw("failed to invalidate aggregate cache", "change", change.Type, "error", err)
			}
		}
	}
	if s.replicator == nil {
		return nil
	}
	change.Timestamp = time.Now()
	if err := s.replicator.Sync(ctx, change); err != nil {
		s.logger.Errorw("replica sync failed", "change", change.Type, "restaurant_id", change.RestaurantID, "error", err)
		return fmt.Errorf("%w: %v", ErrSync, err)
	}
	return nil
}

// CreateRestaurantWithFirstReview inserts the restaurant and, when first
// carries a comment, a review against the generated id. The review is never
// attempted unless the restaurant insert and its sync succeeded. When the
// returned error is ErrSync or ErrFirstReview the returned id is still valid.
func (s *CatalogService) CreateRestaurantWithFirstReview(ctx context.Context, rest *domain.Restaurant, first *domain.FirstReview) (int64, error) {
	if err := check(restaurantInput{
		Title:         rest.Title,
		Area:          rest.Area,
		GoogleMapLink: rest.GoogleMapLink,
		Cuisines:      rest.Cuisines,
	}); err != nil {
		return 0, err
	}
	rest.Cuisines = JoinCuisines(SplitCuisines(rest.Cuisines))

	withReview := first != nil && strings.TrimSpace(first.Comment) != ""
	var review domain.Review
	if withReview {
		review = domain.Review{
			ReviewerName: first.ReviewerName,
			Rating:       first.Rating,
			Comment:      first.Comment,
		}
		if review.ReviewerName == "" {
			review.ReviewerName = rest.AddedBy
		}
		if err := check(reviewInput{ReviewerName: review.ReviewerName, Rating: review.Rating}); err != nil {
			return 0, err
		}
	}

	id, err := s.repo.InsertRestaurant(ctx, rest)
	if err != nil {
		s.logger.Errorw("failed to add restaurant", "title", rest.Title, "error", err)
		return 0, err
	}
	if err := s.committed(ctx, domain.ChangeEvent{Type: domain.ChangeRestaurantCreated, RestaurantID: id}); err != nil {
		return id, err
	}
	s.logger.Infow("restaurant added", "id", id, "title", rest.Title)

	if !withReview {
		return id, nil
	}

	review.RestaurantID = id
	if err := s.repo.InsertReview(ctx, &review); err != nil {
		s.logger.Errorw("failed to add first review", "restaurant_id", id, "error", err)
		return id, fmt.Errorf("%w: %w", ErrFirstReview, err)
	}
	if err := s.committed(ctx, domain.ChangeEvent{Type: domain.ChangeReviewCreated, RestaurantID: id, ReviewID: review.ID}); err != nil {
		return id, err
	}
	return id, nil
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.RestaurantView, error) {
	return s.list(ctx, domain.Filter{})
}

func (s *CatalogService) RecentRestaurants(ctx context.Context, n int) ([]domain.RestaurantView, error) {
	if n <= 0 {
		n = 3
	}
	return s.list(ctx, domain.Filter{Limit: n})
}

func (s *CatalogService) Search(ctx context.Context, area, cuisine string) ([]domain.RestaurantView, error) {
	return s.list(ctx, domain.Filter{Area: strings.TrimSpace(area), Cuisine: strings.TrimSpace(cuisine)})
}

// SearchRecent is Search capped to the n most recently added matches.
func (s *CatalogService) SearchRecent(ctx context.Context, area, cuisine string, n int) ([]domain.RestaurantView, error) {
	if n <= 0 {
		n = 3
	}
	return s.list(ctx, domain.Filter{Area: strings.TrimSpace(area), Cuisine: strings.TrimSpace(cuisine), Limit: n})
}

func (s *CatalogService) list(ctx context.Context, f domain.Filter) ([]domain.RestaurantView, error) {
	var (
		gen      int64
		cacheErr error
	)
	if s.cache != nil {
		var (
			views []domain.RestaurantView
			ok    bool
		)
		views, gen, ok, cacheErr = s.cache.GetRestaurants(ctx, f)
		if cacheErr != nil {
			s.logger.Warnw("aggregate cache read failed", "error", cacheErr)
		} else if ok {
			return views, nil
		}
	}

	views, err := s.repo.ListRestaurantsWithAggregates(ctx, f)
	if err != nil {
		return nil, err
	}

	// gen is the generation seen before the query; a write committed since
	// then has moved past it, so this snapshot is never served.
	if s.cache != nil && cacheErr == nil {
		if err := s.cache.SetRestaurants(ctx, gen, f, views); err != nil {
			s.logger.Warnw("aggregate cache write failed", "error", err)
		}
	}
	return views, nil
}

// EditRestaurant replaces title, area, cuisines, map link and price. A nil
// picture keeps the stored one.
func (s *CatalogService) EditRestaurant(ctx context.Context, rest *domain.Restaurant, picture []byte) error {
	if err := check(restaurantInput{
		Title:         rest.Title,
		Area:          rest.Area,
		GoogleMapLink: rest.GoogleMapLink,
		Cuisines:      rest.Cuisines,
	}); err != nil {
		return err
	}
	rest.Cuisines = JoinCuisines(SplitCuisines(rest.Cuisines))

	replacePicture := picture != nil
	if replacePicture {
		rest.Picture = picture
	}
	if err := s.repo.UpdateRestaurant(ctx, rest, replacePicture); err != nil {
		s.logger.Errorw("failed to update restaurant", "id", rest.ID, "error", err)
		return err
	}
	return s.committed(ctx, domain.ChangeEvent{Type: domain.ChangeRestaurantUpdated, RestaurantID: rest.ID})
}

func (s *CatalogService) RemoveRestaurant(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRestaurant(ctx, id); err != nil {
		s.logger.Errorw("failed to delete restaurant", "id", id, "error", err)
		return err
	}
	s.logger.Infow("restaurant deleted", "id", id)
	return s.committed(ctx, domain.ChangeEvent{Type: domain.ChangeRestaurantDeleted, RestaurantID: id})
}

func (s *CatalogService) AddReview(ctx context.Context, review *domain.Review) error {
	if err := check(reviewInput{ReviewerName: review.ReviewerName, Rating: review.Rating}); err != nil {
		return err
	}
	if err := s.repo.InsertReview(ctx, review); err != nil {
		s.logger.Errorw("failed to add review", "restaurant_id", review.RestaurantID, "error", err)
		return err
	}
	return s.committed(ctx, domain.ChangeEvent{Type: domain.ChangeReviewCreated, RestaurantID: review.RestaurantID, ReviewID: review.ID})
}

func (s *CatalogService) EditReview(ctx context.Context, reviewID int64, rating int, comment string) error {
	if err := check(ratingInput{Rating: rating}); err != nil {
		return err
	}
	if err := s.repo.UpdateReview(ctx, reviewID, rating, comment); err != nil {
		s.logger.Errorw("failed to update review", "id", reviewID, "error", err)
		return err
	}

	change := domain.ChangeEvent{Type: domain.ChangeReviewUpdated, ReviewID: reviewID}
	if rev, err := s.repo.GetReview(ctx, reviewID); err == nil {
		change.RestaurantID = rev.RestaurantID
	}
	return s.committed(ctx, change)
}

func (s *CatalogService) ListReviews(ctx context.Context, restaurantID int64) ([]domain.ReviewView, error) {
	return s.repo.ListReviews(ctx, restaurantID)
}

func (s *CatalogService) AverageRating(ctx context.Context, restaurantID int64) (float64, error) {
	return s.repo.AverageRating(ctx, restaurantID)
}

func (s *CatalogService) RatingDistribution(ctx context.Context, restaurantID int64) (map[string]int, error) {
	return s.repo.RatingDistribution(ctx, restaurantID)
}

func (s *CatalogService) AddUser(ctx context.Context, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if err := check(userInput{Name: name}); err != nil {
		return nil, err
	}
	user, err := s.repo.InsertUser(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.committed(ctx, domain.ChangeEvent{Type: domain.ChangeUserCreated, UserName: name}); err != nil {
		return user, err
	}
	return user, nil
}

func (s *CatalogService) RemoveUser(ctx context.Context, name string) error {
	if err := s.repo.DeleteUser(ctx, name); err != nil {
		return err
	}
	return s.committed(ctx, domain.ChangeEvent{Type: domain.ChangeUserDeleted, UserName: name})
}

func (s *CatalogService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *CatalogService) UserCount(ctx context.Context) (int, error) {
	return s.repo.CountUsers(ctx)
}

func (s *CatalogService) Stats(ctx context.Context) (domain.CatalogStats, error) {
	return s.repo.Stats(ctx)
}

func (s *CatalogService) Areas(ctx context.Context) ([]string, error) {
	return s.repo.ListAreas(ctx)
}

func (s *CatalogService) Cuisines(ctx context.Context) ([]string, error) {
	return s.repo.ListCuisines(ctx)
}

func (s *CatalogService) CuisineOptions() []string {
	return append([]string(nil), cuisineOptions...)
}

func (s *CatalogService) MapLinkQRCode(ctx context.Context, restaurantID int64) ([]byte, error) {
	rest, err := s.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if rest.GoogleMapLink == "" {
		return nil, ErrNoMapLink
	}
	if s.qr == nil {
		return nil, errors.New("qr generator not configured")
	}
	return s.qr.Generate(rest.GoogleMapLink)
}
