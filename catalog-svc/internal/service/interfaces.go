package service

import (
	"context"

	"food-tracker/catalog-svc/internal/domain"
	"food-tracker/catalog-svc/internal/storage"
)

type CatalogServiceInterface interface {
	CreateRestaurantWithFirstReview(ctx context.Context, rest *domain.Restaurant, first *domain.FirstReview) (int64, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]domain.RestaurantView, error)
	RecentRestaurants(ctx context.Context, n int) ([]domain.RestaurantView, error)
	Search(ctx context.Context, area, cuisine string) ([]domain.RestaurantView, error)
	SearchRecent(ctx context.Context, area, cuisine string, n int) ([]domain.RestaurantView, error)
	EditRestaurant(ctx context.Context, rest *domain.Restaurant, picture []byte) error
	RemoveRestaurant(ctx context.Context, id int64) error

	AddReview(ctx context.Context, review *domain.Review) error
	EditReview(ctx context.Context, reviewID int64, rating int, comment string) error
	ListReviews(ctx context.Context, restaurantID int64) ([]domain.ReviewView, error)
	AverageRating(ctx context.Context, restaurantID int64) (float64, error)
	RatingDistribution(ctx context.Context, restaurantID int64) (map[string]int, error)

	AddUser(ctx context.Context, name string) (*domain.User, error)
	RemoveUser(ctx context.Context, name string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	UserCount(ctx context.Context) (int, error)

	Stats(ctx context.Context) (domain.CatalogStats, error)
	Areas(ctx context.Context) ([]string, error)
	Cuisines(ctx context.Context) ([]string, error)
	CuisineOptions() []string
	MapLinkQRCode(ctx context.Context, restaurantID int64) ([]byte, error)
}

type CatalogRepository interface {
	InsertRestaurant(ctx context.Context, rest *domain.Restaurant) (int64, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant, replacePicture bool) error
	DeleteRestaurant(ctx context.Context, id int64) error

	InsertReview(ctx context.Context, review *domain.Review) error
	GetReview(ctx context.Context, id int64) (*domain.Review, error)
	UpdateReview(ctx context.Context, id int64, rating int, comment string) error

	InsertUser(ctx context.Context, name string) (*domain.User, error)
	DeleteUser(ctx context.Context, name string) error
	CountUsers(ctx context.Context) (int, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	ListRestaurantsWithAggregates(ctx context.Context, filter domain.Filter) ([]domain.RestaurantView, error)
	ListReviews(ctx context.Context, restaurantID int64) ([]domain.ReviewView, error)
	AverageRating(ctx context.Context, restaurantID int64) (float64, error)
	RatingDistribution(ctx context.Context, restaurantID int64) (map[string]int, error)
	Stats(ctx context.Context) (domain.CatalogStats, error)
	ListAreas(ctx context.Context) ([]string, error)
	ListCuisines(ctx context.Context) ([]string, error)
}

type AggregateCache interface {
	GetRestaurants(ctx context.Context, f domain.Filter) ([]domain.RestaurantView, int64, bool, error)
	SetRestaurants(ctx context.Context, gen int64, f domain.Filter, views []domain.RestaurantView) error
	Invalidate(ctx context.Context) error
}

// Replicator makes a committed change durable beyond the local database.
type Replicator interface {
	Sync(ctx context.Context, change domain.ChangeEvent) error
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ CatalogRepository       = (*storage.PostgresRepository)(nil)
	_ AggregateCache          = (*storage.RedisCache)(nil)
	_ Replicator              = (*storage.KafkaReplicator)(nil)
	_ Replicator              = storage.LocalReplicator{}
)
