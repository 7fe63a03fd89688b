package domain

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Restaurant is a catalog entry. AddedBy is a snapshot of the user name at
// creation time, not a reference to the users table.
type Restaurant struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Cuisines       string    `json:"cuisines"`
	Area           string    `json:"area"`
	GoogleMapLink  string    `json:"google_map_link"`
	AddedBy        string    `json:"added_by"`
	PricePerPerson *float64  `json:"price_per_person,omitempty"`
	Picture        []byte    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

type Review struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ReviewDate   time.Time `json:"review_date"`
}

// RestaurantView is a restaurant with aggregates computed from its reviews.
type RestaurantView struct {
	Restaurant
	HasPicture  bool    `json:"has_picture"`
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

type ReviewView = Review

// FirstReview is the optional review submitted together with a new restaurant.
type FirstReview struct {
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// Filter narrows a restaurant listing. Empty fields match everything.
type Filter struct {
	Area    string `json:"area,omitempty"`
	Cuisine string `json:"cuisine,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

type CatalogStats struct {
	Restaurants int `json:"total_restaurants"`
	Areas       int `json:"total_areas"`
	Reviews     int `json:"total_reviews"`
	Users       int `json:"total_users"`
}

const (
	ChangeRestaurantCreated = "restaurant_created"
	ChangeRestaurantUpdated = "restaurant_updated"
	ChangeRestaurantDeleted = "restaurant_deleted"
	ChangeReviewCreated     = "review_created"
	ChangeReviewUpdated     = "review_updated"
	ChangeUserCreated       = "user_created"
	ChangeUserDeleted       = "user_deleted"
)

// ChangeEvent describes a committed mutation. It is what gets flushed to the
// remote replica and what other instances consume to drop stale caches.
type ChangeEvent struct {
	Type         string    `json:"type"`
	RestaurantID int64     `json:"restaurant_id,omitempty"`
	ReviewID     int64     `json:"review_id,omitempty"`
	UserName     string    `json:"user_name,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
