package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"food-tracker/catalog-svc/internal/domain"
	"food-tracker/catalog-svc/internal/service"
	"food-tracker/catalog-svc/internal/storage"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface) *Handler {
	return &Handler{Catalog: catalog}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/picture", h.getPicture).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/qrcode", h.getQRCode).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/rating", h.getRating).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/reviews", h.listReviews).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/reviews/{id:[0-9]+}", h.updateReview).Methods("PUT")

	r.HandleFunc("/api/stats", h.getStats).Methods("GET")
	r.HandleFunc("/api/areas", h.listAreas).Methods("GET")
	r.HandleFunc("/api/cuisines", h.listCuisines).Methods("GET")

	r.HandleFunc("/api/users", h.listUsers).Methods("GET")
	r.HandleFunc("/api/users", h.createUser).Methods("POST")
	r.HandleFunc("/api/users/{name}", h.deleteUser).Methods("DELETE")
}

// restaurantPayload carries the picture as base64 in JSON.
type restaurantPayload struct {
	Title          string              `json:"title"`
	Cuisines       []string            `json:"cuisines"`
	Area           string              `json:"area"`
	GoogleMapLink  string              `json:"google_map_link"`
	AddedBy        string              `json:"added_by"`
	PricePerPerson *float64            `json:"price_per_person"`
	Picture        *string             `json:"picture"`
	FirstReview    *domain.FirstReview `json:"first_review"`
}

func (p restaurantPayload) restaurant() (*domain.Restaurant, []byte, error) {
	rest := &domain.Restaurant{
		Title:          p.Title,
		Cuisines:       service.JoinCuisines(p.Cuisines),
		Area:           p.Area,
		GoogleMapLink:  p.GoogleMapLink,
		AddedBy:        p.AddedBy,
		PricePerPerson: p.PricePerPerson,
	}
	var picture []byte
	if p.Picture != nil {
		decoded, err := base64.StdEncoding.DecodeString(*p.Picture)
		if err != nil {
			return nil, nil, err
		}
		picture = decoded
	}
	return rest, picture, nil
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "catalog-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var payload restaurantPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, picture, err := payload.restaurant()
	if err != nil {
		http.Error(w, "picture must be base64", http.StatusBadRequest)
		return
	}
	rest.Picture = picture

	id, err := h.Catalog.CreateRestaurantWithFirstReview(r.Context(), rest, payload.FirstReview)
	if err != nil && id == 0 {
		writeError(w, err)
		return
	}
	response := map[string]interface{}{"id": id}
	if err != nil {
		response["warning"] = err.Error()
	}
	writeJSON(w, http.StatusCreated, response)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		views []domain.RestaurantView
		err   error
	)
	area, cuisine := query.Get("area"), query.Get("cuisine")
	limit, convErr := strconv.Atoi(query.Get("limit"))
	switch {
	case convErr != nil || limit <= 0:
		views, err = h.Catalog.Search(r.Context(), area, cuisine)
	case strings.TrimSpace(area) == "" && strings.TrimSpace(cuisine) == "":
		views, err = h.Catalog.RecentRestaurants(r.Context(), limit)
	default:
		views, err = h.Catalog.SearchRecent(r.Context(), area, cuisine, limit)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.GetRestaurant(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var payload restaurantPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, picture, err := payload.restaurant()
	if err != nil {
		http.Error(w, "picture must be base64", http.StatusBadRequest)
		return
	}
	rest.ID = pathID(r)

	if err := h.Catalog.EditRestaurant(r.Context(), rest, picture); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.RemoveRestaurant(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getPicture(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.GetRestaurant(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if len(rest.Picture) == 0 {
		http.Error(w, "no picture", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(rest.Picture))
	w.Write(rest.Picture)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Catalog.MapLinkQRCode(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getRating(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	avg, err := h.Catalog.AverageRating(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	distribution, err := h.Catalog.RatingDistribution(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant_id": id,
		"avg_rating":    avg,
		"distribution":  distribution,
	})
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Catalog.ListReviews(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	review.RestaurantID = pathID(r)

	if err := h.Catalog.AddReview(r.Context(), &review); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.EditReview(r.Context(), pathID(r), payload.Rating, payload.Comment); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Catalog.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) listAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.Catalog.Areas(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, areas)
}

func (h *Handler) listCuisines(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("source") == "options" {
		writeJSON(w, http.StatusOK, h.Catalog.CuisineOptions())
		return
	}
	cuisines, err := h.Catalog.Cuisines(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cuisines)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Catalog.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := h.Catalog.AddUser(r.Context(), payload.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.RemoveUser(r.Context(), mux.Vars(r)["name"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrConstraint):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, service.ErrNoMapLink):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storage.ErrTimeout):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	case errors.Is(err, storage.ErrConnection):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
