package models

import "time"

// Landmark is a point of interest returned by the geosearch provider.
// It lives only within a single request/response cycle; saved landmarks
// are persisted as Favorites.
type Landmark struct {
	PageID   int64   `json:"pageid"`
	Title    string  `json:"title"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance float64 `json:"dist,omitempty"`
}

// Favorite is a landmark saved by a user, denormalized with the title
// and coordinates cached at save time.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PageID    int64     `json:"pageid"`
	Title     string    `json:"title"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	CreatedAt time.Time `json:"created_at"`
}

// Landmark reshapes a favorite into the wire form used by the favorites
// endpoints: {pageid, title, lat, lon}.
func (f *Favorite) Landmark() Landmark {
	return Landmark{
		PageID: f.PageID,
		Title:  f.Title,
		Lat:    f.Lat,
		Lon:    f.Lon,
	}
}

// FavoriteRequest represents the request body for saving a favorite
type FavoriteRequest struct {
	PageID int64   `json:"pageid"`
	Title  string  `json:"title"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// RemoveFavoriteRequest represents the request body for removing a favorite
type RemoveFavoriteRequest struct {
	PageID int64 `json:"pageid"`
}
