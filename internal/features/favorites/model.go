package favorites

import (
	"time"
)

// Favorite is one media item on a user's list. (UserID, MediaID) is unique.
type Favorite struct {
	ID          string    `bson:"_id" json:"id" example:"9b2f6c3e-1d4a-4f0e-8c5b-2a7d9e1f3c4b"`
	UserID      string    `bson:"userId" json:"userId"`
	MediaID     string    `bson:"mediaId" json:"mediaId" example:"tt0111161"`
	MediaTitle  string    `bson:"mediaTitle" json:"mediaTitle" example:"The Shawshank Redemption"`
	MediaType   string    `bson:"mediaType" json:"mediaType" example:"movie"`
	MediaPoster string    `bson:"mediaPoster" json:"mediaPoster" example:"https://m.media-amazon.com/images/M/poster.jpg"`
	MediaRate   float64   `bson:"mediaRate" json:"mediaRate" example:"9.3"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// AddFavoriteRequest for POST /auth/addfavorites
type AddFavoriteRequest struct {
	MediaID     string   `json:"mediaId" binding:"required,max=64" example:"tt0111161"`
	MediaTitle  string   `json:"mediaTitle" binding:"required,max=512" example:"The Shawshank Redemption"`
	MediaType   string   `json:"mediaType" binding:"required,max=32" example:"movie"`
	MediaPoster string   `json:"mediaPoster" binding:"required,max=2048" example:"https://m.media-amazon.com/images/M/poster.jpg"`
	MediaRate   *float64 `json:"mediaRate" binding:"required,min=0,max=10" example:"9.3"`
}

// AddInput is the service-level form of AddFavoriteRequest.
type AddInput struct {
	MediaID     string
	MediaTitle  string
	MediaType   string
	MediaPoster string
	MediaRate   float64
}
