package model

import (
	"time"
)

// Video is a public catalog entry; it has no owner.
type Video struct {
	ID           string    `db:"id" json:"id" bson:"_id"`
	Title        string    `db:"title" json:"title" bson:"title"`
	Description  string    `db:"description" json:"description" bson:"description"`
	VideoURL     string    `db:"video_url" json:"video_url" bson:"video_url"`
	ThumbnailURL string    `db:"thumbnail_url" json:"thumbnail_url" bson:"thumbnail_url"`
	Category     string    `db:"category" json:"category" bson:"category"`
	Duration     int       `db:"duration" json:"duration" bson:"duration"`
	Views        int64     `db:"views" json:"views" bson:"views"`
	CreatedAt    time.Time `db:"created_at" json:"created_at" bson:"created_at"`
}
