package models

// Statistics is the admin dashboard summary. Counts are computed live
// from the current rows on every read and are never cached.
type Statistics struct {
	AlbumCount         int64 `json:"album_count"`
	ImageCount         int64 `json:"image_count"`
	ServiceCount       int64 `json:"service_count"`
	ContactCount       int64 `json:"contact_count"`
	UnreadContactCount int64 `json:"unread_contact_count"`
}
