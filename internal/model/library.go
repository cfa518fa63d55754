package model

import "time"

// Video is a saved comfort video referenced by its YouTube id.
type Video struct {
	ID        string    `json:"id"`
	YouTubeID string    `json:"youtubeId"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes,omitempty"`
	AddedAt   time.Time `json:"addedDate"`
	PlayCount int       `json:"playCount"`
}

// Category groups videos in the media library.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MediaLibrary is the single stored media object.
type MediaLibrary struct {
	Videos     []Video    `json:"videos"`
	Categories []Category `json:"categories"`
}

// DefaultCategories returns the starter category set used when the
// library has never been written (or was stored without categories).
func DefaultCategories() []Category {
	return []Category{
		{ID: "focus", Name: "Focus & Productivity"},
		{ID: "meditation", Name: "Meditation & Calm"},
		{ID: "comfort", Name: "Comfort Content"},
		{ID: "motivation", Name: "Motivation"},
		{ID: "sleep", Name: "Sleep Sounds"},
	}
}

// SupportContact is a personal support contact.
type SupportContact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone"`
	Available    string `json:"available,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// SupportContacts is the single stored support object: the personal
// contact list plus the ids of favorited crisis resources.
type SupportContacts struct {
	PersonalContacts  []SupportContact `json:"personalContacts"`
	FavoriteResources []string         `json:"favoriteResources"`
}
