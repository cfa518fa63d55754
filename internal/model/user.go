// Package model defines the core moodflow data types.
package model

import "time"

// UserProfile is the singleton onboarding profile for this device.
type UserProfile struct {
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Usage         string    `json:"usage,omitempty"`
	Importance    string    `json:"importance,omitempty"`
	Notifications bool      `json:"notifications"`
	CheckinTime   string    `json:"checkinTime,omitempty"`
	OnboardedAt   time.Time `json:"onboardedAt"`
}

// ProfileData holds the user's self-care toolkit lists.
type ProfileData struct {
	HelpWhenBad  []string `json:"helpWhenBad"`
	HelpWhenGood []string `json:"helpWhenGood"`
}
