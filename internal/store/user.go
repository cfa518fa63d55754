package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/moodflow/moodflow/internal/events"
	"github.com/moodflow/moodflow/internal/model"
)

// UserProfileParams holds caller-supplied onboarding fields.
type UserProfileParams struct {
	Name          string
	Email         string
	Usage         string
	Importance    string
	Notifications bool
	CheckinTime   string
}

// SaveUserProfile creates or replaces the singleton user profile.
// Name is required; OnboardedAt is assigned by the store.
func (s *Store) SaveUserProfile(ctx context.Context, p UserProfileParams) (*model.UserProfile, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("save profile: %w: name is required", ErrInvalidInput)
	}

	u := &model.UserProfile{
		Name:          name,
		Email:         strings.TrimSpace(p.Email),
		Usage:         strings.TrimSpace(p.Usage),
		Importance:    strings.TrimSpace(p.Importance),
		Notifications: p.Notifications,
		CheckinTime:   p.CheckinTime,
		OnboardedAt:   time.Now().UTC(),
	}

	if err := s.writeCollection(ctx, collUserData, u); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Collection: collUserData, Op: events.OpSaved})
	return u, nil
}

// UserProfile returns the stored profile, or nil when no one has
// onboarded on this device yet.
func (s *Store) UserProfile(ctx context.Context) *model.UserProfile {
	var u model.UserProfile
	if !s.readCollection(ctx, collUserData, &u) {
		return nil
	}
	return &u
}

// ProfileData returns the self-care toolkit lists, defaulting to empty
// lists when never written.
func (s *Store) ProfileData(ctx context.Context) model.ProfileData {
	p := model.ProfileData{}
	s.readCollection(ctx, collProfileData, &p)
	if p.HelpWhenBad == nil {
		p.HelpWhenBad = []string{}
	}
	if p.HelpWhenGood == nil {
		p.HelpWhenGood = []string{}
	}
	return p
}

// SaveProfileData replaces the toolkit lists wholesale.
func (s *Store) SaveProfileData(ctx context.Context, p model.ProfileData) error {
	if p.HelpWhenBad == nil {
		p.HelpWhenBad = []string{}
	}
	if p.HelpWhenGood == nil {
		p.HelpWhenGood = []string{}
	}
	if err := s.writeCollection(ctx, collProfileData, p); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: collProfileData, Op: events.OpSaved})
	return nil
}
