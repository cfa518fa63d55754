package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/moodflow/moodflow/internal/events"
	"github.com/moodflow/moodflow/internal/model"
)

// SupportContactParams holds caller-supplied contact fields.
type SupportContactParams struct {
	Name         string
	Relationship string
	Phone        string
	Available    string
	Notes        string
}

// SupportContacts returns the stored support object, defaulting to
// empty lists when never written.
func (s *Store) SupportContacts(ctx context.Context) model.SupportContacts {
	var sc model.SupportContacts
	s.readCollection(ctx, collSupportContacts, &sc)
	if sc.PersonalContacts == nil {
		sc.PersonalContacts = []model.SupportContact{}
	}
	if sc.FavoriteResources == nil {
		sc.FavoriteResources = []string{}
	}
	return sc
}

// SaveSupportContact appends a personal contact. Name and phone are
// required.
func (s *Store) SaveSupportContact(ctx context.Context, p SupportContactParams) (*model.SupportContact, error) {
	name := strings.TrimSpace(p.Name)
	phone := strings.TrimSpace(p.Phone)
	if name == "" || phone == "" {
		return nil, fmt.Errorf("save contact: %w: name and phone are required", ErrInvalidInput)
	}

	sc := s.SupportContacts(ctx)
	c := model.SupportContact{
		ID:           s.newID(),
		Name:         name,
		Relationship: strings.TrimSpace(p.Relationship),
		Phone:        phone,
		Available:    strings.TrimSpace(p.Available),
		Notes:        strings.TrimSpace(p.Notes),
	}
	sc.PersonalContacts = append(sc.PersonalContacts, c)

	if err := s.writeCollection(ctx, collSupportContacts, sc); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Collection: collSupportContacts, Op: events.OpSaved, ID: c.ID})
	return &c, nil
}

// DeleteSupportContact removes a contact by id. Unknown ids are a
// no-op.
func (s *Store) DeleteSupportContact(ctx context.Context, id string) error {
	sc := s.SupportContacts(ctx)
	kept := sc.PersonalContacts[:0]
	for _, c := range sc.PersonalContacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(sc.PersonalContacts) {
		return nil
	}
	sc.PersonalContacts = kept
	if err := s.writeCollection(ctx, collSupportContacts, sc); err != nil {
		return err
	}
	s.bus.Publish(events.Event{Collection: collSupportContacts, Op: events.OpDeleted, ID: id})
	return nil
}

// ToggleFavoriteResource adds the resource id to the favorites if
// absent, removes it if present, and returns the resulting list.
func (s *Store) ToggleFavoriteResource(ctx context.Context, resourceID string) ([]string, error) {
	sc := s.SupportContacts(ctx)
	kept := sc.FavoriteResources[:0]
	removed := false
	for _, id := range sc.FavoriteResources {
		if id == resourceID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, resourceID)
	}
	sc.FavoriteResources = kept

	if err := s.writeCollection(ctx, collSupportContacts, sc); err != nil {
		return nil, err
	}
	s.bus.Publish(events.Event{Collection: collSupportContacts, Op: events.OpSaved, ID: resourceID})
	return sc.FavoriteResources, nil
}
