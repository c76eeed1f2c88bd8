package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"event-reminder-service/pkg/models"
)

// EventStore holds calendar events. Events are insert-only: there is no
// update or delete.
type EventStore interface {
	Create(username string, req models.CreateEventRequest) (models.Event, error)
	ListByOwner(username string) []models.Event
	ListByOwnerSortedByDate(username string) []models.Event
	ListByOwnerAndCategory(username, category string) []models.Event
	All() []models.Event
}

// Events is the default EventStore. With a data directory it persists
// events as JSON; with an empty one all state is volatile.
type Events struct {
	dataDir string
	mu      sync.RWMutex
	events  []models.Event
}

// NewEvents creates a new Events store rooted at dataDir
func NewEvents(dataDir string) (*Events, error) {
	s := &Events{
		dataDir: dataDir,
		events:  make([]models.Event, 0),
	}

	if dataDir == "" {
		return s, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Events) eventsFile() string {
	return filepath.Join(s.dataDir, "events.json")
}

func (s *Events) load() error {
	data, err := os.ReadFile(s.eventsFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No data yet
		}
		return err
	}
	return json.Unmarshal(data, &s.events)
}

func (s *Events) save() error {
	if s.dataDir == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.events, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.eventsFile(), data, 0644)
}

// Create stores a new event for username and returns it.
// IDs are assigned from the list length; this breaks if deletion is ever
// introduced.
func (s *Events) Create(username string, req models.CreateEventRequest) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := models.Event{
		ID:          len(s.events) + 1,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Category:    req.Category,
		Reminder:    req.Reminder,
		Username:    username,
	}
	s.events = append(s.events, event)

	if err := s.save(); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// ListByOwner returns the user's events in insertion order
func (s *Events) ListByOwner(username string) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Event, 0)
	for _, e := range s.events {
		if e.Username == username {
			result = append(result, e)
		}
	}
	return result
}

// ListByOwnerSortedByDate returns the user's events in ascending date
// order. Only the date field enters the sort key: events on the same day
// keep their insertion order regardless of time-of-day.
func (s *Events) ListByOwnerSortedByDate(username string) []models.Event {
	result := s.ListByOwner(username)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Day().Before(result[j].Day())
	})
	return result
}

// ListByOwnerAndCategory returns the user's events whose category matches
// exactly
func (s *Events) ListByOwnerAndCategory(username, category string) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Event, 0)
	for _, e := range s.events {
		if e.Username == username && e.Category == category {
			result = append(result, e)
		}
	}
	return result
}

// All returns a copy of every stored event
func (s *Events) All() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Event, len(s.events))
	copy(result, s.events)
	return result
}
