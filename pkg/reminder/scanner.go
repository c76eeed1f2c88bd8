// Package reminder emits notifications for events whose start time is
// within their configured lead time.
package reminder

import (
	"context"
	"time"

	"event-reminder-service/pkg/models"

	"go.uber.org/zap"
)

// EventSource supplies the events to scan on each tick
type EventSource interface {
	All() []models.Event
}

// Notifier receives due-reminder notifications. Implementations must
// return promptly; emission happens on the scanner goroutine.
type Notifier interface {
	Notify(event models.Event)
}

// LogNotifier logs each reminder
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier creates a Notifier backed by the given logger
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs a reminder for the event
func (n *LogNotifier) Notify(event models.Event) {
	n.log.Info("Reminder: "+event.Name+" is happening soon!",
		zap.Int("event_id", event.ID),
		zap.String("username", event.Username),
	)
}

// Scanner periodically scans an EventSource and notifies for every event
// within its reminder window. Firing is level-triggered: a qualifying
// event notifies again on every tick, and events already in the past keep
// qualifying.
type Scanner struct {
	events   EventSource
	sink     Notifier
	interval time.Duration
	now      func() time.Time
	log      *zap.Logger
}

// New creates a Scanner. A nil now falls back to time.Now.
func New(events EventSource, sink Notifier, interval time.Duration, now func() time.Time, log *zap.Logger) *Scanner {
	if now == nil {
		now = time.Now
	}
	return &Scanner{
		events:   events,
		sink:     sink,
		interval: interval,
		now:      now,
		log:      log,
	}
}

// Run ticks until ctx is cancelled
func (s *Scanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("reminder scanner started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.log.Info("reminder scanner stopped")
			return
		case <-ticker.C:
			s.Tick(s.now())
		}
	}
}

// Tick scans every stored event once against the given time. An event
// fires when its reminder lead time is set and due - now <= reminder:
// the window is inclusive and unbounded into the past. Events whose
// date/time does not parse never fire.
func (s *Scanner) Tick(now time.Time) {
	for _, e := range s.events.All() {
		if e.Reminder <= 0 {
			continue
		}
		due, err := e.Due()
		if err != nil {
			s.log.Debug("skipping event with unparsable date",
				zap.Int("event_id", e.ID),
				zap.String("date", e.Date),
				zap.String("time", e.Time),
			)
			continue
		}
		if due.Sub(now) <= time.Duration(e.Reminder)*time.Minute {
			s.sink.Notify(e)
		}
	}
}
