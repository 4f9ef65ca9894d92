package tracker

import (
	"context"

	"github.com/amitrd/revtrack/internal/kvstore"
	"github.com/amitrd/revtrack/internal/model"
)

// Calendar entries are planner-local state and are not synced remotely.

// CalendarEntries returns every calendar entry keyed by date string.
func (s *LocalStore) CalendarEntries(ctx context.Context) map[string]model.CalendarEntry {
	return kvstore.Load(ctx, s.kv, kvstore.KeyCalendarEntries, emptyCalendar)
}

// CalendarEntry returns the entry for the given date key, or nil.
func (s *LocalStore) CalendarEntry(ctx context.Context, dateKey string) *model.CalendarEntry {
	entries := s.CalendarEntries(ctx)
	if entry, ok := entries[dateKey]; ok {
		return &entry
	}
	return nil
}

// SaveCalendarEntry stamps and persists the entry under its date key. An
// entry emptied of all content is removed instead.
func (s *LocalStore) SaveCalendarEntry(ctx context.Context, dateKey string, entry model.CalendarEntry) model.CalendarEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.DateKey = dateKey
	entry.LastModified = s.now()

	entries := s.CalendarEntries(ctx)
	if entry.IsEmpty() {
		delete(entries, dateKey)
	} else {
		entries[dateKey] = entry
	}
	kvstore.Save(ctx, s.kv, kvstore.KeyCalendarEntries, entries)
	return entry
}

// DeleteCalendarEntry removes the entry for the given date key.
func (s *LocalStore) DeleteCalendarEntry(ctx context.Context, dateKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.CalendarEntries(ctx)
	delete(entries, dateKey)
	kvstore.Save(ctx, s.kv, kvstore.KeyCalendarEntries, entries)
}
