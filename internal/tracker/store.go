// Package tracker implements the record store owning all persisted state.
//
// Every mutation persists locally first and returns synchronously; the remote
// push is scheduled afterwards and never blocks or fails the caller.
package tracker

import (
	"context"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/amitrd/revtrack/internal/kvstore"
	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/remote"
)

//go:generate mockgen -source=store.go -destination=../mocks/tracker/mock_store.go -package=mock_tracker

// Pusher schedules fire-and-forget remote writes.
type Pusher interface {
	PushItem(collection, id string, doc any)
	DeleteItem(collection, id string)
	DropCollection(collection string)
}

// Store is the repository over every entity family.
type Store interface {
	Questions(ctx context.Context) []model.Question
	QuestionByID(ctx context.Context, id string) *model.Question
	AddQuestion(ctx context.Context, question model.Question) model.Question
	UpdateQuestion(ctx context.Context, id string, apply func(*model.Question)) *model.Question
	DeleteQuestion(ctx context.Context, id string)
	ReplaceQuestions(ctx context.Context, questions []model.Question)

	UserStats(ctx context.Context) model.UserStats
	SaveUserStats(ctx context.Context, stats model.UserStats)

	Settings(ctx context.Context) model.Settings
	SaveSettings(ctx context.Context, settings model.Settings)

	ActivityLog(ctx context.Context) []model.ActivityLogEntry
	AddActivity(ctx context.Context, activityType model.ActivityType, text string)

	DailyLog(ctx context.Context) map[string]model.DailyLogEntry
	LogDailyActivity(ctx context.Context, date string, kind model.DailyActivityKind)
	AddDailyXP(ctx context.Context, date string, xp int)

	CalendarEntries(ctx context.Context) map[string]model.CalendarEntry
	CalendarEntry(ctx context.Context, dateKey string) *model.CalendarEntry
	SaveCalendarEntry(ctx context.Context, dateKey string, entry model.CalendarEntry) model.CalendarEntry
	DeleteCalendarEntry(ctx context.Context, dateKey string)

	Syllabi(ctx context.Context) []model.Syllabus
	SyllabusByID(ctx context.Context, id string) *model.Syllabus
	AddSyllabus(ctx context.Context, syllabus model.Syllabus) model.Syllabus
	DeleteSyllabus(ctx context.Context, id string)
	ToggleTopic(ctx context.Context, syllabusID string, topicIndex int) *model.Syllabus
	AddTopic(ctx context.Context, syllabusID, name string) *model.Syllabus
	DeleteTopic(ctx context.Context, syllabusID string, topicIndex int) *model.Syllabus

	ExportSnapshot(ctx context.Context) (string, error)
	ImportSnapshot(ctx context.Context, data string) bool
	ResetAll(ctx context.Context)

	Today() string
}

// LocalStore implements Store over the local key-value cache.
type LocalStore struct {
	kv       *kvstore.Store
	pusher   Pusher
	validate *validator.Validate

	// Guards read-modify-write sequences on single keys. Individual loads and
	// saves are safe without it, but e.g. AddActivity must not interleave.
	mu sync.Mutex

	now func() time.Time
}

var _ Store = (*LocalStore)(nil)

// NewLocalStore creates a LocalStore. pusher may be a no-op pusher but must
// not be nil.
func NewLocalStore(kv *kvstore.Store, pusher Pusher) *LocalStore {
	return &LocalStore{
		kv:       kv,
		pusher:   pusher,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Today returns the current date key.
func (s *LocalStore) Today() string {
	return s.now().Format(model.DateLayout)
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// generateID builds a time-prefixed id with a random suffix. Uniqueness is by
// convention, not enforced server-side; the collision window is a single
// millisecond against six random characters.
func (s *LocalStore) generateID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return strconv.FormatInt(s.now().UnixMilli(), 36) + string(suffix)
}

func emptyQuestions() []model.Question              { return []model.Question{} }
func emptyActivityLog() []model.ActivityLogEntry    { return []model.ActivityLogEntry{} }
func emptyDailyLog() map[string]model.DailyLogEntry { return map[string]model.DailyLogEntry{} }
func emptyCalendar() map[string]model.CalendarEntry { return map[string]model.CalendarEntry{} }
func emptySyllabi() []model.Syllabus                { return []model.Syllabus{} }

// ResetAll clears every local key and schedules a wipe of every remote
// collection.
func (s *LocalStore) ResetAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, collection := range remote.Collections() {
		s.pusher.DropCollection(collection)
	}
	for _, key := range kvstore.Keys() {
		s.kv.Delete(ctx, key)
	}
}
