package tracker

import (
	"context"

	"github.com/amitrd/revtrack/internal/kvstore"
	"github.com/amitrd/revtrack/internal/model"
)

// Syllabi returns every syllabus.
func (s *LocalStore) Syllabi(ctx context.Context) []model.Syllabus {
	return kvstore.Load(ctx, s.kv, kvstore.KeySyllabi, emptySyllabi)
}

// SyllabusByID returns the syllabus with the given id, or nil.
func (s *LocalStore) SyllabusByID(ctx context.Context, id string) *model.Syllabus {
	for _, syllabus := range s.Syllabi(ctx) {
		if syllabus.ID == id {
			return &syllabus
		}
	}
	return nil
}

// AddSyllabus assigns an id and timestamps and persists the syllabus.
func (s *LocalStore) AddSyllabus(ctx context.Context, syllabus model.Syllabus) model.Syllabus {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	syllabus.ID = s.generateID()
	syllabus.CreatedAt = now
	syllabus.UpdatedAt = now
	if syllabus.Topics == nil {
		syllabus.Topics = []model.Topic{}
	}

	syllabi := append(s.Syllabi(ctx), syllabus)
	kvstore.Save(ctx, s.kv, kvstore.KeySyllabi, syllabi)
	return syllabus
}

// DeleteSyllabus removes the syllabus with the given id.
func (s *LocalStore) DeleteSyllabus(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	syllabi := s.Syllabi(ctx)
	remaining := make([]model.Syllabus, 0, len(syllabi))
	for _, syllabus := range syllabi {
		if syllabus.ID != id {
			remaining = append(remaining, syllabus)
		}
	}
	kvstore.Save(ctx, s.kv, kvstore.KeySyllabi, remaining)
}

// updateSyllabus applies the patch to the syllabus with the given id and
// persists. Returns nil when the id is unknown.
func (s *LocalStore) updateSyllabus(ctx context.Context, id string, apply func(*model.Syllabus) bool) *model.Syllabus {
	s.mu.Lock()
	defer s.mu.Unlock()

	syllabi := s.Syllabi(ctx)
	for i := range syllabi {
		if syllabi[i].ID != id {
			continue
		}
		if !apply(&syllabi[i]) {
			return nil
		}
		syllabi[i].UpdatedAt = s.now()
		kvstore.Save(ctx, s.kv, kvstore.KeySyllabi, syllabi)

		updated := syllabi[i]
		return &updated
	}
	return nil
}

// ToggleTopic flips a topic's completion state, stamping the completion date
// when it turns complete. Returns nil for an unknown syllabus or topic index.
func (s *LocalStore) ToggleTopic(ctx context.Context, syllabusID string, topicIndex int) *model.Syllabus {
	return s.updateSyllabus(ctx, syllabusID, func(syllabus *model.Syllabus) bool {
		if topicIndex < 0 || topicIndex >= len(syllabus.Topics) {
			return false
		}
		topic := &syllabus.Topics[topicIndex]
		topic.Completed = !topic.Completed
		if topic.Completed {
			topic.CompletedDate = s.Today()
		} else {
			topic.CompletedDate = ""
		}
		return true
	})
}

// AddTopic appends a topic to the syllabus. Returns nil for an unknown id.
func (s *LocalStore) AddTopic(ctx context.Context, syllabusID, name string) *model.Syllabus {
	return s.updateSyllabus(ctx, syllabusID, func(syllabus *model.Syllabus) bool {
		syllabus.Topics = append(syllabus.Topics, model.Topic{Name: name})
		return true
	})
}

// DeleteTopic removes the topic at the given index. Returns nil for an
// unknown syllabus or topic index.
func (s *LocalStore) DeleteTopic(ctx context.Context, syllabusID string, topicIndex int) *model.Syllabus {
	return s.updateSyllabus(ctx, syllabusID, func(syllabus *model.Syllabus) bool {
		if topicIndex < 0 || topicIndex >= len(syllabus.Topics) {
			return false
		}
		syllabus.Topics = append(syllabus.Topics[:topicIndex], syllabus.Topics[topicIndex+1:]...)
		return true
	})
}
