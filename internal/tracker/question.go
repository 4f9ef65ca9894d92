package tracker

import (
	"context"
	"fmt"

	"github.com/amitrd/revtrack/internal/kvstore"
	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/remote"
	"github.com/amitrd/revtrack/internal/revision"
)

// Questions returns every tracked question.
func (s *LocalStore) Questions(ctx context.Context) []model.Question {
	return kvstore.Load(ctx, s.kv, kvstore.KeyQuestions, emptyQuestions)
}

// QuestionByID returns the question with the given id, or nil.
func (s *LocalStore) QuestionByID(ctx context.Context, id string) *model.Question {
	for _, q := range s.Questions(ctx) {
		if q.ID == id {
			return &q
		}
	}
	return nil
}

// AddQuestion assigns an id and timestamps, initializes the revision state,
// persists the question and schedules its remote push.
func (s *LocalStore) AddQuestion(ctx context.Context, question model.Question) model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	question.ID = s.generateID()
	question.CreatedAt = now
	question.UpdatedAt = now
	question.RevisionCycle = 0
	question.RevisionHistory = []model.RevisionRecord{}
	question.EaseFactor = revision.DefaultEaseFactor
	question.Streak = 0
	question.XPEarned = 0
	if question.Status == "" {
		question.Status = model.StatusSolved
	}
	if question.DateSolved == "" {
		question.DateSolved = s.Today()
	}
	question.NextRevisionDate = revision.NextDate(question, s.Settings(ctx), s.Today())

	questions := append(s.Questions(ctx), question)
	kvstore.Save(ctx, s.kv, kvstore.KeyQuestions, questions)
	s.pusher.PushItem(remote.CollectionQuestions, question.ID, question)

	s.addActivityLocked(ctx, model.ActivityAdd, fmt.Sprintf("Added %q (%s)", question.Name, question.Subject))
	return question
}

// UpdateQuestion applies the patch to the question with the given id,
// re-stamps updatedAt, persists and schedules a push of the whole record.
// Returns nil when the id is unknown.
func (s *LocalStore) UpdateQuestion(ctx context.Context, id string, apply func(*model.Question)) *model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions := s.Questions(ctx)
	for i := range questions {
		if questions[i].ID != id {
			continue
		}
		apply(&questions[i])
		questions[i].ID = id
		questions[i].UpdatedAt = s.now()
		kvstore.Save(ctx, s.kv, kvstore.KeyQuestions, questions)
		s.pusher.PushItem(remote.CollectionQuestions, id, questions[i])

		updated := questions[i]
		return &updated
	}
	return nil
}

// DeleteQuestion removes the question locally and schedules the remote
// delete. Deleting an unknown id is a no-op.
func (s *LocalStore) DeleteQuestion(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions := s.Questions(ctx)
	remaining := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if q.ID != id {
			remaining = append(remaining, q)
		}
	}
	if len(remaining) == len(questions) {
		return
	}

	kvstore.Save(ctx, s.kv, kvstore.KeyQuestions, remaining)
	s.pusher.DeleteItem(remote.CollectionQuestions, id)
	s.addActivityLocked(ctx, model.ActivityDelete, "Deleted a question")
}

// ReplaceQuestions persists the set wholesale without scheduling pushes.
// Used by the startup merge, which re-pushes on its own terms.
func (s *LocalStore) ReplaceQuestions(ctx context.Context, questions []model.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if questions == nil {
		questions = emptyQuestions()
	}
	kvstore.Save(ctx, s.kv, kvstore.KeyQuestions, questions)
}
