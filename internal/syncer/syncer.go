package syncer

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/remote"
)

//go:generate mockgen -source=syncer.go -destination=../mocks/syncer/mock_syncer.go -package=mock_syncer

// QuestionStore is the slice of the record store the syncer needs.
type QuestionStore interface {
	Questions(ctx context.Context) []model.Question
	// ReplaceQuestions persists the set locally without scheduling pushes.
	ReplaceQuestions(ctx context.Context, questions []model.Question)
}

// Pusher schedules fire-and-forget remote writes.
type Pusher interface {
	PushItem(collection, id string, doc any)
}

// Syncer performs the one-shot startup pull-and-merge.
type Syncer struct {
	client remote.Client
	store  QuestionStore
	pusher Pusher
}

// New creates a Syncer. client may be nil, in which case Run is a no-op.
func New(client remote.Client, store QuestionStore, pusher Pusher) *Syncer {
	return &Syncer{client: client, store: store, pusher: pusher}
}

// Run pulls the remote question set and merges it with the local one.
//
// If the remote set is empty the entire local set is pushed up (cold-start
// bootstrap: local is authoritative). Otherwise the two sets are merged by
// last-writer-wins on updatedAt, the merged result is persisted locally, and
// every merged record is re-pushed so both sides converge to the same
// superset. Run reports whether remote data was merged in; it never fails
// louder than a log line.
func (s *Syncer) Run(ctx context.Context) bool {
	if s.client == nil {
		return false
	}

	documents, err := s.client.FetchAll(ctx, remote.CollectionQuestions)
	if err != nil {
		slog.Default().Warn("startup pull failed, staying on local data", "error", err)
		return false
	}

	local := s.store.Questions(ctx)

	if len(documents) == 0 {
		if len(local) > 0 {
			slog.Default().Info("remote is empty, pushing local set", "count", len(local))
			for _, q := range local {
				s.pusher.PushItem(remote.CollectionQuestions, q.ID, q)
			}
		}
		return false
	}

	remoteQuestions := make([]model.Question, 0, len(documents))
	for _, doc := range documents {
		var q model.Question
		if err := json.Unmarshal(doc, &q); err != nil {
			slog.Default().Warn("skipping undecodable remote question", "error", err)
			continue
		}
		remoteQuestions = append(remoteQuestions, q)
	}

	merged := MergeRecords(local, remoteQuestions)
	s.store.ReplaceQuestions(ctx, merged)
	for _, q := range merged {
		s.pusher.PushItem(remote.CollectionQuestions, q.ID, q)
	}

	slog.Default().Info("merged remote questions", "local", len(local), "remote", len(remoteQuestions), "merged", len(merged))
	return true
}
