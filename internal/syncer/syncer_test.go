package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_remote "github.com/amitrd/revtrack/internal/mocks/remote"
	mock_syncer "github.com/amitrd/revtrack/internal/mocks/syncer"
	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/remote"
)

func mustMarshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestSyncer_Run(t *testing.T) {
	older := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	localQuestion := model.Question{ID: "local1", Name: "Local question", UpdatedAt: older}
	remoteQuestion := model.Question{ID: "remote1", Name: "Remote question", UpdatedAt: newer}

	t.Run("nil client is a no-op", func(t *testing.T) {
		s := New(nil, nil, nil)
		assert.False(t, s.Run(context.Background()))
	})

	t.Run("fetch failure keeps local data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_remote.NewMockClient(ctrl)
		client.EXPECT().
			FetchAll(gomock.Any(), remote.CollectionQuestions).
			Return(nil, fmt.Errorf("connection refused"))

		s := New(client, mock_syncer.NewMockQuestionStore(ctrl), mock_syncer.NewMockPusher(ctrl))
		assert.False(t, s.Run(context.Background()))
	})

	t.Run("empty remote pushes the whole local set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_remote.NewMockClient(ctrl)
		client.EXPECT().
			FetchAll(gomock.Any(), remote.CollectionQuestions).
			Return(nil, nil)

		store := mock_syncer.NewMockQuestionStore(ctrl)
		store.EXPECT().Questions(gomock.Any()).Return([]model.Question{localQuestion})

		pusher := mock_syncer.NewMockPusher(ctrl)
		pusher.EXPECT().PushItem(remote.CollectionQuestions, "local1", localQuestion)

		s := New(client, store, pusher)
		assert.False(t, s.Run(context.Background()))
	})

	t.Run("remote data is merged, persisted and re-pushed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_remote.NewMockClient(ctrl)
		client.EXPECT().
			FetchAll(gomock.Any(), remote.CollectionQuestions).
			Return([]json.RawMessage{mustMarshal(t, remoteQuestion)}, nil)

		store := mock_syncer.NewMockQuestionStore(ctrl)
		store.EXPECT().Questions(gomock.Any()).Return([]model.Question{localQuestion})
		store.EXPECT().
			ReplaceQuestions(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, questions []model.Question) {
				assert.ElementsMatch(t, []model.Question{localQuestion, remoteQuestion}, questions)
			})

		pusher := mock_syncer.NewMockPusher(ctrl)
		pusher.EXPECT().PushItem(remote.CollectionQuestions, "local1", localQuestion)
		pusher.EXPECT().PushItem(remote.CollectionQuestions, "remote1", remoteQuestion)

		s := New(client, store, pusher)
		assert.True(t, s.Run(context.Background()))
	})

	t.Run("undecodable remote documents are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_remote.NewMockClient(ctrl)
		client.EXPECT().
			FetchAll(gomock.Any(), remote.CollectionQuestions).
			Return([]json.RawMessage{
				json.RawMessage(`not json`),
				mustMarshal(t, remoteQuestion),
			}, nil)

		store := mock_syncer.NewMockQuestionStore(ctrl)
		store.EXPECT().Questions(gomock.Any()).Return(nil)
		store.EXPECT().
			ReplaceQuestions(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, questions []model.Question) {
				assert.ElementsMatch(t, []model.Question{remoteQuestion}, questions)
			})

		pusher := mock_syncer.NewMockPusher(ctrl)
		pusher.EXPECT().PushItem(remote.CollectionQuestions, "remote1", remoteQuestion)

		s := New(client, store, pusher)
		assert.True(t, s.Run(context.Background()))
	})
}
