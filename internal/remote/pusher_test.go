package remote

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_remote "github.com/amitrd/revtrack/internal/mocks/remote"
)

func TestPusher_PushItem(t *testing.T) {
	t.Run("executes the scheduled put", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_remote.NewMockClient(ctrl)
		client.EXPECT().
			Put(gomock.Any(), CollectionQuestions, "q1", json.RawMessage(`{"id":"q1"}`)).
			Return(nil)

		p := NewPusher(client)
		p.PushItem(CollectionQuestions, "q1", map[string]string{"id": "q1"})
		p.Close()
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_remote.NewMockClient(ctrl)
		client.EXPECT().
			Put(gomock.Any(), CollectionQuestions, "q1", gomock.Any()).
			Return(fmt.Errorf("status code: 500, body: boom"))

		p := NewPusher(client)
		p.PushItem(CollectionQuestions, "q1", map[string]string{"id": "q1"})
		p.Close()
	})

	t.Run("unencodable document is dropped before enqueue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_remote.NewMockClient(ctrl)

		p := NewPusher(client)
		p.PushItem(CollectionQuestions, "q1", func() {})
		p.Close()
	})
}

func TestPusher_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_remote.NewMockClient(ctrl)
	client.EXPECT().Delete(gomock.Any(), CollectionQuestions, "q1").Return(nil)

	p := NewPusher(client)
	p.DeleteItem(CollectionQuestions, "q1")
	p.Close()
}

func TestPusher_DropCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_remote.NewMockClient(ctrl)
	client.EXPECT().DropCollection(gomock.Any(), CollectionDailyLog).Return(nil)

	p := NewPusher(client)
	p.DropCollection(CollectionDailyLog)
	p.Close()
}

func TestPusher_NilClient(t *testing.T) {
	p := NewPusher(nil)
	p.PushItem(CollectionQuestions, "q1", map[string]string{"id": "q1"})
	p.DeleteItem(CollectionQuestions, "q1")
	p.DropCollection(CollectionQuestions)
	p.Close()
}

func TestPusher_CloseIsIdempotent(t *testing.T) {
	p := NewPusher(nil)
	p.Close()
	p.Close()
}

func TestPusher_AfterCloseWritesAreDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_remote.NewMockClient(ctrl)

	p := NewPusher(client)
	p.Close()
	p.PushItem(CollectionQuestions, "q1", map[string]string{"id": "q1"})
	assert.True(t, ctrl.Satisfied())
}
