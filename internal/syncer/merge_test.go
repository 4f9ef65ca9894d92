package syncer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amitrd/revtrack/internal/model"
)

func question(id string, updatedAt time.Time, name string) model.Question {
	return model.Question{ID: id, Name: name, UpdatedAt: updatedAt}
}

func TestMergeRecords(t *testing.T) {
	older := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		local  []model.Question
		remote []model.Question
		want   map[string]string
	}{
		{
			name:   "remote-only records are adopted",
			local:  nil,
			remote: []model.Question{question("a", older, "remote a")},
			want:   map[string]string{"a": "remote a"},
		},
		{
			name:   "local-only records are preserved",
			local:  []model.Question{question("a", older, "local a")},
			remote: nil,
			want:   map[string]string{"a": "local a"},
		},
		{
			name:   "newer remote wins",
			local:  []model.Question{question("a", older, "local a")},
			remote: []model.Question{question("a", newer, "remote a")},
			want:   map[string]string{"a": "remote a"},
		},
		{
			name:   "newer local wins",
			local:  []model.Question{question("a", newer, "local a")},
			remote: []model.Question{question("a", older, "remote a")},
			want:   map[string]string{"a": "local a"},
		},
		{
			name:   "equal timestamps keep local",
			local:  []model.Question{question("a", older, "local a")},
			remote: []model.Question{question("a", older, "remote a")},
			want:   map[string]string{"a": "local a"},
		},
		{
			name:   "zero remote timestamp keeps local",
			local:  []model.Question{question("a", older, "local a")},
			remote: []model.Question{question("a", time.Time{}, "remote a")},
			want:   map[string]string{"a": "local a"},
		},
		{
			name: "union of disjoint sets",
			local: []model.Question{
				question("a", older, "local a"),
			},
			remote: []model.Question{
				question("b", older, "remote b"),
			},
			want: map[string]string{"a": "local a", "b": "remote b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeRecords(tt.local, tt.remote)
			assert.Len(t, got, len(tt.want))
			for _, q := range got {
				assert.Equal(t, tt.want[q.ID], q.Name, "record %s", q.ID)
			}
		})
	}
}

func TestMergeRecords_Idempotent(t *testing.T) {
	older := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	local := []model.Question{question("a", older, "local a"), question("b", newer, "local b")}
	remote := []model.Question{question("a", newer, "remote a"), question("c", older, "remote c")}

	once := MergeRecords(local, remote)
	twice := MergeRecords(once, remote)

	assert.ElementsMatch(t, once, twice)
}
