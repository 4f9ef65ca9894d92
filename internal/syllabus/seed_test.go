package syllabus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitrd/revtrack/internal/model"
	"github.com/amitrd/revtrack/internal/testutil"
)

func writeSeed(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("parses name, stream and topics", func(t *testing.T) {
		writeSeed(t, dir, "algorithms.yaml", `name: Algorithms
stream: CS
topics:
  - Sorting
  - Graphs
`)
		seed, err := LoadSeedFile(filepath.Join(dir, "algorithms.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "Algorithms", seed.Name)
		assert.Equal(t, "CS", seed.Stream)
		assert.Equal(t, []string{"Sorting", "Graphs"}, seed.Topics)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeedFile(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		writeSeed(t, dir, "broken.yaml", "name: [unclosed")
		_, err := LoadSeedFile(filepath.Join(dir, "broken.yaml"))
		assert.Error(t, err)
	})

	t.Run("nameless seed is rejected", func(t *testing.T) {
		writeSeed(t, dir, "nameless.yaml", "stream: CS")
		_, err := LoadSeedFile(filepath.Join(dir, "nameless.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no name")
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("imports every yaml seed in the directory", func(t *testing.T) {
		dir := t.TempDir()
		writeSeed(t, dir, "algorithms.yaml", "name: Algorithms\ntopics: [Sorting, Graphs]\n")
		writeSeed(t, dir, "maths.yml", "name: Maths\nstream: Science\n")
		writeSeed(t, dir, "notes.txt", "not a seed")

		store := testutil.NewStore(t)
		imported, err := Seed(ctx, store, dir)
		require.NoError(t, err)
		require.Len(t, imported, 2)

		syllabi := store.Syllabi(ctx)
		require.Len(t, syllabi, 2)

		names := []string{syllabi[0].Name, syllabi[1].Name}
		assert.ElementsMatch(t, []string{"Algorithms", "Maths"}, names)

		for _, syllabus := range syllabi {
			if syllabus.Name == "Algorithms" {
				require.Len(t, syllabus.Topics, 2)
				assert.Equal(t, "Sorting", syllabus.Topics[0].Name)
				assert.False(t, syllabus.Topics[0].Completed)
			}
		}
	})

	t.Run("existing names are skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeSeed(t, dir, "algorithms.yaml", "name: Algorithms\n")

		store := testutil.NewStore(t)
		store.AddSyllabus(ctx, model.Syllabus{Name: "Algorithms"})

		imported, err := Seed(ctx, store, dir)
		require.NoError(t, err)
		assert.Empty(t, imported)
		assert.Len(t, store.Syllabi(ctx), 1)
	})

	t.Run("rerunning the seed is idempotent", func(t *testing.T) {
		dir := t.TempDir()
		writeSeed(t, dir, "algorithms.yaml", "name: Algorithms\n")

		store := testutil.NewStore(t)
		_, err := Seed(ctx, store, dir)
		require.NoError(t, err)
		imported, err := Seed(ctx, store, dir)
		require.NoError(t, err)
		assert.Empty(t, imported)
	})

	t.Run("missing directory", func(t *testing.T) {
		store := testutil.NewStore(t)
		_, err := Seed(ctx, store, filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})

	t.Run("broken seed stops the import", func(t *testing.T) {
		dir := t.TempDir()
		writeSeed(t, dir, "broken.yaml", "name: [unclosed")

		store := testutil.NewStore(t)
		_, err := Seed(ctx, store, dir)
		assert.Error(t, err)
	})
}
