package wfc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tempArchive(t *testing.T) *Archive {
	a, err := OpenArchive(filepath.Join(t.TempDir(), "archive.sqlite"))
	assert.Nil(t, err)
	return a
}

func TestArchiveRoundTrip(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(3, 2, c)
	assert.Nil(t, b.Set(0, 0, 0))
	assert.Nil(t, b.Set(2, 1, 1))

	a := tempArchive(t)
	defer a.Close()

	id, err := a.SaveRun(b, c, Complete, 42)
	assert.Nil(t, err)
	assert.NotEqual(t, "", id)

	meta, err := a.Run(id)
	assert.Nil(t, err)
	assert.Equal(t, "duo", meta.Set)
	assert.Equal(t, 3, meta.Width)
	assert.Equal(t, 2, meta.Height)
	assert.Equal(t, "complete", meta.Outcome)
	assert.Equal(t, int64(42), meta.Seed)

	loaded, err := a.Board(id, c)
	assert.Nil(t, err)
	assert.Equal(t, b.Placed(), loaded.Placed())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			wantID, wantOK := b.At(x, y)
			gotID, gotOK := loaded.At(x, y)
			assert.Equal(t, wantOK, gotOK)
			assert.Equal(t, wantID, gotID)
		}
	}
}

func TestArchiveEmptyBoard(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(2, 2, c)

	a := tempArchive(t)
	defer a.Close()

	// failed runs can leave nothing behind; they still archive
	id, err := a.SaveRun(b, c, Failed, 1)
	assert.Nil(t, err)

	loaded, err := a.Board(id, c)
	assert.Nil(t, err)
	assert.Equal(t, 0, loaded.Placed())
}

func TestArchiveListsRuns(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(2, 2, c)
	assert.Nil(t, b.Set(0, 0, 0))

	a := tempArchive(t)
	defer a.Close()

	ida, err := a.SaveRun(b, c, Complete, 1)
	assert.Nil(t, err)
	idb, err := a.SaveRun(b, c, Stopped, 2)
	assert.Nil(t, err)

	runs, err := a.Runs()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(runs))

	ids := map[string]bool{}
	for _, m := range runs {
		ids[m.ID] = true
	}
	assert.True(t, ids[ida])
	assert.True(t, ids[idb])
}

func TestArchiveUnknownRun(t *testing.T) {
	a := tempArchive(t)
	defer a.Close()

	_, err := a.Run("ghost")
	assert.NotNil(t, err)

	_, err = a.Board("ghost", duoCatalog(t))
	assert.NotNil(t, err)
}

func TestArchiveRejectsMismatchedCatalog(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(2, 2, c)
	assert.Nil(t, b.Set(0, 0, 0))

	a := tempArchive(t)
	defer a.Close()

	id, err := a.SaveRun(b, c, Complete, 1)
	assert.Nil(t, err)

	other, err := BuildCatalog(mustSet(t, "simple"))
	assert.Nil(t, err)

	_, err = a.Board(id, other)
	assert.NotNil(t, err)
}
