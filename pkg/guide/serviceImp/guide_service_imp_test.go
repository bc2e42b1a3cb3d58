package serviceImp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
)

type fakeRepo struct {
	docs   []entities.GuideDocument
	chunks []entities.GuideChunk
}

func (f *fakeRepo) CreateDoc(d *entities.GuideDocument) error {
	d.DocID = uint(len(f.docs) + 1)
	f.docs = append(f.docs, *d)
	return nil
}

func (f *fakeRepo) BulkInsertChunks(cs []entities.GuideChunk) error {
	for i := range cs {
		cs[i].ChunkID = uint(len(f.chunks) + 1)
		f.chunks = append(f.chunks, cs[i])
	}
	return nil
}

func (f *fakeRepo) ListDocs() ([]entities.GuideDocument, error) { return f.docs, nil }
func (f *fakeRepo) AllChunks() ([]entities.GuideChunk, error)   { return f.chunks, nil }

func (f *fakeRepo) DocsByIDs(ids []uint) (map[uint]entities.GuideDocument, error) {
	m := map[uint]entities.GuideDocument{}
	for _, d := range f.docs {
		for _, id := range ids {
			if d.DocID == id {
				m[id] = d
			}
		}
	}
	return m, nil
}

func TestUpsertDocumentChunksText(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)

	long := strings.Repeat("a line about tomato blight\n", 100)
	doc, n, err := svc.UpsertDocument("Tomato diseases", "tomato,disease", long, "")
	require.NoError(t, err)
	assert.NotZero(t, doc.DocID)
	assert.Greater(t, n, 1, "long text splits into multiple chunks")
	assert.Len(t, repo.chunks, n)
	for i, ch := range repo.chunks {
		assert.Equal(t, doc.DocID, ch.DocID)
		assert.Equal(t, i, ch.Ord)
	}
}

func TestUpsertDocumentEmptyText(t *testing.T) {
	svc := New(&fakeRepo{})
	doc, n, err := svc.UpsertDocument("Empty", "", "", "")
	require.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Zero(t, n)
}

func TestSearchRanksByTermOverlap(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)
	_, _, err := svc.UpsertDocument("Mixed notes", "",
		"Aphids love soft new growth.\n", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertDocument("Pest control", "",
		"Control aphids on tomato plants with a soap spray.\n", "")
	require.NoError(t, err)

	hits, err := svc.Search("aphids tomato spray", 5)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Contains(t, hits[0].Text, "soap spray", "chunk matching more terms ranks first")
}

func TestSearchNoMatches(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)
	_, _, err := svc.UpsertDocument("Pest control", "", "Control aphids with soap.\n", "")
	require.NoError(t, err)

	hits, err := svc.Search("orchid repotting", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = svc.Search("   ", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
