package serviceImp

import (
	"sort"
	"strings"

	"sprout/entities"
	"sprout/pkg/guide/repository"
)

type Svc struct{ r repository.GuideRepository }

func New(r repository.GuideRepository) *Svc { return &Svc{r: r} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(title, tags, text, sourceURL string) (*entities.GuideDocument, int, error) {
	d := &entities.GuideDocument{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}
	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}
	rows := make([]entities.GuideChunk, len(chs))
	for i := range chs {
		rows[i] = entities.GuideChunk{DocID: d.DocID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

// Search scores chunks by how many query terms they contain. No ranking
// model; gardening guides are few enough that term overlap is adequate.
func (s *Svc) Search(query string, k int) ([]entities.GuideChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}
	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	terms := strings.Fields(strings.ToLower(q))
	type scored struct {
		ch entities.GuideChunk
		sc int
	}
	var list []scored
	for _, ch := range chunks {
		low := strings.ToLower(ch.Text)
		sc := 0
		for _, t := range terms {
			if strings.Contains(low, t) {
				sc++
			}
		}
		if sc > 0 {
			list = append(list, scored{ch: ch, sc: sc})
		}
	}
	if len(list) == 0 {
		return nil, nil
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.GuideChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.GuideDocument, error) {
	return s.r.DocsByIDs(ids)
}
