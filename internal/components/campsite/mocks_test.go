package campsite

import (
	"context"
	"strings"
)

// fakeRepo is an in-memory listing repository mirroring the storage contract:
// tags are kept as a joined string and split on read, filters are conjunctive,
// results come back in insertion order. calls counts every repository hit so
// tests can assert rejected requests never reach the store.
type fakeRepo struct {
	nextID int64
	ids    []int64
	rows   map[int64]fakeRow
	calls  int
}

type fakeRow struct {
	in   CampsiteIn
	tags string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[int64]fakeRow)}
}

func (f *fakeRepo) toCampsite(id int64, row fakeRow) *Campsite {
	return &Campsite{
		ID:          id,
		Name:        row.in.Name,
		Description: row.in.Description,
		Location:    row.in.Location,
		Prefecture:  row.in.Prefecture,
		PriceMin:    row.in.PriceMin,
		PriceMax:    row.in.PriceMax,
		PetFriendly: row.in.PetFriendly,
		Tags:        splitTags(row.tags),
	}
}

func (f *fakeRepo) Create(_ context.Context, in CampsiteIn) (*Campsite, error) {
	f.calls++
	f.nextID++
	row := fakeRow{in: in, tags: joinTags(in.Tags)}
	f.rows[f.nextID] = row
	f.ids = append(f.ids, f.nextID)
	return f.toCampsite(f.nextID, row), nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*Campsite, error) {
	f.calls++
	row, ok := f.rows[id]
	if !ok {
		return nil, ErrCampsiteNotFound
	}
	return f.toCampsite(id, row), nil
}

func (f *fakeRepo) List(_ context.Context, query ListQuery) ([]Campsite, error) {
	f.calls++
	results := []Campsite{}
	for _, id := range f.ids {
		row, ok := f.rows[id]
		if !ok {
			continue
		}
		if query.Keyword != "" && !strings.Contains(row.in.Name, query.Keyword) {
			continue
		}
		if query.Prefecture != "" && row.in.Prefecture != query.Prefecture {
			continue
		}
		if query.PetFriendly != nil && row.in.PetFriendly != *query.PetFriendly {
			continue
		}
		results = append(results, *f.toCampsite(id, row))
	}
	return results, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, in CampsiteIn) (*Campsite, error) {
	f.calls++
	if _, ok := f.rows[id]; !ok {
		return nil, ErrCampsiteNotFound
	}
	row := fakeRow{in: in, tags: joinTags(in.Tags)}
	f.rows[id] = row
	return f.toCampsite(id, row), nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.calls++
	if _, ok := f.rows[id]; !ok {
		return ErrCampsiteNotFound
	}
	delete(f.rows, id)
	return nil
}
