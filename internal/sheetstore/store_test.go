package sheetstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSheetClient struct {
	headers []string
	rows    [][]string
	readErr error

	readCalls int
	appended  [][]string
	updated   map[int][]string
	deleted   []int
}

func (f *fakeSheetClient) ReadHeaders(ctx context.Context) ([]string, error) {
	f.readCalls++
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.headers, nil
}

func (f *fakeSheetClient) ReadRows(ctx context.Context) ([][]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.rows, nil
}

func (f *fakeSheetClient) AppendRow(ctx context.Context, row []string) error {
	f.appended = append(f.appended, row)
	return nil
}

func (f *fakeSheetClient) UpdateRow(ctx context.Context, rowIndex int, row []string) error {
	if f.updated == nil {
		f.updated = make(map[int][]string)
	}
	f.updated[rowIndex] = row
	return nil
}

func (f *fakeSheetClient) DeleteRow(ctx context.Context, rowIndex int) error {
	f.deleted = append(f.deleted, rowIndex)
	return nil
}

func newFakeClient(records ...Record) *fakeSheetClient {
	rows := make([][]string, len(records))
	for i := range records {
		rows[i] = records[i].ToRow()
	}
	return &fakeSheetClient{rows: rows}
}

func TestStoreListCachesWithinTTL(t *testing.T) {
	fake := newFakeClient(fullRecord())
	store := NewStore(fake, 5*time.Minute)
	ctx := context.Background()

	first := store.List(ctx, false)
	second := store.List(ctx, false)

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.readCalls)
}

func TestStoreListExpiredCacheRefetches(t *testing.T) {
	fake := newFakeClient(fullRecord())

	// A zero TTL expires the cache immediately.
	store := NewStore(fake, 0)
	ctx := context.Background()

	store.List(ctx, false)
	store.List(ctx, false)

	assert.Equal(t, 2, fake.readCalls)
}

func TestStoreListForceRefreshBypassesCache(t *testing.T) {
	fake := newFakeClient(fullRecord())
	store := NewStore(fake, 5*time.Minute)
	ctx := context.Background()

	store.List(ctx, false)
	added := Record{ID: "hospital-2", HospitalName: "신규의원"}
	fake.rows = append(fake.rows, added.ToRow())

	refreshed := store.List(ctx, true)

	assert.Equal(t, 2, fake.readCalls)
	require.Len(t, refreshed, 2)
	assert.Equal(t, "hospital-2", refreshed[1].ID)
}

func TestStoreListDegradesToEmptyOnReadError(t *testing.T) {
	fake := newFakeClient(fullRecord())
	fake.readErr = errors.New("googleapi: quota exceeded")
	store := NewStore(fake, 5*time.Minute)
	ctx := context.Background()

	got := store.List(ctx, false)

	require.NotNil(t, got)
	assert.Empty(t, got)

	// A failed read is not cached; recovery on the next call.
	fake.readErr = nil
	assert.Len(t, store.List(ctx, false), 1)
}

func TestStoreCreateInvalidatesCache(t *testing.T) {
	fake := newFakeClient(fullRecord())
	store := NewStore(fake, 5*time.Minute)
	ctx := context.Background()

	store.List(ctx, false)

	created, err := store.Create(ctx, Record{HospitalName: "신설의원", Department: "소아과"})
	require.NoError(t, err)
	require.Len(t, fake.appended, 1)
	assert.Regexp(t, `^hospital-\d+$`, created.ID)
	assert.Equal(t, today(), created.LastUpdate)

	store.List(ctx, false)
	assert.Equal(t, 2, fake.readCalls)
}

func TestStoreUpdateWritesMergedRowAndInvalidates(t *testing.T) {
	existing := fullRecord()
	fake := newFakeClient(existing)
	store := NewStore(fake, 5*time.Minute)
	ctx := context.Background()

	store.List(ctx, false)

	merged, changes, err := store.Update(ctx, Record{
		ID:            existing.ID,
		Visit3Content: "new note",
	})
	require.NoError(t, err)

	assert.Equal(t, "new note", merged.Visit3Content)
	assert.Equal(t, existing.HospitalName, merged.HospitalName)
	require.Len(t, changes, 1)
	assert.Equal(t, "visit3Content", changes[0].FieldName)

	row, ok := fake.updated[0]
	require.True(t, ok)
	assert.Equal(t, merged.ToRow(), row)

	store.List(ctx, false)
	assert.Equal(t, 3, fake.readCalls) // list, update's read, post-write list
}

func TestStoreUpdateNotFound(t *testing.T) {
	fake := newFakeClient(fullRecord())
	store := NewStore(fake, 5*time.Minute)

	_, _, err := store.Update(context.Background(), Record{ID: "hospital-404"})

	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Empty(t, fake.updated)
}

func TestStoreDeleteInvalidatesCache(t *testing.T) {
	existing := fullRecord()
	fake := newFakeClient(existing)
	store := NewStore(fake, 5*time.Minute)
	ctx := context.Background()

	store.List(ctx, false)

	err := store.Delete(ctx, RecordKey{ID: existing.ID})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, fake.deleted)

	store.List(ctx, false)
	assert.Equal(t, 3, fake.readCalls) // list, delete's read, post-write list
}
