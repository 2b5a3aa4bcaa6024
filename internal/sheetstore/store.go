package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// ErrRecordNotFound is returned when the row locator exhausts all fallback
// attempts. Callers surface it as a user-visible failure; an update or
// delete must never fall back to creating a new row.
var ErrRecordNotFound = errors.New("hospital sales record not found")

// VisitContentChange describes one visit content edit detected during an
// update, used to build the audit trail.
type VisitContentChange struct {
	VisitNumber int
	FieldName   string
	OldContent  string
	NewContent  string
}

// SheetClient is the row-level spreadsheet access the Store needs.
// *Client is the production implementation.
type SheetClient interface {
	ReadHeaders(ctx context.Context) ([]string, error)
	ReadRows(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, row []string) error
	UpdateRow(ctx context.Context, rowIndex int, row []string) error
	DeleteRow(ctx context.Context, rowIndex int) error
}

// Store is the spreadsheet-backed record store. Reads go through a short
// TTL cache; every write invalidates it. There is no concurrency control on
// the sheet itself: two simultaneous updates race and the last write wins,
// which is acceptable for a single-office tool.
type Store struct {
	client   SheetClient
	cacheTTL time.Duration

	mu       sync.RWMutex
	cached   []Record
	cachedAt time.Time
}

// NewStore creates a Store around the shared Sheets client.
func NewStore(client SheetClient, cacheTTL time.Duration) *Store {
	return &Store{client: client, cacheTTL: cacheTTL}
}

// List returns all hospital sales records. Results are cached for the
// configured TTL unless forceRefresh is set. A failed read is logged and
// degrades to an empty list so the dashboard renders empty instead of
// erroring out.
func (s *Store) List(ctx context.Context, forceRefresh bool) []Record {
	if !forceRefresh {
		s.mu.RLock()
		if s.cached != nil && time.Since(s.cachedAt) < s.cacheTTL {
			cached := s.cached
			s.mu.RUnlock()
			return cached
		}
		s.mu.RUnlock()
	}

	headers, err := s.client.ReadHeaders(ctx)
	if err != nil {
		log.Printf("sheetstore: reading headers failed: %v", err)
		return []Record{}
	}
	rows, err := s.client.ReadRows(ctx)
	if err != nil {
		log.Printf("sheetstore: reading rows failed: %v", err)
		return []Record{}
	}

	cols := ResolveColumns(headers)
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		records = append(records, RecordFromRow(row, cols, fmt.Sprintf("hospital-%d", i+1)))
	}

	s.mu.Lock()
	s.cached = records
	s.cachedAt = time.Now()
	s.mu.Unlock()

	return records
}

// Create appends a new record. A blank id gets a generated one; the derived
// visit fields and lastUpdate are computed server-side regardless of what
// the caller sent.
func (s *Store) Create(ctx context.Context, rec Record) (Record, error) {
	if strings.TrimSpace(rec.ID) == "" {
		rec.ID = fmt.Sprintf("hospital-%d", time.Now().UnixMilli())
	}
	rec.applyVisitInfo()
	rec.LastUpdate = today()

	if err := s.client.AppendRow(ctx, rec.ToRow()); err != nil {
		return Record{}, err
	}

	s.invalidate()
	return rec, nil
}

// Update locates the persisted row for the incoming record, merges the two
// and writes the result back. Returns the merged record plus the visit
// content edits the merge produced, for audit logging.
func (s *Store) Update(ctx context.Context, incoming Record) (Record, []VisitContentChange, error) {
	headers, err := s.client.ReadHeaders(ctx)
	if err != nil {
		return Record{}, nil, err
	}
	rows, err := s.client.ReadRows(ctx)
	if err != nil {
		return Record{}, nil, err
	}

	cols := ResolveColumns(headers)
	key := RecordKey{ID: incoming.ID, HospitalName: incoming.HospitalName, Phone: incoming.Phone}
	idx := LocateRow(rows, key, cols)
	if idx == -1 {
		log.Printf("sheetstore: no row matches id=%q hospitalName=%q phone=%q", key.ID, key.HospitalName, key.Phone)
		return Record{}, nil, ErrRecordNotFound
	}

	existing := rows[idx]
	merged := MergeForUpdate(incoming, existing, cols)
	changes := visitContentChanges(existing, &merged, cols)

	if err := s.client.UpdateRow(ctx, idx, merged.ToRow()); err != nil {
		return Record{}, nil, err
	}

	s.invalidate()
	return merged, changes, nil
}

// Delete locates the row for the key and removes it.
func (s *Store) Delete(ctx context.Context, key RecordKey) error {
	headers, err := s.client.ReadHeaders(ctx)
	if err != nil {
		return err
	}
	rows, err := s.client.ReadRows(ctx)
	if err != nil {
		return err
	}

	cols := ResolveColumns(headers)
	idx := LocateRow(rows, key, cols)
	if idx == -1 {
		log.Printf("sheetstore: no row matches id=%q hospitalName=%q phone=%q", key.ID, key.HospitalName, key.Phone)
		return ErrRecordNotFound
	}

	if err := s.client.DeleteRow(ctx, idx); err != nil {
		return err
	}

	s.invalidate()
	return nil
}

func (s *Store) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// visitContentChanges diffs the persisted visit content cells against the
// merged record.
func visitContentChanges(existingRow []string, merged *Record, cols ColumnMap) []VisitContentChange {
	var changes []VisitContentChange
	contents := merged.VisitContents()
	for i := 0; i < visitSlots; i++ {
		oldContent := cell(existingRow, cols.VisitContents[i])
		if oldContent == contents[i] {
			continue
		}
		changes = append(changes, VisitContentChange{
			VisitNumber: i + 1,
			FieldName:   fmt.Sprintf("visit%dContent", i+1),
			OldContent:  oldContent,
			NewContent:  contents[i],
		})
	}
	return changes
}
