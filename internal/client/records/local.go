package records

import (
	"context"
	"strconv"
	"time"

	"github.com/qrkeeper/qrkeeper/internal/client/models"
	"github.com/qrkeeper/qrkeeper/internal/client/storage"
	"github.com/qrkeeper/qrkeeper/internal/common"
)

// LocalStore keeps records in the anonymous local slot. Single-user by
// construction, so there is no ownership check.
type LocalStore struct {
	store *storage.Store
	now   func() time.Time
}

// NewLocalStore constructs a LocalStore over the given slot.
func NewLocalStore(st *storage.Store) *LocalStore {
	return &LocalStore{store: st, now: time.Now}
}

func (s *LocalStore) List(ctx context.Context) ([]models.Record, error) {
	return s.store.Load(), nil
}

// Create prepends the new record, keeping the list newest-first, and
// assigns a client-generated epoch-milliseconds id. Two creates within the
// same millisecond would collide, so the id is bumped past any taken one.
func (s *LocalStore) Create(ctx context.Context, content, image, logo string) (*models.Record, error) {
	now := s.now()
	existing := s.store.Load()

	ms := now.UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for hasID(existing, id) {
		ms++
		id = strconv.FormatInt(ms, 10)
	}

	rec := models.Record{
		ID:        id,
		Content:   content,
		Image:     image,
		Logo:      logo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	list := append([]models.Record{rec}, existing...)
	if err := s.store.Save(list); err != nil {
		return nil, err
	}
	return &rec, nil
}

func hasID(list []models.Record, id string) bool {
	for _, rec := range list {
		if rec.ID == id {
			return true
		}
	}
	return false
}

func (s *LocalStore) Delete(ctx context.Context, id string) error {
	list := s.store.Load()
	kept := make([]models.Record, 0, len(list))
	found := false
	for _, rec := range list {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return common.ErrorNotFound
	}
	return s.store.Save(kept)
}
