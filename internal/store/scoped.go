package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the id within the caller's
// ownership scope. Callers cannot distinguish a foreign-owner row from a row
// that does not exist.
var ErrNotFound = errors.New("record not found")

// Owned is implemented by every tenant-scoped record.
type Owned interface {
	SetOwner(id string)
}

// Scope narrows a query beyond the mandatory owner filter.
type Scope func(*gorm.DB) *gorm.DB

// Scoped is a repository for one record type whose every operation carries a
// mandatory owner filter. The owner id is an explicit parameter on each
// method; it is ANDed into the WHERE clause and never optional.
type Scoped[T any] struct {
	db *gorm.DB
}

func NewScoped[T any](db *gorm.DB) *Scoped[T] {
	return &Scoped[T]{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (s *Scoped[T]) WithTx(tx *gorm.DB) *Scoped[T] {
	return &Scoped[T]{db: tx}
}

func (s *Scoped[T]) owned(ctx context.Context, owner string) *gorm.DB {
	return s.db.WithContext(ctx).Model(new(T)).Where("user_id = ?", owner)
}

// FindOwned returns all of the owner's rows matching the optional scopes.
// The result is never nil so empty lists serialize as [].
func (s *Scoped[T]) FindOwned(ctx context.Context, owner string, scopes ...Scope) ([]T, error) {
	q := s.owned(ctx, owner)
	for _, sc := range scopes {
		q = sc(q)
	}
	out := make([]T, 0)
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetOwned fetches a single row by id within the owner's scope.
func (s *Scoped[T]) GetOwned(ctx context.Context, owner, id string) (*T, error) {
	var rec T
	err := s.owned(ctx, owner).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// CreateOwned stamps the record with the owner id and inserts it. Any owner
// value already present on the record is overwritten.
func (s *Scoped[T]) CreateOwned(ctx context.Context, owner string, rec Owned) error {
	rec.SetOwner(owner)
	return s.db.WithContext(ctx).Create(rec).Error
}

// UpdateOwned applies the given column updates to the owner's row and returns
// the updated record. An empty update set degenerates to a scoped fetch.
func (s *Scoped[T]) UpdateOwned(ctx context.Context, owner, id string, fields map[string]interface{}) (*T, error) {
	if len(fields) > 0 {
		res := s.owned(ctx, owner).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetOwned(ctx, owner, id)
}

// DeleteOwned removes the owner's row by id.
func (s *Scoped[T]) DeleteOwned(ctx context.Context, owner, id string) error {
	res := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", owner, id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOwnedWhere removes every owner row matching the scopes and reports
// how many were deleted. Zero matches is not an error.
func (s *Scoped[T]) DeleteOwnedWhere(ctx context.Context, owner string, scopes ...Scope) (int64, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", owner)
	for _, sc := range scopes {
		q = sc(q)
	}
	res := q.Delete(new(T))
	return res.RowsAffected, res.Error
}

// ExistsOwned reports whether the owner has a row with the given id.
func (s *Scoped[T]) ExistsOwned(ctx context.Context, owner, id string) (bool, error) {
	n, err := s.CountOwned(ctx, owner, Eq("id", id))
	return n > 0, err
}

// CountOwned counts the owner's rows matching the optional scopes.
func (s *Scoped[T]) CountOwned(ctx context.Context, owner string, scopes ...Scope) (int64, error) {
	q := s.owned(ctx, owner)
	for _, sc := range scopes {
		q = sc(q)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
