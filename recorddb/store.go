// Package recorddb is a tiny in-memory record database kept in brand order
// by an unbalanced binary search tree.
package recorddb

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ajwerner/bst"
)

var (
	ErrDuplicateRecord = errors.New("duplicate record")
	ErrInvalidRecord   = errors.New("invalid record")
)

type Option func(*Store)

// WithLogger sets the logger used to trace store mutations. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithDropHook registers fn to be called once for every record leaving the
// store, either through Remove or Drop.
func WithDropHook(fn func(*Record)) Option {
	return func(s *Store) { s.onDrop = fn }
}

// Store holds records ordered by brand. Like the tree backing it, a Store is
// not safe for concurrent use.
type Store struct {
	tree     *bst.Tree[*Record]
	validate *validator.Validate
	logger   zerolog.Logger
	onDrop   func(*Record)
}

func New(opts ...Option) *Store {
	s := &Store{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.tree = bst.New(Compare, bst.WithDestructor(s.drop))

	return s
}

func (s *Store) drop(r *Record) {
	s.logger.Debug().Str("_brand", r.Brand).Msg("Record dropped")

	if s.onDrop != nil {
		s.onDrop(r)
	}
}

// Insert stores r. It fails with ErrInvalidRecord if r does not validate and
// with ErrDuplicateRecord if a record with the same brand is already stored;
// in both cases the store does not keep r.
func (s *Store) Insert(r *Record) error {
	if r == nil {
		return errors.Wrap(ErrInvalidRecord, "nil record")
	}

	if err := s.validate.Struct(r); err != nil {
		return errors.Wrapf(ErrInvalidRecord, "%v", err)
	}

	if !s.tree.Insert(r) {
		s.logger.Debug().Str("_brand", r.Brand).Msg("Record rejected")

		return errors.Wrapf(ErrDuplicateRecord, "brand %q", r.Brand)
	}

	s.logger.Debug().Str("_brand", r.Brand).Int("_rows", s.tree.Len()).Msg("Record inserted")

	return nil
}

// Search returns the record stored under brand.
func (s *Store) Search(brand string) (*Record, bool) {
	return s.tree.Search(key(brand))
}

// Remove deletes the record with r's brand. It reports whether such a record
// was stored.
func (s *Store) Remove(r *Record) bool {
	if r == nil {
		return false
	}

	return s.tree.Delete(r)
}

// List renders every record in ascending brand order and stops at the first
// rendering error.
func (s *Store) List(w io.Writer, renderer Renderer) error {
	for r := range s.tree.All() {
		if err := renderer.Render(w, r); err != nil {
			return errors.Wrapf(err, "failed to render %q", r.Brand)
		}
	}

	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return s.tree.Len()
}

// Drop removes every record. The store remains usable.
func (s *Store) Drop() {
	rows := s.tree.Len()
	s.tree.Reset()

	s.logger.Debug().Int("_rows", rows).Msg("Store dropped")
}
