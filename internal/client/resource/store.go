// Package resource mirrors a server-side collection in memory. A Store
// issues list/get/create/update/delete calls through the API client and
// reconciles the results into its local state.
package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/vehiclehub/internal/client/api"
	"github.com/dmitrijs2005/vehiclehub/internal/client/models"
	"github.com/dmitrijs2005/vehiclehub/internal/logging"
)

// Item is a record with a server-assigned identity key.
type Item interface {
	ResourceKey() string
}

// Doer sends authenticated JSON requests; *api.Client satisfies it.
type Doer interface {
	Do(ctx context.Context, method, endpoint string, body, out any, opts ...api.Option) error
}

type Pagination struct {
	TotalElements int64
	TotalPages    int
	PageSize      int
	CurrentPage   int
}

// State is a copy of a store's contents.
type State[T Item] struct {
	Items      []T
	Current    *T
	Pagination Pagination
	Loading    bool
	Error      string
}

// Store caches one collection. Overlapping calls are neither queued nor
// de-duplicated: each reconciles when its response arrives, so the last
// response to land wins. The mutex only keeps single mutations atomic.
type Store[T Item] struct {
	path string
	api  Doer
	log  logging.Logger

	mu         sync.RWMutex
	items      []T
	current    *T
	pagination Pagination
	loading    bool
	err        string
}

// NewStore creates a store for the collection at path, e.g. "/vehicles".
func NewStore[T Item](path string, c Doer, log logging.Logger) *Store[T] {
	return &Store[T]{path: path, api: c, log: log.With("store", path)}
}

func NewUserStore(c Doer, log logging.Logger) *Store[models.User] {
	return NewStore[models.User]("/users", c, log)
}

func NewVehicleStore(c Doer, log logging.Logger) *Store[models.Vehicle] {
	return NewStore[models.Vehicle]("/vehicles", c, log)
}

func (s *Store[T]) State() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := State[T]{
		Items:      append([]T(nil), s.items...),
		Pagination: s.pagination,
		Loading:    s.loading,
		Error:      s.err,
	}
	if s.current != nil {
		c := *s.current
		st.Current = &c
	}
	return st
}

func (s *Store[T]) Items() []T { return s.State().Items }

func (s *Store[T]) Current() *T { return s.State().Current }

func (s *Store[T]) Error() string { return s.State().Error }

func (s *Store[T]) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Store[T]) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Store[T]) fail(ctx context.Context, op string, err error) {
	s.mu.Lock()
	s.err = api.Message(err)
	s.mu.Unlock()
	s.log.Error(ctx, "operation failed", "op", op, "error", err)
}

func (s *Store[T]) itemPath(key string) string {
	return s.path + "/" + url.PathEscape(key)
}

// FetchList loads one page and replaces the local items and pagination.
// size <= 0 requests the server's default listing with no query string, so
// page is ignored as well. Failures are recorded in the store's error and
// nil is returned.
func (s *Store[T]) FetchList(ctx context.Context, page, size int) []T {
	s.begin()
	defer s.end()

	endpoint := s.path
	if size > 0 {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("size", strconv.Itoa(size))
		endpoint += "?" + q.Encode()
	}

	var raw json.RawMessage
	if err := s.api.Do(ctx, http.MethodGet, endpoint, nil, &raw); err != nil {
		s.fail(ctx, "fetch_list", err)
		return nil
	}

	pg, err := decodePage[T](raw)
	if err != nil {
		s.fail(ctx, "fetch_list", err)
		return nil
	}

	s.mu.Lock()
	s.items = pg.Content
	s.pagination = Pagination{
		TotalElements: pg.TotalElements,
		TotalPages:    pg.TotalPages,
		PageSize:      pg.Size,
		CurrentPage:   pg.Number,
	}
	s.mu.Unlock()

	s.log.Debug(ctx, "list fetched", "summary", s.String())

	return append([]T(nil), pg.Content...)
}

// decodePage accepts a page envelope or a bare JSON array. A bare array is
// reported as a single page holding everything.
func decodePage[T Item](raw json.RawMessage) (models.Page[T], error) {
	var pg models.Page[T]
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &pg.Content); err != nil {
			return pg, &api.DecodeError{Status: http.StatusOK, Err: err}
		}
		n := len(pg.Content)
		pg.TotalElements = int64(n)
		pg.Size = n
		if n > 0 {
			pg.TotalPages = 1
		}
		return pg, nil
	}

	if len(trimmed) == 0 {
		return pg, &api.DecodeError{Status: http.StatusOK, Err: errors.New("empty listing")}
	}
	if err := json.Unmarshal(trimmed, &pg); err != nil {
		return pg, &api.DecodeError{Status: http.StatusOK, Err: err}
	}
	return pg, nil
}

// FetchOne loads a single item and makes it current. ok is false on
// failure, which is recorded in the store's error.
func (s *Store[T]) FetchOne(ctx context.Context, key string) (item T, ok bool) {
	s.begin()
	defer s.end()

	if err := s.api.Do(ctx, http.MethodGet, s.itemPath(key), nil, &item); err != nil {
		s.fail(ctx, "fetch_one", err)
		var zero T
		return zero, false
	}

	s.mu.Lock()
	c := item
	s.current = &c
	s.mu.Unlock()

	return item, true
}

// Create posts data and appends the returned item.
func (s *Store[T]) Create(ctx context.Context, data any) (T, error) {
	s.begin()
	defer s.end()

	var item T
	if err := s.api.Do(ctx, http.MethodPost, s.path, data, &item); err != nil {
		s.fail(ctx, "create", err)
		return item, err
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	return item, nil
}

// Update puts data at key. The first local item with that key is replaced,
// and so is the current item when it has that key.
func (s *Store[T]) Update(ctx context.Context, key string, data any) (T, error) {
	s.begin()
	defer s.end()

	var item T
	if err := s.api.Do(ctx, http.MethodPut, s.itemPath(key), data, &item); err != nil {
		s.fail(ctx, "update", err)
		return item, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ResourceKey() == key {
			s.items[i] = item
			break
		}
	}
	if s.current != nil && (*s.current).ResourceKey() == key {
		c := item
		s.current = &c
	}
	s.mu.Unlock()

	return item, nil
}

// Delete removes the item at key on the server and locally.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	s.begin()
	defer s.end()

	if err := s.api.Do(ctx, http.MethodDelete, s.itemPath(key), nil, nil); err != nil {
		s.fail(ctx, "delete", err)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0:0]
	for _, it := range s.items {
		if it.ResourceKey() != key {
			kept = append(kept, it)
		}
	}
	s.items = kept
	if s.current != nil && (*s.current).ResourceKey() == key {
		s.current = nil
	}
	s.mu.Unlock()

	return nil
}

// String summarises the store for logs.
func (s *Store[T]) String() string {
	st := s.State()
	return fmt.Sprintf("%s: %d items, page %d/%d", s.path, len(st.Items), st.Pagination.CurrentPage, st.Pagination.TotalPages)
}
