// Package store owns the authoritative todo list and its bridge to durable
// key-value storage.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/markup"
)

// Store holds the in-memory list. Every mutation is saved and then announced
// to the listener before the method returns.
type Store struct {
	kv  KV
	key string

	seed     func() (item.List, error)
	warn     io.Writer
	listener func(item.List)

	items  item.List
	loaded bool
}

// Option configures a Store.
type Option func(*Store)

// WithSeed sets the bootstrap source used when storage holds nothing usable
// on the first Load.
func WithSeed(seed func() (item.List, error)) Option {
	return func(s *Store) { s.seed = seed }
}

// WithWarnings redirects absorbed storage errors. Defaults to stderr.
func WithWarnings(w io.Writer) Option {
	return func(s *Store) { s.warn = w }
}

// WithListener registers the function called after every mutation.
func WithListener(fn func(item.List)) Option {
	return func(s *Store) { s.listener = fn }
}

// New returns an empty, unloaded Store persisting under key.
func New(kv KV, key string, opts ...Option) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{
		kv:    kv,
		key:   key,
		warn:  os.Stderr,
		items: item.List{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open builds a Store from cfg and loads it. A backend that cannot be
// opened is reported as a warning and the Store runs without storage, seeded
// or empty. Only an unknown driver name is returned as an error.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	kv, err := OpenKV(ctx, cfg)
	if errors.Is(err, ErrUnknownDriver) {
		return nil, err
	}
	if path := cfg.SeedPath(); path != "" {
		opts = append([]Option{WithSeed(SeedFile(path))}, opts...)
	}
	s := New(nil, cfg.Key(), opts...)
	if err != nil {
		s.warnf("open %s storage: %v", cfg.Driver(), err)
	} else {
		s.kv = kv
	}
	s.Load()
	return s, nil
}

// SeedFile seeds from the list markup in the file at path.
func SeedFile(path string) func() (item.List, error) {
	return func() (item.List, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return markup.Seed(f)
	}
}

// SetListener replaces the mutation listener.
func (s *Store) SetListener(fn func(item.List)) {
	s.listener = fn
}

// Load reads the list from storage. The first call falls back to the seed
// when the key is missing or corrupt; it never fails.
func (s *Store) Load() item.List {
	if s.loaded {
		s.Reload()
		return s.Items()
	}
	s.loaded = true

	l, err := s.read()
	if err == nil {
		s.items = l
		return s.Items()
	}
	if !errors.Is(err, ErrNotFound) {
		s.warnf("load %s: %v", s.key, err)
	}

	s.items = item.List{}
	if s.seed != nil {
		seeded, err := s.seed()
		if err != nil {
			s.warnf("seed: %v", err)
		} else if seeded != nil {
			s.items = seeded
		}
	}
	return s.Items()
}

// Reload replaces the list with what storage holds now. On failure the
// current list is kept; seeding is never attempted.
func (s *Store) Reload() bool {
	l, err := s.read()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.warnf("reload %s: %v", s.key, err)
		}
		return false
	}
	s.items = l
	return true
}

func (s *Store) read() (item.List, error) {
	if s.kv == nil {
		return nil, errors.New("store: no storage configured")
	}
	raw, err := s.kv.Read(s.key)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, ErrNotFound
	}
	return item.Unmarshal(raw)
}

// Save overwrites the stored value with the whole list.
func (s *Store) Save() error {
	if s.kv == nil {
		return errors.New("store: no storage configured")
	}
	data, err := item.Marshal(s.items)
	if err != nil {
		return err
	}
	return s.kv.Write(s.key, data)
}

// Items returns a copy of the current list.
func (s *Store) Items() item.List {
	return s.items.Clone()
}

// Add appends a new unchecked item. Blank text is ignored.
func (s *Store) Add(text string) (item.Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return item.Item{}, false
	}
	it := item.New(s.items.NextID(), text)
	s.items = append(s.items, it)
	s.changed()
	return it, true
}

// Remove drops the item with id, if any.
func (s *Store) Remove(id int) {
	kept := make(item.List, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.changed()
}

// SetChecked overwrites the checked flag of the item with id, if any.
func (s *Store) SetChecked(id int, checked bool) {
	if i := s.items.Index(id); i >= 0 {
		s.items[i].Checked = checked
	}
	s.changed()
}

// Close releases the storage backend.
func (s *Store) Close() error {
	if s.kv == nil {
		return nil
	}
	return s.kv.Close()
}

func (s *Store) changed() {
	if err := s.Save(); err != nil {
		s.warnf("save %s: %v", s.key, err)
	}
	if s.listener != nil {
		s.listener(s.Items())
	}
}

func (s *Store) warnf(format string, args ...interface{}) {
	if s.warn == nil {
		return
	}
	_, _ = fmt.Fprintf(s.warn, "store: "+format+"\n", args...)
}
