// Package cache memoizes solved puzzle instances in a badger database.
//
// Keys are the variant tag followed by the instance's canonical rendering
// (core graph String), so two lines that differ only in whitespace share an
// entry. Values hold a status byte and the uvarint cost.
package cache

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/togglepath/puzzle"
)

// ErrCorrupt indicates a stored value that cannot be decoded.
var ErrCorrupt = errors.New("cache: corrupt entry")

const (
	statusSolved     byte = 1
	statusInfeasible byte = 2
)

// Entry is a memoized result.
type Entry struct {
	Cost     int  // minimum cost; 0 when !Feasible
	Feasible bool // false for unreachable or infeasible instances
}

// Store wraps a badger database. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) a persistent store in dir. badger's own
// logging is routed to logger; a nil logger silences it.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("cache: directory is required")
	}
	return open(badger.DefaultOptions(dir), logger)
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory(logger *zap.Logger) (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), logger)
}

func open(opts badger.Options, logger *zap.Logger) (*Store, error) {
	opts.DetectConflicts = false
	opts.MetricsEnabled = false
	opts.NumVersionsToKeep = 1
	if logger != nil {
		opts = opts.WithLogger(&zapLogger{s: logger.Named("badger").Sugar()})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "cache: open badger")
	}

	return &Store{db: db}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "cache: close")
}

// Get looks up an instance. ok is false when nothing is stored.
func (s *Store) Get(v puzzle.Variant, instance string) (e Entry, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(v, instance))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			e, err = decode(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, errors.Wrapf(err, "cache: get %s %q", v, instance)
	}

	return e, true, nil
}

// Put stores the result for an instance, replacing any previous entry.
func (s *Store) Put(v puzzle.Variant, instance string, e Entry) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(v, instance), encode(e))
	})

	return errors.Wrapf(err, "cache: put %s %q", v, instance)
}

// Len counts the stored entries.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})

	return n, errors.Wrap(err, "cache: len")
}

func key(v puzzle.Variant, instance string) []byte {
	k := make([]byte, 0, len(instance)+2)
	k = append(k, byte(v), 0)
	return append(k, instance...)
}

func encode(e Entry) []byte {
	if !e.Feasible {
		return []byte{statusInfeasible}
	}
	return binary.AppendUvarint([]byte{statusSolved}, uint64(e.Cost))
}

func decode(val []byte) (Entry, error) {
	if len(val) == 0 {
		return Entry{}, ErrCorrupt
	}
	switch val[0] {
	case statusInfeasible:
		return Entry{}, nil
	case statusSolved:
		cost, n := binary.Uvarint(val[1:])
		if n <= 0 {
			return Entry{}, ErrCorrupt
		}
		return Entry{Cost: int(cost), Feasible: true}, nil
	default:
		return Entry{}, errors.Wrapf(ErrCorrupt, "status %d", val[0])
	}
}

// zapLogger bridges badger.Logger onto zap.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l *zapLogger) Errorf(format string, args ...interface{})   { l.s.Errorf(format, args...) }
func (l *zapLogger) Warningf(format string, args ...interface{}) { l.s.Warnf(format, args...) }
func (l *zapLogger) Infof(format string, args ...interface{})    { l.s.Infof(format, args...) }
func (l *zapLogger) Debugf(format string, args ...interface{})   { l.s.Debugf(format, args...) }
