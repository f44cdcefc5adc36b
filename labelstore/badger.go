package labelstore

import (
	"encoding/binary"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/weakcc/partition"
)

// BadgerConfig configures an out-of-core label table.
type BadgerConfig struct {
	// Dir is the directory for the BadgerDB files. Required unless
	// InMemory is set, ignored when it is.
	Dir string

	// InMemory keeps the database off disk. Useful for tests and for
	// exercising the out-of-core code path on small inputs.
	InMemory bool

	// SyncWrites forces fsync on every commit. The label table is
	// scratch state — a failed run restarts from the input snapshot — so
	// the default is false.
	SyncWrites bool
}

// BadgerStore implements Store on BadgerDB, keeping the label table on
// disk so it may grow past working memory. Batched merges are committed
// through bounded transactions, re-opened whenever BadgerDB signals the
// transaction size limit.
type BadgerStore struct {
	db   *badger.DB
	size int
}

// OpenBadger opens (or creates) a Badger-backed label table.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	var opt badger.Options
	if cfg.InMemory {
		opt = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Dir == "" {
			return nil, ErrDirRequired
		}
		opt = badger.DefaultOptions(cfg.Dir)
	}
	opt = opt.WithLogger(nil).WithSyncWrites(cfg.SyncWrites)

	db, err := badger.Open(opt)
	if err != nil {
		return nil, fmt.Errorf("labelstore: open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Keys are uvarint(len(group)) + group + 8 bytes of vertex id; values are
// 8 bytes of label. Int64s are stored sign-flipped big-endian so that
// byte order matches numeric order.

func encodeInt64(v int64) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v)^(1<<63))
	return b
}

func decodeInt64(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63))
}

func encodeKey(g partition.GroupKey, vertex int64) []byte {
	key := make([]byte, 0, binary.MaxVarintLen64+len(g)+8)
	key = binary.AppendUvarint(key, uint64(len(g)))
	key = append(key, g...)
	v := encodeInt64(vertex)
	return append(key, v[:]...)
}

func decodeKey(key []byte) (partition.GroupKey, int64, error) {
	n, used := binary.Uvarint(key)
	if used <= 0 || len(key) != used+int(n)+8 {
		return partition.NoGroup, 0, fmt.Errorf("labelstore: malformed key %x", key)
	}
	g := partition.GroupKey(key[used : used+int(n)])
	return g, decodeInt64(key[used+int(n):]), nil
}

// InitGroup writes identity labels through a write batch.
func (s *BadgerStore) InitGroup(g partition.GroupKey, ids []int64) error {
	if s.db == nil {
		return ErrClosed
	}
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, id := range ids {
		label := encodeInt64(id)
		if err := wb.Set(encodeKey(g, id), label[:]); err != nil {
			return fmt.Errorf("labelstore: init group %q: %w", g, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("labelstore: init group %q: %w", g, err)
	}
	s.size += len(ids)
	return nil
}

// ReadBatch reads current labels of ids inside one read transaction.
func (s *BadgerStore) ReadBatch(g partition.GroupKey, ids []int64, out map[int64]int64) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			item, err := txn.Get(encodeKey(g, id))
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: vertex %d in group %q", ErrUnknownVertex, id, g)
			}
			if err != nil {
				return fmt.Errorf("labelstore: read group %q: %w", g, err)
			}
			v := id
			if err = item.Value(func(val []byte) error {
				out[v] = decodeInt64(val)
				return nil
			}); err != nil {
				return fmt.Errorf("labelstore: read group %q: %w", g, err)
			}
		}
		return nil
	})
}

// MergeMin lowers labels through read-modify-write transactions. When
// BadgerDB reports the transaction grew past its size limit, the batch is
// committed and a fresh transaction continues — safe under the monotonic
// discipline because committed labels can only have decreased.
func (s *BadgerStore) MergeMin(g partition.GroupKey, proposals map[int64]int64) (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	changed := 0
	txn := s.db.NewTransaction(true)
	defer func() { txn.Discard() }()

	for id, p := range proposals {
		key := encodeKey(g, id)
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return changed, fmt.Errorf("%w: vertex %d in group %q", ErrUnknownVertex, id, g)
		}
		if err != nil {
			return changed, fmt.Errorf("labelstore: merge group %q: %w", g, err)
		}
		var cur int64
		if err = item.Value(func(val []byte) error {
			cur = decodeInt64(val)
			return nil
		}); err != nil {
			return changed, fmt.Errorf("labelstore: merge group %q: %w", g, err)
		}
		if p >= cur {
			continue
		}
		label := encodeInt64(p)
		if err = txn.Set(key, label[:]); errors.Is(err, badger.ErrTxnTooBig) {
			if err = txn.Commit(); err != nil {
				return changed, fmt.Errorf("labelstore: merge group %q: %w", g, err)
			}
			txn = s.db.NewTransaction(true)
			err = txn.Set(key, label[:])
		}
		if err != nil {
			return changed, fmt.Errorf("labelstore: merge group %q: %w", g, err)
		}
		changed++
	}
	if err := txn.Commit(); err != nil {
		return changed, fmt.Errorf("labelstore: merge group %q: %w", g, err)
	}
	return changed, nil
}

// Scan iterates the whole table in key order (groups ascending, vertex
// ids ascending within a group).
func (s *BadgerStore) Scan(fn func(g partition.GroupKey, vertex, label int64) error) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			g, vertex, err := decodeKey(item.Key())
			if err != nil {
				return err
			}
			var label int64
			if err = item.Value(func(val []byte) error {
				label = decodeInt64(val)
				return nil
			}); err != nil {
				return fmt.Errorf("labelstore: scan: %w", err)
			}
			if err = fn(g, vertex, label); err != nil {
				return err
			}
		}
		return nil
	})
}

// Len reports the number of (group, vertex) pairs written by InitGroup.
func (s *BadgerStore) Len() int { return s.size }

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
