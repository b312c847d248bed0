// Package db provides the pluggable KV store backing the match and
// account state, with memdb, goleveldb and badger backends.
package db

import (
	"errors"
	"fmt"
)

// ErrNotFoundInDb is returned by Get for a missing key.
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV is the narrow read/write view handed to state operations.
type KV interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

// DB is a full backend.
type DB interface {
	KV
	Delete(key []byte) error
	PrefixScan(prefix []byte) [][]byte
	NewBatch(sync bool) Batch
	Close()
}

// Batch accumulates writes that are applied atomically by Write.
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

const (
	MemDBBackendStr      = "memdb"
	GoLevelDBBackendStr  = "leveldb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int32) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB opens a backend by name. An unknown or unopenable backend is
// a deployment mistake, so it panics during startup.
func NewDB(name string, backend string, dir string, cache int32) DB {
	creator, ok := backends[backend]
	if !ok {
		panic(fmt.Sprintf("unknown db backend %q", backend))
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		panic(fmt.Sprintf("initializing db backend %q: %v", backend, err))
	}
	return db
}
