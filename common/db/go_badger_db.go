package db

import (
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
	perrors "github.com/pkg/errors"
)

var blog = log.New("module", "db.badger")

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

type GoBadgerDB struct {
	db *badger.DB
}

func NewGoBadgerDB(name string, dir string, cache int32) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, perrors.Wrapf(err, "open badger %s", dbPath)
	}
	return &GoBadgerDB{db: db}, nil
}

func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (db *GoBadgerDB) Delete(key []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (db *GoBadgerDB) PrefixScan(prefix []byte) (values [][]byte) {
	err := db.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		blog.Error("PrefixScan", "prefix", string(prefix), "err", err)
		return nil
	}
	return values
}

func (db *GoBadgerDB) Close() {
	db.db.Close()
}

func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db, txn: db.db.NewTransaction(true)}
}

type goBadgerDBBatch struct {
	db  *GoBadgerDB
	txn *badger.Txn
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	if err := mBatch.txn.Set(key, value); err != nil {
		blog.Error("batch set", "err", err)
	}
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	if err := mBatch.txn.Delete(key); err != nil {
		blog.Error("batch delete", "err", err)
	}
}

func (mBatch *goBadgerDBBatch) Write() error {
	defer mBatch.txn.Discard()
	return mBatch.txn.Commit()
}
