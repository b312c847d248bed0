package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBackend(t *testing.T, db DB) {
	t.Helper()

	_, err := db.Get([]byte("missing"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, db.Set([]byte("k1"), []byte("v1")))
	v, err := db.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	require.NoError(t, db.Delete([]byte("k1")))
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Set([]byte(fmt.Sprintf("scan-%03d", i)), []byte{byte(i)}))
	}
	require.NoError(t, db.Set([]byte("other"), []byte("x")))
	values := db.PrefixScan([]byte("scan-"))
	require.Len(t, values, 5)
	// scans come back in key order
	for i, v := range values {
		assert.Equal(t, []byte{byte(i)}, v)
	}

	batch := db.NewBatch(true)
	batch.Set([]byte("b1"), []byte("1"))
	batch.Set([]byte("b2"), []byte("2"))
	batch.Delete([]byte("other"))
	require.NoError(t, batch.Write())
	v, err = db.Get([]byte("b2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
	_, err = db.Get([]byte("other"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestGoMemDB(t *testing.T) {
	db, err := NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	defer db.Close()
	testBackend(t, db)
}

func TestGoLevelDB(t *testing.T) {
	db, err := NewGoLevelDB("test", t.TempDir(), 16)
	require.NoError(t, err)
	defer db.Close()
	testBackend(t, db)
}

func TestGoBadgerDB(t *testing.T) {
	db, err := NewGoBadgerDB("test", t.TempDir(), 16)
	require.NoError(t, err)
	defer db.Close()
	testBackend(t, db)
}

func TestNewDBByName(t *testing.T) {
	db := NewDB("test", MemDBBackendStr, "", 0)
	defer db.Close()
	require.NoError(t, db.Set([]byte("k"), []byte("v")))

	assert.Panics(t, func() { NewDB("test", "no-such-backend", "", 0) })
}

func TestTxKV(t *testing.T) {
	db, err := NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	require.NoError(t, db.Set([]byte("base"), []byte("old")))

	tx := NewTxKV(db)
	require.NoError(t, tx.Set([]byte("base"), []byte("new")))
	require.NoError(t, tx.Set([]byte("staged"), []byte("s")))

	// the overlay sees its own writes, the backend does not yet
	v, err := tx.Get([]byte("base"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
	v, err = db.Get([]byte("base"))
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), v)
	_, err = db.Get([]byte("staged"))
	assert.Equal(t, ErrNotFoundInDb, err)

	// reads fall through for keys the overlay never touched
	require.NoError(t, db.Set([]byte("below"), []byte("b")))
	v, err = tx.Get([]byte("below"))
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), v)

	require.NoError(t, tx.Commit(true))
	v, err = db.Get([]byte("base"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
	v, err = db.Get([]byte("staged"))
	require.NoError(t, err)
	assert.Equal(t, []byte("s"), v)
}

func TestTxKVRollback(t *testing.T) {
	db, err := NewGoMemDB("test", "", 0)
	require.NoError(t, err)

	tx := NewTxKV(db)
	require.NoError(t, tx.Set([]byte("k"), []byte("v")))
	tx.Rollback()
	_, err = tx.Get([]byte("k"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, tx.Commit(true))
	_, err = db.Get([]byte("k"))
	assert.Equal(t, ErrNotFoundInDb, err)
}
