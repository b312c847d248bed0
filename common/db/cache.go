package db

// TxKV is a write overlay over a backend. Operations stage all their
// mutations here and commit in one batch, so a failed precondition
// deep inside an operation leaves the backend untouched.
type TxKV struct {
	db   DB
	vals map[string][]byte
}

func NewTxKV(db DB) *TxKV {
	return &TxKV{db: db, vals: make(map[string][]byte)}
}

// Get reads through the overlay into the backend.
func (tx *TxKV) Get(key []byte) ([]byte, error) {
	if v, ok := tx.vals[string(key)]; ok {
		return copyBytes(v), nil
	}
	return tx.db.Get(key)
}

func (tx *TxKV) Set(key []byte, value []byte) error {
	tx.vals[string(key)] = copyBytes(value)
	return nil
}

// Commit writes every staged mutation atomically.
func (tx *TxKV) Commit(sync bool) error {
	batch := tx.db.NewBatch(sync)
	for k, v := range tx.vals {
		batch.Set([]byte(k), v)
	}
	if err := batch.Write(); err != nil {
		return err
	}
	tx.vals = make(map[string][]byte)
	return nil
}

// Rollback drops every staged mutation.
func (tx *TxKV) Rollback() {
	tx.vals = make(map[string][]byte)
}
