// Package logkv stores an append-only record log and the checkpoint of
// its Merkle root in a kv.DB.
//
// Records are stored under 'R' followed by the big-endian record index,
// so that iterating the 'R' prefix yields them in append order. The
// record count is stored under 'N' and the checkpoint under 'C'.
//
// The functions of this package do not serialize concurrent appends;
// callers writing from several goroutines must hold a lock.
package logkv

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coniks-sys/coniks-merklelog/crypto"
	"github.com/coniks-sys/coniks-merklelog/storage/kv"
	"github.com/coniks-sys/coniks-merklelog/utils"
)

const (
	recordIdentifier     = 'R'
	countIdentifier      = 'N'
	checkpointIdentifier = 'C'
)

var (
	// ErrNoCheckpoint indicates that no checkpoint has been stored yet.
	ErrNoCheckpoint = errors.New("[logkv] No checkpoint stored")
	// ErrCorruptLog indicates a stored key or value of unexpected shape.
	ErrCorruptLog = errors.New("[logkv] Corrupt record log")
)

// Checkpoint is a trusted root of the record log, taken at Size records
// with the hasher identified by Hasher. Root is hex encoded.
type Checkpoint struct {
	Hasher string `json:"hasher"`
	Size   uint64 `json:"size"`
	Root   string `json:"root"`
}

// Digest returns the decoded root, which must be size bytes long.
func (cp *Checkpoint) Digest(size int) ([]byte, error) {
	return crypto.DecodeDigest(cp.Root, size)
}

func recordKey(index uint64) []byte {
	return append([]byte{recordIdentifier}, utils.ULongToBytes(index)...)
}

// RecordCount returns the number of appended records.
func RecordCount(db kv.DB) (uint64, error) {
	buf, err := db.Get([]byte{countIdentifier})
	switch {
	case err == db.ErrNotFound():
		return 0, nil
	case err != nil:
		return 0, err
	}
	n, ok := utils.BytesToULong(buf)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrCorruptLog, kv.ErrorBadBufferLength)
	}
	return n, nil
}

// AppendRecords appends records to the log in a single batch and returns
// the index of the first appended record.
func AppendRecords(db kv.DB, records [][]byte) (uint64, error) {
	first, err := RecordCount(db)
	if err != nil {
		return 0, err
	}
	wb := db.NewBatch()
	for i, r := range records {
		wb.Put(recordKey(first+uint64(i)), r)
	}
	wb.Put([]byte{countIdentifier}, utils.ULongToBytes(first+uint64(len(records))))
	if err := db.Write(wb); err != nil {
		return 0, err
	}
	return first, nil
}

// LoadRecords returns all stored records in index order.
// Records removed or altered behind the log's back are returned as found;
// detecting that is the job of the Merkle root.
func LoadRecords(db kv.DB) ([][]byte, error) {
	iter := db.NewIterator(kv.BytesPrefix([]byte{recordIdentifier}))
	defer iter.Release()

	var records [][]byte
	for iter.Next() {
		if len(iter.Key()) != 1+8 {
			return nil, fmt.Errorf("%w: record key %x", ErrCorruptLog, iter.Key())
		}
		records = append(records, append([]byte{}, iter.Value()...))
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return records, nil
}

// StoreCheckpoint replaces the stored checkpoint with cp.
func StoreCheckpoint(db kv.DB, cp *Checkpoint) error {
	buf, err := json.Marshal(cp)
	if err != nil {
		return err
	}
	return db.Put([]byte{checkpointIdentifier}, buf)
}

// LoadCheckpoint returns the stored checkpoint, or ErrNoCheckpoint.
func LoadCheckpoint(db kv.DB) (*Checkpoint, error) {
	buf, err := db.Get([]byte{checkpointIdentifier})
	switch {
	case err == db.ErrNotFound():
		return nil, ErrNoCheckpoint
	case err != nil:
		return nil, err
	}
	cp := new(Checkpoint)
	if err := json.Unmarshal(buf, cp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLog, err)
	}
	return cp, nil
}
