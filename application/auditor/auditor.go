package auditor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/coniks-sys/coniks-merklelog/application"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
	"github.com/coniks-sys/coniks-merklelog/merkletree"
	"github.com/coniks-sys/coniks-merklelog/storage/kv"
	"github.com/coniks-sys/coniks-merklelog/storage/kv/logkv"
)

var (
	// ErrEmptyLog indicates an operation that needs at least one record.
	ErrEmptyLog = errors.New("[auditor] Record log is empty")
	// ErrHasherMismatch indicates a checkpoint taken with another hasher.
	ErrHasherMismatch = errors.New("[auditor] Checkpoint hasher mismatch")
)

// An Auditor maintains the record log stored in db.
// All methods are safe for concurrent use.
type Auditor struct {
	sync.Mutex
	db     kv.DB
	hasher hasher.TreeHasher
	logger *application.Logger
}

// A Report is the outcome of an audit.
type Report struct {
	// Checkpoint is the trusted root the log was compared against.
	Checkpoint *logkv.Checkpoint
	// CurrentRoot is the hex root of the stored records,
	// empty if no record is left.
	CurrentRoot string
	// Size is the number of stored records.
	Size uint64
	// Tampered is set if CurrentRoot differs from the checkpoint.
	Tampered bool
}

// New creates an Auditor over db using the hasher and logger of conf.
// The Auditor does not take ownership of db.
func New(conf *Config, db kv.DB) (*Auditor, error) {
	h, err := conf.TreeHasher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", merkletree.ErrDigestFailure, err)
	}
	logger := application.NewNopLogger()
	if conf.Logger != nil {
		if logger, err = application.NewLogger(conf.Logger); err != nil {
			return nil, err
		}
	}
	if !h.Secure() {
		logger.Warn("Insecure hasher enabled, roots are not tamper-evident",
			"hasher", h.ID())
	}
	return &Auditor{
		db:     db,
		hasher: h,
		logger: logger,
	}, nil
}

// Hasher returns the hasher used to build trees.
func (a *Auditor) Hasher() hasher.TreeHasher {
	return a.hasher
}

// Append appends records to the log.
func (a *Auditor) Append(records [][]byte) error {
	if len(records) == 0 {
		return merkletree.ErrInvalidInput
	}
	a.Lock()
	defer a.Unlock()
	first, err := logkv.AppendRecords(a.db, records)
	if err != nil {
		a.logger.Error("Cannot append records", "error", err)
		return err
	}
	a.logger.Info("Records appended",
		"first", first,
		"count", len(records))
	return nil
}

// Tree rebuilds the Merkle tree over all stored records.
// It returns ErrEmptyLog if there are none.
func (a *Auditor) Tree() (*merkletree.MerkleTree, error) {
	records, err := logkv.LoadRecords(a.db)
	if err != nil {
		return nil, err
	}
	return a.build(records)
}

func (a *Auditor) build(records [][]byte) (*merkletree.MerkleTree, error) {
	m, err := merkletree.Build(a.hasher, records)
	switch {
	case errors.Is(err, merkletree.ErrInvalidInput):
		return nil, fmt.Errorf("%w: %v", ErrEmptyLog, err)
	case err != nil:
		return nil, err
	}
	a.logger.Debug("Tree built",
		"size", m.Len(),
		"height", m.Height(),
		"root", m.RootHash())
	return m, nil
}

// Prove returns the inclusion proof of the first stored record equal to
// record, along with the root it verifies against.
func (a *Auditor) Prove(record []byte) (merkletree.Proof, []byte, error) {
	m, err := a.Tree()
	if err != nil {
		return nil, nil, err
	}
	proof, err := m.Proof(record)
	if err != nil {
		a.logger.Debug("Proof requested for an unknown record")
		return nil, nil, err
	}
	return proof, m.Root(), nil
}

// ProveAt returns the inclusion proof of the record at index,
// along with the root it verifies against.
func (a *Auditor) ProveAt(index int) (merkletree.Proof, []byte, error) {
	m, err := a.Tree()
	if err != nil {
		return nil, nil, err
	}
	proof, err := m.ProofAt(index)
	if err != nil {
		return nil, nil, err
	}
	return proof, m.Root(), nil
}

// Checkpoint stores the current root as the trusted root for later audits.
func (a *Auditor) Checkpoint() (*logkv.Checkpoint, error) {
	a.Lock()
	defer a.Unlock()
	m, err := a.Tree()
	if err != nil {
		return nil, err
	}
	cp := &logkv.Checkpoint{
		Hasher: a.hasher.ID(),
		Size:   uint64(m.Len()),
		Root:   m.RootHash(),
	}
	if err := logkv.StoreCheckpoint(a.db, cp); err != nil {
		return nil, err
	}
	a.logger.Info("Checkpoint stored",
		"size", cp.Size,
		"root", cp.Root)
	return cp, nil
}

// Audit rebuilds the tree over the stored records and compares its root
// with the stored checkpoint. It returns logkv.ErrNoCheckpoint if no
// checkpoint was taken, and ErrHasherMismatch if the checkpoint was taken
// with a different hasher.
func (a *Auditor) Audit() (*Report, error) {
	cp, err := logkv.LoadCheckpoint(a.db)
	if err != nil {
		return nil, err
	}
	if cp.Hasher != a.hasher.ID() {
		return nil, fmt.Errorf("%w: checkpoint uses %s, configured %s",
			ErrHasherMismatch, cp.Hasher, a.hasher.ID())
	}
	trusted, err := cp.Digest(a.hasher.Size())
	if err != nil {
		return nil, err
	}

	records, err := logkv.LoadRecords(a.db)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Checkpoint: cp,
		Size:       uint64(len(records)),
		Tampered:   true,
	}
	if len(records) > 0 {
		m, err := a.build(records)
		if err != nil {
			return nil, err
		}
		report.CurrentRoot = m.RootHash()
		report.Tampered = !merkletree.CompareRoots(trusted, m.Root())
	}

	if report.Tampered {
		a.logger.Warn("Record log does not match the checkpoint",
			"checkpoint", cp.Root,
			"checkpointSize", cp.Size,
			"current", report.CurrentRoot,
			"size", report.Size)
	} else {
		a.logger.Info("Record log matches the checkpoint",
			"root", cp.Root,
			"size", report.Size)
	}
	return report, nil
}
