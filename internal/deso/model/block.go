// Package model defines domain models for DeSo chain indexing.
package model

import "errors"

// ErrNotFound is returned by stores when a looked up row does not exist.
var ErrNotFound = errors.New("not found")

// Block represents a DeSo block header persisted to the store.
type Block struct {
	Hash          string
	Version       uint32
	TxNumber      uint64
	PrevBlockHash *string
	Timestamp     uint64
	Height        uint64
	MerkleRoot    string
	Nonce         string
	ExtraNonce    string
}

// PrevHash returns the previous block hash or an empty string at genesis.
func (b Block) PrevHash() string {
	if b.PrevBlockHash == nil {
		return ""
	}
	return *b.PrevBlockHash
}

// BlockCompleteness compares the declared transaction count of a stored block
// with the number of transaction rows actually stored for it.
type BlockCompleteness struct {
	Height   uint64
	Hash     string
	Declared uint64
	Stored   uint64
}

// Complete reports whether every declared transaction is stored.
func (c BlockCompleteness) Complete() bool {
	return c.Declared == c.Stored
}
