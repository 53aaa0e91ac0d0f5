// Package chain holds the wire-format payloads served by a DeSo node API.
package chain

// Header is the block header object returned by the node.
type Header struct {
	BlockHashHex             string `json:"BlockHashHex"`
	Version                  uint32 `json:"Version"`
	PrevBlockHashHex         string `json:"PrevBlockHashHex"`
	TransactionMerkleRootHex string `json:"TransactionMerkleRootHex"`
	TstampSecs               uint64 `json:"TstampSecs"`
	Height                   uint64 `json:"Height"`
	Nonce                    uint64 `json:"Nonce"`
	ExtraNonce               uint64 `json:"ExtraNonce"`
}

// TipResponse is the body of the chain tip query.
type TipResponse struct {
	Header *Header `json:"Header"`
}

// BlockRequest is the body of the header and full block queries.
type BlockRequest struct {
	HashHex   string `json:"HashHex"`
	FullBlock bool   `json:"FullBlock,omitempty"`
}

// FullBlock is a block header together with its raw transactions.
type FullBlock struct {
	Header       *Header          `json:"Header"`
	Transactions []RawTransaction `json:"Transactions"`
}
