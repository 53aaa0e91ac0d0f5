package model

// InsertBlock groups a block with the transactions decoded from it for a single commit.
type InsertBlock struct {
	Block Block
	Txs   []Transaction
}
