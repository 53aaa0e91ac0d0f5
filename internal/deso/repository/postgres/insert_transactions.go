package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
	"github.com/goodnatureofminers/blockinsight7000-deso/pkg/safe"
)

const insertTransactionQuery = `
INSERT INTO "transaction" (
	tx_id,
	block_hash,
	raw_hex,
	signature_hex,
	fee,
	transactor,
	txn_type,
	on_custom_node,
	node_recipient,
	node_fee,
	amount,
	other_party,
	nft_hash,
	nft_serial,
	creator,
	post_hash,
	is_tip,
	new_username,
	new_founder_reward_pct,
	is_hidden,
	is_unfollow,
	is_buy,
	is_repost,
	modified_post_hash,
	is_unlike,
	btc_address,
	btc_spent,
	coin_minted,
	message_time,
	on_sale,
	creator_royalty_pct,
	coin_royalty_pct
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32
)
ON CONFLICT (tx_id) DO NOTHING`

// InsertTransactions stores transactions missing from an already stored block
// in one database transaction. The block row is not touched.
func (r *Repository) InsertTransactions(ctx context.Context, blockHash string, txs []model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	if err = queueTransactions(batch, blockHash, txs); err != nil {
		return err
	}
	if err = r.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("insert transactions of block %s: %w", blockHash, err)
	}
	return nil
}

func queueTransactions(batch *pgx.Batch, blockHash string, txs []model.Transaction) error {
	for _, tx := range txs {
		if tx.BlockHash != blockHash {
			return fmt.Errorf("transaction %s belongs to block %s, not %s", tx.TxID, tx.BlockHash, blockHash)
		}
		args, err := transactionArgs(tx)
		if err != nil {
			return err
		}
		batch.Queue(insertTransactionQuery, args...)
	}
	return nil
}

func transactionArgs(tx model.Transaction) ([]any, error) {
	ints := make([]*int64, 0, 4)
	for _, v := range []*uint64{tx.NFTSerial, tx.MessageTime, tx.CreatorRoyaltyPct, tx.CoinRoyaltyPct} {
		converted, err := safe.Int64Ptr(v)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.TxID, err)
		}
		ints = append(ints, converted)
	}
	nftSerial, messageTime, creatorRoyalty, coinRoyalty := ints[0], ints[1], ints[2], ints[3]

	return []any{
		tx.TxID,
		tx.BlockHash,
		tx.RawHex,
		tx.SignatureHex,
		tx.Fee.String(),
		tx.Transactor,
		string(tx.Type),
		tx.OnCustomNode,
		tx.NodeRecipient,
		numeric(tx.NodeFee),
		numeric(tx.Amount),
		tx.OtherParty,
		tx.NFTHash,
		nftSerial,
		tx.Creator,
		tx.PostHash,
		tx.IsTip,
		tx.NewUsername,
		numeric(tx.NewFounderRewardPct),
		tx.IsHidden,
		tx.IsUnfollow,
		tx.IsBuy,
		tx.IsRepost,
		tx.ModifiedPostHash,
		tx.IsUnlike,
		tx.BTCAddress,
		numeric(tx.BTCSpent),
		numeric(tx.CoinMinted),
		messageTime,
		tx.OnSale,
		creatorRoyalty,
		coinRoyalty,
	}, nil
}

// numeric renders a decimal as NUMERIC text so the exact value reaches the server.
func numeric(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
