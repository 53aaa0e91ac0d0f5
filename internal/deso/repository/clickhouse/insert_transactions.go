package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
)

const insertTransactionsQuery = `
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
) VALUES`

// InsertTransactions stores transactions missing from an already stored block.
func (r *Repository) InsertTransactions(ctx context.Context, blockHash string, txs []model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	return r.insertTransactions(ctx, blockHash, txs)
}

func (r *Repository) insertTransactions(ctx context.Context, blockHash string, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if tx.BlockHash != blockHash {
			return fmt.Errorf("transaction %s belongs to block %s, not %s", tx.TxID, tx.BlockHash, blockHash)
		}
		if err = batch.Append(
			tx.TxID,
			tx.BlockHash,
			tx.RawHex,
			tx.SignatureHex,
			tx.Fee,
			tx.Transactor,
			string(tx.Type),
			tx.OnCustomNode,
			tx.NodeRecipient,
			tx.NodeFee,
			tx.Amount,
			tx.OtherParty,
			tx.NFTHash,
			tx.NFTSerial,
			tx.Creator,
			tx.PostHash,
			tx.IsTip,
			tx.NewUsername,
			tx.NewFounderRewardPct,
			tx.IsHidden,
			tx.IsUnfollow,
			tx.IsBuy,
			tx.IsRepost,
			tx.ModifiedPostHash,
			tx.IsUnlike,
			tx.BTCAddress,
			tx.BTCSpent,
			tx.CoinMinted,
			tx.MessageTime,
			tx.OnSale,
			tx.CreatorRoyaltyPct,
			tx.CoinRoyaltyPct,
		); err != nil {
			return fmt.Errorf("append transaction %s: %w", tx.TxID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
