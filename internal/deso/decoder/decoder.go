// Package decoder maps raw DeSo transactions onto the wide transaction record.
package decoder

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/chain"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"
)

// ErrMalformed reports a payload whose shape does not match any observed layout.
// Such transactions need manual review; the decoder never guesses a new branch.
var ErrMalformed = errors.New("malformed transaction payload")

type builder func(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error

type variant struct {
	txType model.TxType
	build  builder
}

var variants = map[string]variant{
	"BASIC_TRANSFER":        {model.BasicTransfer, buildBasicTransfer},
	"UPDATE_PROFILE":        {model.UpdateProfile, buildUpdateProfile},
	"FOLLOW":                {model.Follow, buildFollow},
	"CREATOR_COIN":          {model.CreatorCoin, buildCreatorCoin},
	"SUBMIT_POST":           {model.SubmitPost, buildSubmitPost},
	"LIKE":                  {model.Like, buildLike},
	"BLOCK_REWARD":          {model.BlockReward, buildBlockReward},
	"BITCOIN_EXCHANGE":      {model.BitcoinExchange, buildBitcoinExchange},
	"PRIVATE_MESSAGE":       {model.PrivateMessage, buildPrivateMessage},
	"MESSAGING_GROUP":       {model.MessagingGroup, buildMessagingGroup},
	"CREATOR_COIN_TRANSFER": {model.CreatorCoinTransfer, buildCreatorCoinTransfer},
	"AUTHORIZE_DERIVED_KEY": {model.AuthorizeDerivedKey, buildAuthorizeDerivedKey},
	"NFT_BID":               {model.NFTBid, buildNFTBid},
	"ACCEPT_NFT_BID":        {model.AcceptNFTBid, buildAcceptNFTBid},
	"CREATE_NFT":            {model.CreateNFT, buildCreateNFT},
	"UPDATE_NFT":            {model.UpdateNFT, buildUpdateNFT},
	"BURN_NFT":              {model.BurnNFT, buildBurnNFT},
	"NFT_TRANSFER":          {model.NFTTransfer, buildNFTTransfer},
	"ACCEPT_NFT_TRANSFER":   {model.AcceptNFTTransfer, buildAcceptNFTTransfer},
}

// Decoder is stateless; the zero value is ready to use.
type Decoder struct{}

// New returns a Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode builds the typed record for raw. ok is false when the discriminant is
// unknown and the transaction must be skipped.
func (d *Decoder) Decode(header chain.Header, raw chain.RawTransaction) (tx model.Transaction, ok bool, err error) {
	md := raw.TransactionMetadata
	txnType := raw.TransactionType
	if md != nil {
		txnType = md.TxnType
	}

	v, known := variants[txnType]
	if !known {
		return model.Transaction{}, false, nil
	}
	if md == nil {
		return model.Transaction{}, false, fmt.Errorf("%s transaction %s: missing metadata: %w", txnType, raw.TransactionIDBase58Check, ErrMalformed)
	}

	if err := validateTxID(raw.TransactionIDBase58Check); err != nil {
		return model.Transaction{}, false, err
	}

	tx = model.Transaction{
		TxID:         raw.TransactionIDBase58Check,
		BlockHash:    header.BlockHashHex,
		RawHex:       raw.RawTransactionHex,
		SignatureHex: raw.SignatureHex,
		Fee:          fee(md),
		Transactor:   md.TransactorPublicKeyBase58Check,
		Type:         v.txType,
	}
	if err := v.build(&tx, raw, md); err != nil {
		return model.Transaction{}, false, fmt.Errorf("decode %s transaction %s: %w", md.TxnType, raw.TransactionIDBase58Check, err)
	}

	return tx, true, nil
}

func validateTxID(id string) error {
	if id == "" {
		return fmt.Errorf("empty transaction id: %w", ErrMalformed)
	}
	if _, err := base58.Decode(id); err != nil {
		return fmt.Errorf("transaction id %q is not base58: %w", id, ErrMalformed)
	}
	return nil
}

func fee(md *chain.TransactionMetadata) decimal.Decimal {
	if md.BasicTransferTxindexMetadata == nil {
		return nanos(0)
	}
	return nanos(md.BasicTransferTxindexMetadata.FeeNanos)
}
