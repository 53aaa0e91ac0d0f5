package model

import "github.com/shopspring/decimal"

// Transaction is a decoded DeSo transaction. Variant specific fields are nil
// unless the Type populates them.
type Transaction struct {
	TxID         string
	BlockHash    string
	RawHex       string
	SignatureHex string
	Fee          decimal.Decimal
	Transactor   string
	Type         TxType

	// Shared across variants.
	OnCustomNode  bool
	NodeRecipient *string
	NodeFee       *decimal.Decimal
	Amount        *decimal.Decimal
	OtherParty    *string
	NFTHash       *string
	NFTSerial     *uint64
	Creator       *string
	PostHash      *string

	IsTip               *bool
	NewUsername         *string
	NewFounderRewardPct *decimal.Decimal
	IsHidden            *bool
	IsUnfollow          *bool
	IsBuy               *bool
	IsRepost            *bool
	ModifiedPostHash    *string
	IsUnlike            *bool
	BTCAddress          *string
	BTCSpent            *decimal.Decimal
	CoinMinted          *decimal.Decimal
	MessageTime         *uint64
	OnSale              *bool
	CreatorRoyaltyPct   *uint64
	CoinRoyaltyPct      *uint64
}
