package chain

// Output is a single payout of a transaction.
type Output struct {
	PublicKeyBase58Check string `json:"PublicKeyBase58Check"`
	AmountNanos          uint64 `json:"AmountNanos"`
}

// AffectedPublicKey is an address touched by a transaction, tagged with the role it played.
type AffectedPublicKey struct {
	PublicKeyBase58Check string `json:"PublicKeyBase58Check"`
	Metadata             string `json:"Metadata"`
}

// BasicTransferOutputTag marks affected keys that received a plain payout.
const BasicTransferOutputTag = "BasicTransferOutput"

// RawTransaction is a transaction as served inside a full block.
type RawTransaction struct {
	TransactionIDBase58Check string               `json:"TransactionIDBase58Check"`
	RawTransactionHex        string               `json:"RawTransactionHex"`
	Outputs                  []Output             `json:"Outputs"`
	SignatureHex             string               `json:"SignatureHex"`
	TransactionType          string               `json:"TransactionType"`
	BlockHashHex             string               `json:"BlockHashHex"`
	TransactionMetadata      *TransactionMetadata `json:"TransactionMetadata"`
}

// TransactionMetadata carries the discriminant and the variant specific index metadata.
type TransactionMetadata struct {
	TxnType                        string              `json:"TxnType"`
	TransactorPublicKeyBase58Check string              `json:"TransactorPublicKeyBase58Check"`
	AffectedPublicKeys             []AffectedPublicKey `json:"AffectedPublicKeys"`

	BasicTransferTxindexMetadata       *BasicTransferMetadata       `json:"BasicTransferTxindexMetadata"`
	UpdateProfileTxindexMetadata       *UpdateProfileMetadata       `json:"UpdateProfileTxindexMetadata"`
	FollowTxindexMetadata              *FollowMetadata              `json:"FollowTxindexMetadata"`
	CreatorCoinTxindexMetadata         *CreatorCoinMetadata         `json:"CreatorCoinTxindexMetadata"`
	SubmitPostTxindexMetadata          *SubmitPostMetadata          `json:"SubmitPostTxindexMetadata"`
	LikeTxindexMetadata                *LikeMetadata                `json:"LikeTxindexMetadata"`
	BitcoinExchangeTxindexMetadata     *BitcoinExchangeMetadata     `json:"BitcoinExchangeTxindexMetadata"`
	PrivateMessageTxindexMetadata      *PrivateMessageMetadata      `json:"PrivateMessageTxindexMetadata"`
	CreatorCoinTransferTxindexMetadata *CreatorCoinTransferMetadata `json:"CreatorCoinTransferTxindexMetadata"`
	NFTBidTxindexMetadata              *NFTBidMetadata              `json:"NFTBidTxindexMetadata"`
	AcceptNFTBidTxindexMetadata        *AcceptNFTBidMetadata        `json:"AcceptNFTBidTxindexMetadata"`
	CreateNFTTxindexMetadata           *NFTMetadata                 `json:"CreateNFTTxindexMetadata"`
	UpdateNFTTxindexMetadata           *UpdateNFTMetadata           `json:"UpdateNFTTxindexMetadata"`
	BurnNFTTxindexMetadata             *NFTMetadata                 `json:"BurnNFTTxindexMetadata"`
	NFTTransferTxindexMetadata         *NFTMetadata                 `json:"NFTTransferTxindexMetadata"`
	AcceptNFTTransferTxindexMetadata   *NFTMetadata                 `json:"AcceptNFTTransferTxindexMetadata"`
}

type BasicTransferMetadata struct {
	FeeNanos     uint64 `json:"FeeNanos"`
	DiamondLevel int64  `json:"DiamondLevel"`
	PostHashHex  string `json:"PostHashHex"`
}

type UpdateProfileMetadata struct {
	NewUsername           string `json:"NewUsername"`
	NewCreatorBasisPoints uint64 `json:"NewCreatorBasisPoints"`
	IsHidden              bool   `json:"IsHidden"`
}

type FollowMetadata struct {
	IsUnfollow bool `json:"IsUnfollow"`
}

type CreatorCoinMetadata struct {
	OperationType          string `json:"OperationType"`
	DeSoToSellNanos        uint64 `json:"DeSoToSellNanos"`
	CreatorCoinToSellNanos uint64 `json:"CreatorCoinToSellNanos"`
}

type SubmitPostMetadata struct {
	PostHashBeingModifiedHex string `json:"PostHashBeingModifiedHex"`
	ParentPostHashHex        string `json:"ParentPostHashHex"`
}

type LikeMetadata struct {
	IsUnlike    bool   `json:"IsUnlike"`
	PostHashHex string `json:"PostHashHex"`
}

type BitcoinExchangeMetadata struct {
	BitcoinSpendAddress string `json:"BitcoinSpendAddress"`
	SatoshisBurned      int64  `json:"SatoshisBurned"`
	NanosCreated        uint64 `json:"NanosCreated"`
}

type PrivateMessageMetadata struct {
	TimestampNanos uint64 `json:"TimestampNanos"`
}

type CreatorCoinTransferMetadata struct {
	CreatorUsername            string `json:"CreatorUsername"`
	CreatorCoinToTransferNanos uint64 `json:"CreatorCoinToTransferNanos"`
}

type NFTBidMetadata struct {
	NFTPostHashHex string `json:"NFTPostHashHex"`
	SerialNumber   uint64 `json:"SerialNumber"`
	BidAmountNanos uint64 `json:"BidAmountNanos"`
}

type NFTRoyaltiesMetadata struct {
	CreatorPublicKeyBase58Check string `json:"CreatorPublicKeyBase58Check"`
	CreatorCoinRoyaltyNanos     uint64 `json:"CreatorCoinRoyaltyNanos"`
	CreatorRoyaltyNanos         uint64 `json:"CreatorRoyaltyNanos"`
}

type AcceptNFTBidMetadata struct {
	NFTPostHashHex       string                `json:"NFTPostHashHex"`
	SerialNumber         uint64                `json:"SerialNumber"`
	BidAmountNanos       uint64                `json:"BidAmountNanos"`
	NFTRoyaltiesMetadata *NFTRoyaltiesMetadata `json:"NFTRoyaltiesMetadata"`
}

type UpdateNFTMetadata struct {
	NFTPostHashHex string `json:"NFTPostHashHex"`
	IsForSale      bool   `json:"IsForSale"`
}

// NFTMetadata is shared by the NFT variants that only carry a post hash and serial.
type NFTMetadata struct {
	NFTPostHashHex string `json:"NFTPostHashHex"`
	SerialNumber   uint64 `json:"SerialNumber"`
}
