package model

// TxType is the discriminant of a decoded transaction.
type TxType string

const (
	BasicTransfer       TxType = "BasicTransfer"
	UpdateProfile       TxType = "UpdateProfile"
	Follow              TxType = "Follow"
	CreatorCoin         TxType = "CreatorCoin"
	SubmitPost          TxType = "SubmitPost"
	Like                TxType = "Like"
	BlockReward         TxType = "BlockReward"
	BitcoinExchange     TxType = "BitcoinExchange"
	PrivateMessage      TxType = "PrivateMessage"
	MessagingGroup      TxType = "MessagingGroup"
	CreatorCoinTransfer TxType = "CreatorCoinTransfer"
	AuthorizeDerivedKey TxType = "AuthorizeDerivedKey"
	NFTBid              TxType = "NFTBid"
	AcceptNFTBid        TxType = "AcceptNFTBid"
	CreateNFT           TxType = "CreateNFT"
	UpdateNFT           TxType = "UpdateNFT"
	BurnNFT             TxType = "BurnNFT"
	NFTTransfer         TxType = "NFTTransfer"
	AcceptNFTTransfer   TxType = "AcceptNFTTransfer"
)

// TxTypes lists every supported discriminant.
var TxTypes = []TxType{
	BasicTransfer,
	UpdateProfile,
	Follow,
	CreatorCoin,
	SubmitPost,
	Like,
	BlockReward,
	BitcoinExchange,
	PrivateMessage,
	MessagingGroup,
	CreatorCoinTransfer,
	AuthorizeDerivedKey,
	NFTBid,
	AcceptNFTBid,
	CreateNFT,
	UpdateNFT,
	BurnNFT,
	NFTTransfer,
	AcceptNFTTransfer,
}
