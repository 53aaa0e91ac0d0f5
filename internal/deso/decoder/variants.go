package decoder

import (
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/chain"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
)

func buildBasicTransfer(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByOutputs(tx, raw, md, 3)
	if err != nil {
		return err
	}
	idx := 0
	if relayed {
		idx = 1
	}
	other, err := affectedKey(md, idx)
	if err != nil {
		return err
	}
	amount, err := outputAmount(raw, idx)
	if err != nil {
		return err
	}
	tx.OtherParty = &other
	tx.Amount = &amount

	isTip := false
	if bt := md.BasicTransferTxindexMetadata; bt != nil && bt.DiamondLevel != 0 {
		isTip = true
		tx.PostHash = ptr(bt.PostHashHex)
	}
	tx.IsTip = &isTip
	return nil
}

func buildUpdateProfile(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	if _, err := relayByOutputs(tx, raw, md, 2); err != nil {
		return err
	}
	profile := md.UpdateProfileTxindexMetadata
	if profile == nil {
		return missing("UpdateProfileTxindexMetadata")
	}
	tx.NewUsername = ptr(profile.NewUsername)
	tx.NewFounderRewardPct = ptr(basisPoints(profile.NewCreatorBasisPoints))
	tx.IsHidden = ptr(profile.IsHidden)
	return nil
}

func buildFollow(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByOutputs(tx, raw, md, 3)
	if err != nil {
		return err
	}
	if err := setOtherParty(tx, md, relayed, 2, 1); err != nil {
		return err
	}
	follow := md.FollowTxindexMetadata
	if follow == nil {
		return missing("FollowTxindexMetadata")
	}
	tx.IsUnfollow = ptr(follow.IsUnfollow)
	return nil
}

func buildCreatorCoin(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByOutputs(tx, raw, md, 3)
	if err != nil {
		return err
	}
	if err := setOtherParty(tx, md, relayed, 2, 1); err != nil {
		return err
	}
	cc := md.CreatorCoinTxindexMetadata
	if cc == nil {
		return missing("CreatorCoinTxindexMetadata")
	}
	isBuy := cc.OperationType == "buy"
	tx.IsBuy = &isBuy
	if isBuy {
		tx.Amount = ptr(nanos(cc.DeSoToSellNanos))
	} else {
		tx.Amount = ptr(nanos(cc.CreatorCoinToSellNanos))
	}
	return nil
}

func buildSubmitPost(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByOutputs(tx, raw, md, 3)
	if err != nil {
		return err
	}
	isRepost := true
	switch {
	case relayed:
		if err := setOtherParty(tx, md, true, 2, 1); err != nil {
			return err
		}
	case len(raw.Outputs) > 1:
		if err := setOtherParty(tx, md, false, 2, 1); err != nil {
			return err
		}
	default:
		isRepost = false
	}
	tx.IsRepost = &isRepost

	post := md.SubmitPostTxindexMetadata
	if post == nil {
		return missing("SubmitPostTxindexMetadata")
	}
	tx.ModifiedPostHash = ptr(post.PostHashBeingModifiedHex)
	tx.PostHash = ptr(post.ParentPostHashHex)
	return nil
}

func buildLike(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByOutputs(tx, raw, md, 3)
	if err != nil {
		return err
	}
	if err := setOtherParty(tx, md, relayed, 2, 1); err != nil {
		return err
	}
	like := md.LikeTxindexMetadata
	if like == nil {
		return missing("LikeTxindexMetadata")
	}
	tx.IsUnlike = ptr(like.IsUnlike)
	tx.PostHash = ptr(like.PostHashHex)
	return nil
}

func buildBlockReward(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByOutputs(tx, raw, md, 2)
	if err != nil {
		return err
	}
	idx := 0
	if relayed {
		idx = 1
	}
	other, err := affectedKey(md, idx)
	if err != nil {
		return err
	}
	amount, err := outputAmount(raw, idx)
	if err != nil {
		return err
	}
	tx.OtherParty = &other
	tx.Amount = &amount
	return nil
}

func buildBitcoinExchange(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	if _, err := relayByOutputs(tx, raw, md, 2); err != nil {
		return err
	}
	exchange := md.BitcoinExchangeTxindexMetadata
	if exchange == nil {
		return missing("BitcoinExchangeTxindexMetadata")
	}
	tx.BTCAddress = ptr(exchange.BitcoinSpendAddress)
	tx.BTCSpent = ptr(satoshisToBTC(exchange.SatoshisBurned))
	tx.CoinMinted = ptr(nanos(exchange.NanosCreated))
	return nil
}

func buildPrivateMessage(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByOutputs(tx, raw, md, 3)
	if err != nil {
		return err
	}
	if err := setOtherParty(tx, md, relayed, 2, 1); err != nil {
		return err
	}
	msg := md.PrivateMessageTxindexMetadata
	if msg == nil {
		return missing("PrivateMessageTxindexMetadata")
	}
	tx.MessageTime = ptr(msg.TimestampNanos / 1_000_000_000)
	return nil
}

func buildMessagingGroup(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	_, err := relayByOutputs(tx, raw, md, 2)
	return err
}

func buildCreatorCoinTransfer(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByOutputs(tx, raw, md, 3)
	if err != nil {
		return err
	}
	if err := setOtherParty(tx, md, relayed, 2, 1); err != nil {
		return err
	}
	transfer := md.CreatorCoinTransferTxindexMetadata
	if transfer == nil {
		return missing("CreatorCoinTransferTxindexMetadata")
	}
	tx.Creator = ptr(transfer.CreatorUsername)
	tx.Amount = ptr(nanos(transfer.CreatorCoinToTransferNanos))
	return nil
}

func buildAuthorizeDerivedKey(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	_, err := relayByOutputs(tx, raw, md, 2)
	return err
}

func buildNFTBid(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByOutputs(tx, raw, md, 3)
	if err != nil {
		return err
	}
	if err := setOtherParty(tx, md, relayed, 2, 1); err != nil {
		return err
	}
	bid := md.NFTBidTxindexMetadata
	if bid == nil {
		return missing("NFTBidTxindexMetadata")
	}
	tx.Amount = ptr(nanos(bid.BidAmountNanos))
	tx.NFTHash = ptr(bid.NFTPostHashHex)
	tx.NFTSerial = ptr(bid.SerialNumber)
	return nil
}

func buildAcceptNFTBid(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByTransferOutputs(tx, raw, md)
	if err != nil {
		return err
	}
	if err := setOtherParty(tx, md, relayed, 2, 1); err != nil {
		return err
	}
	accept := md.AcceptNFTBidTxindexMetadata
	if accept == nil {
		return missing("AcceptNFTBidTxindexMetadata")
	}
	royalties := accept.NFTRoyaltiesMetadata
	if royalties == nil {
		return missing("NFTRoyaltiesMetadata")
	}
	tx.Amount = ptr(nanos(accept.BidAmountNanos))
	tx.NFTHash = ptr(accept.NFTPostHashHex)
	tx.NFTSerial = ptr(accept.SerialNumber)
	tx.Creator = ptr(royalties.CreatorPublicKeyBase58Check)
	tx.CoinRoyaltyPct = ceilPercent(royalties.CreatorCoinRoyaltyNanos, accept.BidAmountNanos)
	tx.CreatorRoyaltyPct = ceilPercent(royalties.CreatorRoyaltyNanos, accept.BidAmountNanos)
	return nil
}

func buildCreateNFT(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	if _, err := relayByTransferOutputs(tx, raw, md); err != nil {
		return err
	}
	nft := md.CreateNFTTxindexMetadata
	if nft == nil {
		return missing("CreateNFTTxindexMetadata")
	}
	tx.NFTHash = ptr(nft.NFTPostHashHex)
	return nil
}

func buildUpdateNFT(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	if _, err := relayByTransferOutputs(tx, raw, md); err != nil {
		return err
	}
	nft := md.UpdateNFTTxindexMetadata
	if nft == nil {
		return missing("UpdateNFTTxindexMetadata")
	}
	tx.OnSale = ptr(nft.IsForSale)
	tx.NFTHash = ptr(nft.NFTPostHashHex)
	return nil
}

func buildBurnNFT(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	if _, err := relayByTransferOutputs(tx, raw, md); err != nil {
		return err
	}
	return setNFT(tx, md.BurnNFTTxindexMetadata, "BurnNFTTxindexMetadata")
}

func buildNFTTransfer(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	relayed, err := relayByTransferOutputs(tx, raw, md)
	if err != nil {
		return err
	}
	if err := setOtherParty(tx, md, relayed, 1, 0); err != nil {
		return err
	}
	return setNFT(tx, md.NFTTransferTxindexMetadata, "NFTTransferTxindexMetadata")
}

func buildAcceptNFTTransfer(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	if _, err := relayByTransferOutputs(tx, raw, md); err != nil {
		return err
	}
	return setNFT(tx, md.AcceptNFTTransferTxindexMetadata, "AcceptNFTTransferTxindexMetadata")
}

func setNFT(tx *model.Transaction, nft *chain.NFTMetadata, name string) error {
	if nft == nil {
		return missing(name)
	}
	tx.NFTHash = ptr(nft.NFTPostHashHex)
	tx.NFTSerial = ptr(nft.SerialNumber)
	return nil
}
