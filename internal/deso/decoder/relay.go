package decoder

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/chain"
	"github.com/goodnatureofminers/blockinsight7000-deso/internal/deso/model"
	"github.com/shopspring/decimal"
)

// A relay node that broadcasts a transaction on behalf of a user may skim a fee.
// It shows up as an extra leading output paid to the first affected key.

// relayByOutputs marks tx as relayed when raw carries exactly n outputs.
func relayByOutputs(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata, n int) (bool, error) {
	if len(raw.Outputs) != n {
		tx.OnCustomNode = false
		return false, nil
	}
	return true, applyRelay(tx, raw, md)
}

// relayByTransferOutputs marks tx as relayed when two affected keys are tagged
// as plain transfer outputs.
func relayByTransferOutputs(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) (bool, error) {
	if transferOutputCount(md) != 2 {
		tx.OnCustomNode = false
		return false, nil
	}
	return true, applyRelay(tx, raw, md)
}

func applyRelay(tx *model.Transaction, raw chain.RawTransaction, md *chain.TransactionMetadata) error {
	fee, err := outputAmount(raw, 0)
	if err != nil {
		return err
	}
	recipient, err := affectedKey(md, 0)
	if err != nil {
		return err
	}
	tx.OnCustomNode = true
	tx.NodeFee = &fee
	tx.NodeRecipient = &recipient
	return nil
}

func transferOutputCount(md *chain.TransactionMetadata) int {
	n := 0
	for _, key := range md.AffectedPublicKeys {
		if key.Metadata == chain.BasicTransferOutputTag {
			n++
		}
	}
	return n
}

func affectedKey(md *chain.TransactionMetadata, i int) (string, error) {
	if i >= len(md.AffectedPublicKeys) {
		return "", fmt.Errorf("affected key %d of %d: %w", i, len(md.AffectedPublicKeys), ErrMalformed)
	}
	return md.AffectedPublicKeys[i].PublicKeyBase58Check, nil
}

func outputAmount(raw chain.RawTransaction, i int) (decimal.Decimal, error) {
	if i >= len(raw.Outputs) {
		return decimal.Decimal{}, fmt.Errorf("output %d of %d: %w", i, len(raw.Outputs), ErrMalformed)
	}
	return nanos(raw.Outputs[i].AmountNanos), nil
}

// setOtherParty picks the counterparty at relayIdx when relayed, else at directIdx.
func setOtherParty(tx *model.Transaction, md *chain.TransactionMetadata, relayed bool, relayIdx, directIdx int) error {
	idx := directIdx
	if relayed {
		idx = relayIdx
	}
	key, err := affectedKey(md, idx)
	if err != nil {
		return err
	}
	tx.OtherParty = &key
	return nil
}

func missing(name string) error {
	return fmt.Errorf("missing %s: %w", name, ErrMalformed)
}
