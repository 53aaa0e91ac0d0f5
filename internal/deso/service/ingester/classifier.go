package ingester

import (
	"context"
	"fmt"
)

// State is the completeness of one height in the store.
type State int

const (
	StateOutOfStoredRange State = iota
	StateMissingBlock
	StatePartiallyInserted
	StateFullyInserted
)

func (s State) String() string {
	switch s {
	case StateOutOfStoredRange:
		return "out_of_stored_range"
	case StateMissingBlock:
		return "missing_block"
	case StatePartiallyInserted:
		return "partially_inserted"
	case StateFullyInserted:
		return "fully_inserted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Action is what the walker does with a height.
type Action string

const (
	ActionFullInsert   Action = "full_insert"
	ActionRepairInsert Action = "repair_insert"
	ActionSkip         Action = "skip"
)

// Action maps a state onto the action that brings the height to FullyInserted.
func (s State) Action() Action {
	switch s {
	case StatePartiallyInserted:
		return ActionRepairInsert
	case StateFullyInserted:
		return ActionSkip
	default:
		return ActionFullInsert
	}
}

// storedRange is the [min, max] height interval held by the store, read once
// at the start of a walk. An empty store contains no height.
type storedRange struct {
	min, max uint64
	empty    bool
}

func (r storedRange) contains(height uint64) bool {
	return !r.empty && height >= r.min && height <= r.max
}

func loadStoredRange(ctx context.Context, repo Repository) (storedRange, error) {
	maxHeight, hasMax, err := repo.MaxBlockHeight(ctx)
	if err != nil {
		return storedRange{}, fmt.Errorf("read stored max height: %w", err)
	}
	minHeight, hasMin, err := repo.MinBlockHeight(ctx)
	if err != nil {
		return storedRange{}, fmt.Errorf("read stored min height: %w", err)
	}
	if !hasMax || !hasMin {
		return storedRange{empty: true}, nil
	}
	return storedRange{min: minHeight, max: maxHeight}, nil
}

// classify evaluates the states top-down; the first match wins.
func classify(ctx context.Context, repo Repository, stored storedRange, height uint64, hash string) (State, error) {
	if !stored.contains(height) {
		return StateOutOfStoredRange, nil
	}

	found, err := repo.HasBlock(ctx, hash)
	if err != nil {
		return 0, fmt.Errorf("lookup block %s: %w", hash, err)
	}
	if !found {
		return StateMissingBlock, nil
	}

	declared, err := repo.BlockTxCount(ctx, hash)
	if err != nil {
		return 0, fmt.Errorf("read declared tx count of %s: %w", hash, err)
	}
	actual, err := repo.StoredTxCount(ctx, hash)
	if err != nil {
		return 0, fmt.Errorf("count stored txs of %s: %w", hash, err)
	}
	if declared != actual {
		return StatePartiallyInserted, nil
	}
	return StateFullyInserted, nil
}
