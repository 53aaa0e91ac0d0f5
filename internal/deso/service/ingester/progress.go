package ingester

import (
	"sync"
	"time"
)

// Phase is the stage the indexer process is in.
type Phase string

const (
	PhaseStarting Phase = "starting"
	PhaseBackfill Phase = "backfill"
	PhaseVerify   Phase = "verify"
	PhaseFollow   Phase = "follow"
	PhaseFailed   Phase = "failed"
)

// Snapshot is a point in time copy of the indexer progress.
type Snapshot struct {
	Phase          Phase     `json:"phase"`
	TipHeight      uint64    `json:"tip_height"`
	CurrentHeight  uint64    `json:"current_height"`
	FullInserts    uint64    `json:"full_inserts"`
	RepairInserts  uint64    `json:"repair_inserts"`
	Skips          uint64    `json:"skips"`
	FollowedBlocks uint64    `json:"followed_blocks"`
	LastError      string    `json:"last_error,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Progress is shared by the services of one process and read by the status endpoint.
type Progress struct {
	mu       sync.RWMutex
	snapshot Snapshot
	now      func() time.Time
}

func NewProgress() *Progress {
	p := &Progress{now: time.Now}
	p.snapshot = Snapshot{Phase: PhaseStarting, UpdatedAt: p.now()}
	return p
}

func (p *Progress) SetPhase(phase Phase) {
	p.update(func(s *Snapshot) { s.Phase = phase })
}

func (p *Progress) SetTip(height uint64) {
	p.update(func(s *Snapshot) { s.TipHeight = height })
}

// ObserveHeight records a height handled by the chain walker.
func (p *Progress) ObserveHeight(height uint64, action Action) {
	p.update(func(s *Snapshot) {
		s.CurrentHeight = height
		switch action {
		case ActionFullInsert:
			s.FullInserts++
		case ActionRepairInsert:
			s.RepairInserts++
		case ActionSkip:
			s.Skips++
		}
	})
}

// ObserveFollowed records a block inserted by the tail daemon.
func (p *Progress) ObserveFollowed(height uint64) {
	p.update(func(s *Snapshot) {
		s.CurrentHeight = height
		s.FollowedBlocks++
		if height > s.TipHeight {
			s.TipHeight = height
		}
	})
}

// Fail moves the process into the failed phase and keeps err for display.
func (p *Progress) Fail(err error) {
	p.update(func(s *Snapshot) {
		s.Phase = PhaseFailed
		if err != nil {
			s.LastError = err.Error()
		}
	})
}

func (p *Progress) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

func (p *Progress) update(fn func(s *Snapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.snapshot)
	p.snapshot.UpdatedAt = p.now()
}
