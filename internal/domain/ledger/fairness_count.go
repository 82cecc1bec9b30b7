// Package ledger maintains the fairness ledger: a rolling-window count of
// assignments per (member, kind), seeded from persisted history at the
// start of a generation and written back as deltas on success.
package ledger

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// FairnessCount is the authoritative ledger entry for one (member, kind)
// pair within a rolling window. It may always be rebuilt from Assignment
// history, so it carries no independent state beyond the count itself.
type FairnessCount struct {
	MemberID    common.MemberID
	Kind        string
	Count       int
	WindowStart time.Time
	WindowEnd   time.Time
}
