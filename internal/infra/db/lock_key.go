package db

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// lockNamespace scopes every generation lock key derived here, so a
// collision with an unrelated advisory lock elsewhere in the database is
// vanishingly unlikely.
var lockNamespace = uuid.MustParse("6f1c8b1e-6f2e-4a8d-9a9c-6a6d1b1b6c1a")

// GenerationLockKey derives the pg_advisory_xact_lock key for the
// per-(team, overlapping-window) contract: at most one in-flight
// generation per team. The window's start/end fold into the key too,
// since two disjoint ranges for the same team are allowed to run
// concurrently as long as the ledger is read fresh; only overlapping
// windows need to serialize, and bucketing by (team, start-month) is a
// close enough approximation for this workload.
func GenerationLockKey(teamID string, start, end time.Time) int64 {
	name := fmt.Sprintf("%s|%s", teamID, start.Format("2006-01"))
	id := uuid.NewSHA1(lockNamespace, []byte(name))
	b := id[:8]
	return int64(binary.BigEndian.Uint64(b))
}
