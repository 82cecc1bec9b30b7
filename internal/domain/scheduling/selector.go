package scheduling

import (
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/ledger"
)

// rankKey is the fixed record used in place of dict-keyed fairness
// scores with duck-typed fields: {primary, secondary, tiebreak}
// compared lexicographically, ascending.
type rankKey struct {
	member    common.MemberID
	primary   int
	secondary int
	tiebreak  uint64
}

func less(a, b rankKey) bool {
	if a.primary != b.primary {
		return a.primary < b.primary
	}
	if a.secondary != b.secondary {
		return a.secondary < b.secondary
	}
	return a.tiebreak < b.tiebreak
}

// tieHash is a deterministic 64-bit hash of (member_id, ISO key, kind,
// seed), used only to break ties after primary and secondary scores
// match. FNV-1a is used for its determinism and because no third-party
// hashing library in the example pack offers anything FNV doesn't
// already provide for this purely internal tie-break.
func tieHash(member common.MemberID, key string, kind TaskKind, seed int64) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s|%d", member, key, kind, seed)
	return h.Sum64()
}

// Selector picks an assignee from a non-empty candidate set using
// fairness ordering with deterministic tie-breaking.
type Selector struct {
	ledger        *ledger.Ledger
	seed          int64
	aggressiveness int
}

// NewSelector builds a Selector bound to ledger, seed and aggressiveness
// (1..5; clamped into range).
func NewSelector(l *ledger.Ledger, seed int64, aggressiveness int) *Selector {
	if aggressiveness < 1 {
		aggressiveness = 1
	}
	if aggressiveness > 5 {
		aggressiveness = 5
	}
	return &Selector{ledger: l, seed: seed, aggressiveness: aggressiveness}
}

// keyString formats a date or week-start key as ISO-8601 for tieHash
// input.
func keyString(key time.Time) string {
	return key.Format(time.DateOnly)
}

// Select picks the head of the candidate set ranked ascending by
// (ledger.count(M,kind), secondary, tie_hash), and returns the chosen
// member plus the full ranked candidate list and a verbal reason for the
// Audit Log.
func (s *Selector) Select(candidates []common.MemberID, kind TaskKind, key time.Time) (common.MemberID, []CandidateRank, string) {
	ranks := make([]rankKey, len(candidates))
	for i, m := range candidates {
		primary := s.ledger.Count(m, string(kind))
		secondary := s.ledger.Total(m)
		if s.aggressiveness > 1 {
			secondary *= s.aggressiveness
		}
		ranks[i] = rankKey{
			member:    m,
			primary:   primary,
			secondary: secondary,
			tiebreak:  tieHash(m, keyString(key), kind, s.seed),
		}
	}

	sort.Slice(ranks, func(i, j int) bool { return less(ranks[i], ranks[j]) })

	reason := tieBreakReason(ranks)

	candidateRanks := make([]CandidateRank, len(ranks))
	for i, r := range ranks {
		candidateRanks[i] = CandidateRank{
			MemberID:  r.member,
			Primary:   r.primary,
			Secondary: r.secondary,
			Tiebreak:  r.tiebreak,
		}
	}

	return ranks[0].member, candidateRanks, reason
}

func tieBreakReason(ranks []rankKey) string {
	if len(ranks) == 1 {
		return "only candidate"
	}
	head, runnerUp := ranks[0], ranks[1]
	switch {
	case head.primary != runnerUp.primary:
		return "lowest primary"
	case head.secondary != runnerUp.secondary:
		return "tied on primary, lowest total"
	default:
		return "tied on primary+total, lowest hash"
	}
}
