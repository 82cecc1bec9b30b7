// Package swap holds the Swap aggregate: a request to replace the
// assignee of a single existing Assignment, subject to peer and admin
// approval before application.
package swap

import (
	"time"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

// PeerDecision is the requested peer's response to a swap proposal.
type PeerDecision string

const (
	PeerPending  PeerDecision = "pending"
	PeerAccepted PeerDecision = "accepted"
	PeerRejected PeerDecision = "rejected"
)

// AdminDecision is the admin's response, reachable only once the peer
// has accepted.
type AdminDecision string

const (
	AdminPending  AdminDecision = "pending"
	AdminApproved AdminDecision = "approved"
	AdminRejected AdminDecision = "rejected"
)

// EffectiveState is the state the (peer_decision, admin_decision) pair
// resolves to.
type EffectiveState string

const (
	StateAwaitingPeer  EffectiveState = "awaiting_peer"
	StateAwaitingAdmin EffectiveState = "awaiting_admin"
	StateRejected      EffectiveState = "rejected"
	StateApplied       EffectiveState = "applied"
)

// Swap is a request to replace Assignment's current member with a
// proposed member. Lifecycle: pending -> peer decides -> admin decides
// -> terminal. Approval mutates the target Assignment and adjusts the
// Ledger; it never mutates either outside of that single transition.
type Swap struct {
	id               common.SwapID
	teamID           common.TeamID
	assignmentID     common.AssignmentID
	requestedBy      common.MemberID
	proposedMemberID common.MemberID
	reason           string
	peerDecision     PeerDecision
	adminDecision    AdminDecision
	createdAt        time.Time
	updatedAt        time.Time
}

// NewSwap constructs a fresh swap request, pending on both fronts.
func NewSwap(teamID common.TeamID, assignmentID common.AssignmentID, requestedBy, proposedMemberID common.MemberID, reason string) (*Swap, error) {
	now := time.Now()
	s := &Swap{
		id:               common.NewSwapID(),
		teamID:           teamID,
		assignmentID:     assignmentID,
		requestedBy:      requestedBy,
		proposedMemberID: proposedMemberID,
		reason:           reason,
		peerDecision:     PeerPending,
		adminDecision:    AdminPending,
		createdAt:        now,
		updatedAt:        now,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReconstructSwap rebuilds a Swap from storage.
func ReconstructSwap(
	id common.SwapID, teamID common.TeamID, assignmentID common.AssignmentID,
	requestedBy, proposedMemberID common.MemberID, reason string,
	peerDecision PeerDecision, adminDecision AdminDecision, createdAt, updatedAt time.Time,
) (*Swap, error) {
	s := &Swap{
		id: id, teamID: teamID, assignmentID: assignmentID, requestedBy: requestedBy,
		proposedMemberID: proposedMemberID, reason: reason,
		peerDecision: peerDecision, adminDecision: adminDecision,
		createdAt: createdAt, updatedAt: updatedAt,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Swap) validate() error {
	if s.teamID == "" {
		return common.NewValidationError("team_id is required", nil)
	}
	if s.assignmentID == "" {
		return common.NewValidationError("assignment_id is required", nil)
	}
	if s.proposedMemberID == "" {
		return common.NewValidationError("proposed_member_id is required", nil)
	}
	if s.proposedMemberID == s.requestedBy {
		return common.NewValidationError("proposed_member_id must differ from requested_by", nil)
	}
	return nil
}

func (s *Swap) ID() common.SwapID                   { return s.id }
func (s *Swap) TeamID() common.TeamID               { return s.teamID }
func (s *Swap) AssignmentID() common.AssignmentID   { return s.assignmentID }
func (s *Swap) RequestedBy() common.MemberID        { return s.requestedBy }
func (s *Swap) ProposedMemberID() common.MemberID   { return s.proposedMemberID }
func (s *Swap) Reason() string                      { return s.reason }
func (s *Swap) PeerDecision() PeerDecision          { return s.peerDecision }
func (s *Swap) AdminDecision() AdminDecision        { return s.adminDecision }
func (s *Swap) CreatedAt() time.Time                { return s.createdAt }
func (s *Swap) UpdatedAt() time.Time                { return s.updatedAt }

// State resolves the current (peer_decision, admin_decision) pair to
// its effective state.
func (s *Swap) State() EffectiveState {
	switch {
	case s.peerDecision == PeerRejected:
		return StateRejected
	case s.peerDecision == PeerPending:
		return StateAwaitingPeer
	case s.peerDecision == PeerAccepted && s.adminDecision == AdminPending:
		return StateAwaitingAdmin
	case s.peerDecision == PeerAccepted && s.adminDecision == AdminRejected:
		return StateRejected
	case s.peerDecision == PeerAccepted && s.adminDecision == AdminApproved:
		return StateApplied
	default:
		return StateAwaitingPeer
	}
}

// IsTerminal reports whether the swap has reached a final state.
func (s *Swap) IsTerminal() bool {
	switch s.State() {
	case StateRejected, StateApplied:
		return true
	default:
		return false
	}
}

// DecidePeer records the peer's response. Only valid while pending.
func (s *Swap) DecidePeer(decision PeerDecision) error {
	if s.peerDecision != PeerPending {
		return common.NewInvariantViolationError("peer decision already recorded")
	}
	if decision != PeerAccepted && decision != PeerRejected {
		return common.NewValidationError("peer decision must be accepted or rejected", nil)
	}
	s.peerDecision = decision
	s.updatedAt = time.Now()
	return nil
}

// DecideAdmin records the admin's response. Only valid once the peer has
// accepted and the admin has not yet decided.
func (s *Swap) DecideAdmin(decision AdminDecision) error {
	if s.peerDecision != PeerAccepted {
		return common.NewInvariantViolationError("admin may not decide before the peer accepts")
	}
	if s.adminDecision != AdminPending {
		return common.NewInvariantViolationError("admin decision already recorded")
	}
	if decision != AdminApproved && decision != AdminRejected {
		return common.NewValidationError("admin decision must be approved or rejected", nil)
	}
	s.adminDecision = decision
	s.updatedAt = time.Now()
	return nil
}
