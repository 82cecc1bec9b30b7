package swap

import (
	"testing"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/common"
)

func newTestSwap(t *testing.T) *Swap {
	t.Helper()
	s, err := NewSwap(common.NewTeamID(), common.NewAssignmentID(), common.NewMemberID(), common.NewMemberID(), "schedule conflict")
	if err != nil {
		t.Fatalf("NewSwap() error = %v", err)
	}
	return s
}

func TestSwap_StateTransitions(t *testing.T) {
	s := newTestSwap(t)
	if s.State() != StateAwaitingPeer {
		t.Errorf("initial state = %v, want %v", s.State(), StateAwaitingPeer)
	}

	if err := s.DecidePeer(PeerAccepted); err != nil {
		t.Fatalf("DecidePeer() error = %v", err)
	}
	if s.State() != StateAwaitingAdmin {
		t.Errorf("state after peer accepts = %v, want %v", s.State(), StateAwaitingAdmin)
	}

	if err := s.DecideAdmin(AdminApproved); err != nil {
		t.Fatalf("DecideAdmin() error = %v", err)
	}
	if s.State() != StateApplied {
		t.Errorf("state after admin approves = %v, want %v", s.State(), StateApplied)
	}
	if !s.IsTerminal() {
		t.Error("applied swap should be terminal")
	}
}

func TestSwap_PeerRejectsIsTerminal(t *testing.T) {
	s := newTestSwap(t)
	if err := s.DecidePeer(PeerRejected); err != nil {
		t.Fatalf("DecidePeer() error = %v", err)
	}
	if s.State() != StateRejected {
		t.Errorf("state = %v, want %v", s.State(), StateRejected)
	}
	if !s.IsTerminal() {
		t.Error("rejected swap should be terminal")
	}

	if err := s.DecideAdmin(AdminApproved); err == nil {
		t.Error("expected error deciding admin after peer rejected")
	}
}

func TestSwap_AdminRejectsAfterPeerAccepts(t *testing.T) {
	s := newTestSwap(t)
	if err := s.DecidePeer(PeerAccepted); err != nil {
		t.Fatalf("DecidePeer() error = %v", err)
	}
	if err := s.DecideAdmin(AdminRejected); err != nil {
		t.Fatalf("DecideAdmin() error = %v", err)
	}
	if s.State() != StateRejected {
		t.Errorf("state = %v, want %v", s.State(), StateRejected)
	}
}

func TestSwap_CannotDecideTwice(t *testing.T) {
	s := newTestSwap(t)
	if err := s.DecidePeer(PeerAccepted); err != nil {
		t.Fatalf("DecidePeer() error = %v", err)
	}
	if err := s.DecidePeer(PeerAccepted); err == nil {
		t.Error("expected error deciding peer twice")
	}
}

func TestNewSwap_ValidationErrors(t *testing.T) {
	member := common.NewMemberID()
	if _, err := NewSwap(common.NewTeamID(), common.NewAssignmentID(), member, member, ""); err == nil {
		t.Error("expected error when proposed member equals requester")
	}
	if _, err := NewSwap("", common.NewAssignmentID(), common.NewMemberID(), common.NewMemberID(), ""); err == nil {
		t.Error("expected error when team_id is empty")
	}
}
