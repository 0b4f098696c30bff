package model

import "testing"

func TestPhase_IsBusy(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseIdle, false},
		{PhasePredicting, true},
		{PhaseResultMain, false},
		{PhaseResultBreed, false},
		{PhaseError, false},
	}

	for _, test := range tests {
		if result := test.phase.IsBusy(); result != test.expected {
			t.Errorf("IsBusy() for %s = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestPhase_HasResult(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseIdle, false},
		{PhasePredicting, false},
		{PhaseResultMain, true},
		{PhaseResultBreed, true},
		{PhaseError, false},
	}

	for _, test := range tests {
		if result := test.phase.HasResult(); result != test.expected {
			t.Errorf("HasResult() for %s = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestFeedbackState_CanSubmit(t *testing.T) {
	tests := []struct {
		state    FeedbackState
		expected bool
	}{
		{FeedbackHidden, false},
		{FeedbackAvailable, false},
		{FeedbackOpen, true},
		{FeedbackSending, false},
		{FeedbackSubmitted, false},
	}

	for _, test := range tests {
		if result := test.state.CanSubmit(); result != test.expected {
			t.Errorf("CanSubmit() for %s = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestFeedbackState_PanelVisible(t *testing.T) {
	tests := []struct {
		state    FeedbackState
		expected bool
	}{
		{FeedbackHidden, false},
		{FeedbackAvailable, false},
		{FeedbackOpen, true},
		{FeedbackSending, true},
		{FeedbackSubmitted, false},
	}

	for _, test := range tests {
		if result := test.state.PanelVisible(); result != test.expected {
			t.Errorf("PanelVisible() for %s = %v, expected %v", test.state, result, test.expected)
		}
	}
}
