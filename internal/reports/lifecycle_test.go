package reports

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pharmasync/pharmasync/internal/shared"
)

func TestTransitionAllowsEveryStatePair(t *testing.T) {
	states := []Status{StatusPending, StatusInvestigating, StatusResolved}
	for _, from := range states {
		for _, to := range states {
			next, err := Transition(from, to)
			require.NoError(t, err, "%s -> %s", from, to)
			require.Equal(t, to, next)
		}
	}
}

func TestTransitionReopensResolved(t *testing.T) {
	next, err := Transition(StatusResolved, StatusPending)
	require.NoError(t, err)
	require.Equal(t, StatusPending, next)
}

func TestTransitionRejectsUnknownStates(t *testing.T) {
	_, err := Transition(StatusPending, Status("Closed"))
	require.ErrorIs(t, err, shared.ErrInvalidTransition)

	_, err = Transition(Status(""), StatusResolved)
	require.ErrorIs(t, err, shared.ErrInvalidTransition)
}
