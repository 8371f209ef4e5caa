package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesQuery(t *testing.T) {
	require.True(t, MatchesQuery("bio", "Biogesic", "Pain Relief"))
	require.True(t, MatchesQuery("BIOGESIC", "Biogesic"))
	require.True(t, MatchesQuery("  relief  ", "Biogesic", "Pain Relief"))
	require.False(t, MatchesQuery("neozep", "Biogesic", "Pain Relief"))

	// Empty or blank terms match everything.
	require.True(t, MatchesQuery("", "anything"))
	require.True(t, MatchesQuery("   "))
}

func TestMatchesQueryFoldsUnicode(t *testing.T) {
	require.True(t, MatchesQuery("paracetamol", "PARACETAMOL 500mg"))
	require.True(t, MatchesQuery("STRASSE", "Straße"))
}

func TestMatchesChoice(t *testing.T) {
	require.True(t, MatchesChoice(FilterAll, "License"))
	require.True(t, MatchesChoice("", "License"))
	require.True(t, MatchesChoice("License", "License"))
	require.False(t, MatchesChoice("Certificate", "License"))

	// Enumerated filters are exact, not case-insensitive.
	require.False(t, MatchesChoice("license", "License"))
}
