package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRejectsShortSide(t *testing.T) {
	_, err := Parse("DK", "JTA", "CLV", "ERO")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top")

	_, err = Parse("DKI", "JTA", "CLV", "EROS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "left")
}

func TestSideOf(t *testing.T) {
	s, err := Parse("DKI", "JTA", "CLV", "ERO")
	require.NoError(t, err)

	side, ok := s.SideOf('K')
	require.True(t, ok)
	assert.Equal(t, Top, side)

	side, ok = s.SideOf('T')
	require.True(t, ok)
	assert.Equal(t, Right, side)

	side, ok = s.SideOf('V')
	require.True(t, ok)
	assert.Equal(t, Bottom, side)

	side, ok = s.SideOf('O')
	require.True(t, ok)
	assert.Equal(t, Left, side)

	_, ok = s.SideOf('Z')
	assert.False(t, ok)
}

func TestLettersOfPreservesOrder(t *testing.T) {
	s, err := Parse("DKI", "JTA", "CLV", "ERO")
	require.NoError(t, err)

	assert.Equal(t, [3]rune{'D', 'K', 'I'}, s.LettersOf(Top))
	assert.Equal(t, [3]rune{'E', 'R', 'O'}, s.LettersOf(Left))
}

func TestAlphabetCollapsesDuplicates(t *testing.T) {
	s, err := Parse("ABC", "ADE", "FGH", "IJK")
	require.NoError(t, err)

	// A appears on two sides; the alphabet holds it once and the first
	// side wins the lookup.
	assert.Equal(t, 11, s.LetterCount())
	assert.Len(t, s.Alphabet(), 11)

	side, ok := s.SideOf('A')
	require.True(t, ok)
	assert.Equal(t, Top, side)
}

func TestFromStrings(t *testing.T) {
	s, err := FromStrings([4]string{"DKI", "JTA", "CLV", "ERO"})
	require.NoError(t, err)
	assert.Equal(t, 12, s.LetterCount())
}
