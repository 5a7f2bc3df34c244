package sheetgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnTitle(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{16384, "XFD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColumnTitle(tt.col), "column %d", tt.col)
	}
}

func TestColumnTitle_NonPositive(t *testing.T) {
	assert.Equal(t, "", ColumnTitle(0))
	assert.Equal(t, "", ColumnTitle(-4))
}

func TestTitleToColumn_RoundTrip(t *testing.T) {
	for col := 1; col <= 20000; col++ {
		got, err := TitleToColumn(ColumnTitle(col))
		require.NoError(t, err)
		require.Equal(t, col, got)
	}
}

func TestTitleToColumn_LowerCase(t *testing.T) {
	col, err := TitleToColumn("ab")
	require.NoError(t, err)
	assert.Equal(t, 28, col)
}

func TestTitleToColumn_Invalid(t *testing.T) {
	for _, s := range []string{"", "A1", "-", "Ä"} {
		_, err := TitleToColumn(s)
		assert.Error(t, err, "title %q", s)
	}
}
