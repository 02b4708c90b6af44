package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want LocationParts
	}{
		{
			"London, England, United Kingdom",
			LocationParts{City: "London", State: "England", Country: "United Kingdom"},
		},
		{
			"Berlin, Germany",
			LocationParts{City: "Berlin", Country: "Germany"},
		},
		{
			"Netherlands",
			LocationParts{Country: "Netherlands"},
		},
		{
			"",
			LocationParts{},
		},
		{
			"  ,  , ",
			LocationParts{},
		},
		{
			"Brooklyn, New York, NY, United States",
			LocationParts{City: "Brooklyn", State: "New York", Country: "United States"},
		},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, SplitLocation(tc.raw), tc.raw)
	}
}
