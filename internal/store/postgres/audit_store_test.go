package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int32
		want  int32
	}{
		{name: "zero means default", limit: 0, want: auditDefaultLimit},
		{name: "negative clamps to one", limit: -5, want: 1},
		{name: "in range untouched", limit: 37, want: 37},
		{name: "over max clamps", limit: 100000, want: auditMaxLimit},
		{name: "max exactly", limit: auditMaxLimit, want: auditMaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, clampLimit(tt.limit, auditDefaultLimit, auditMaxLimit))
		})
	}
}

func TestClampLimitFeedRange(t *testing.T) {
	require.Equal(t, int32(feedDefaultLimit), clampLimit(0, feedDefaultLimit, feedMaxLimit))
	require.Equal(t, int32(feedMaxLimit), clampLimit(500, feedDefaultLimit, feedMaxLimit))
	require.Equal(t, int32(1), clampLimit(-1, feedDefaultLimit, feedMaxLimit))
}
