package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"book", ActionBook},
		{"cancel", ActionCancel},
		{"reschedule", ActionReschedule},
		{"unknown", ActionUnknown},
		{"", ActionUnknown},
		{"Book", ActionUnknown},
		{" cancel", ActionUnknown},
		{"RESCHEDULE", ActionUnknown},
		{"greet", ActionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParseAction(tt.in))
		})
	}
}
