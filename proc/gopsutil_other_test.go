//go:build !linux

package proc

import "testing"

func TestStateLetter(t *testing.T) {
	tests := []struct {
		status []string
		want   byte
	}{
		{[]string{"running"}, 'R'},
		{[]string{"sleep"}, 'S'},
		{[]string{"zombie"}, 'Z'},
		{[]string{"stop"}, 'T'},
		{nil, '?'},
		{[]string{""}, '?'},
	}

	for _, tt := range tests {
		if got := stateLetter(tt.status); got != tt.want {
			t.Fatalf("stateLetter(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
