package models

import "testing"

func TestBTCFromSatoshis(t *testing.T) {
	cases := []struct {
		sats float64
		want string
	}{
		{150000000, "1.5"},
		{100000000, "1"},
		{250000000, "2.5"},
		{12345678, "0.12345678"},
		{1, "0.00000001"},
	}

	for _, tc := range cases {
		if got := BTCFromSatoshis(tc.sats); got != tc.want {
			t.Fatalf("BTCFromSatoshis(%v) = %q, want %q", tc.sats, got, tc.want)
		}
	}
}
