package ipinfo

import "testing"

func TestIsBogon(t *testing.T) {
	cases := []struct {
		target string
		want   bool
	}{
		{"127.0.0.1", true},
		{"10.0.0.1", true},
		{"100.64.1.1", true},
		{"169.254.10.10", true},
		{"172.16.0.1", true},
		{"192.168.1.1", true},
		{"198.18.0.5", true},
		{"198.51.100.7", true},
		{"203.0.113.200", true},
		{"224.0.0.1", true},
		{"255.255.255.255", true},
		{"8.8.8.8", false},
		{"1.1.1.1", false},
		{"172.32.0.1", false},
		{"100.128.0.1", false},

		{"::", true},
		{"::1", true},
		{"fe80::1", true},
		{"fc00::1", true},
		{"2001:db8::1", true},
		{"2606:4700:4700::1111", false},
		{"2a00:1450:4009::1", false},

		// IPv4-mapped addresses stay IPv6 and fall inside ::ffff:0:0/96,
		// even when the embedded IPv4 is routable.
		{"::ffff:10.0.0.1", true},
		{"::ffff:8.8.8.8", true},

		// 6to4 and Teredo projections of reserved IPv4 space.
		{"2002:a00:1::", true},
		{"2002:c0a8:101::", true},
		{"2001:0:a00:1::", true},
		{"2001:0:c633:6401::", true},
		{"2002:808:808::", false},

		{"", false},
		{"not-an-ip", false},
		{"8.8.8.8/country", false},
	}
	for _, tc := range cases {
		if got := IsBogon(tc.target); got != tc.want {
			t.Errorf("IsBogon(%q) = %v, want %v", tc.target, got, tc.want)
		}
	}
}
