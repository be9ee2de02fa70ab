package transactionRepository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerchantPattern(t *testing.T) {
	cases := []struct {
		name     string
		merchant string
		want     string
	}{
		{"plain name", "Netflix", "%Netflix%"},
		{"underscore is literal", "AT&T_Wireless", `%AT&T\_Wireless%`},
		{"percent is literal", "100% Juice", `%100\% Juice%`},
		{"backslash is literal", `ACME\Corp`, `%ACME\\Corp%`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, merchantPattern(tc.merchant))
		})
	}
}
