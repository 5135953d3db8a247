package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A reused checkout session and a freshly minted one must expose the
// same keys, so clients can read paymentUrl without branching on which
// path served them.
func TestPaymentTokenPayloadShape(t *testing.T) {
	fresh := paymentTokenPayload("snap-token-123", "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token-123")
	reused := paymentTokenPayload("", "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token-123")

	for key := range fresh {
		assert.Contains(t, reused, key)
	}
	for key := range reused {
		assert.Contains(t, fresh, key)
	}

	assert.Equal(t, "snap-token-123", fresh["paymentToken"])
	assert.Nil(t, reused["paymentToken"])
	assert.Equal(t, fresh["paymentUrl"], reused["paymentUrl"])
}
