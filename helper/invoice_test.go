package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumberFormat(t *testing.T) {
	now := time.UnixMilli(1756345678901)

	inv := InvoiceNumber("ORD-a1b2c3d4", now)
	assert.Equal(t, "INV-b2c3d4-8901", inv)

	tix := TicketNumber("ORD-a1b2c3d4", now)
	assert.Equal(t, "TIX-b2c3d4-8901", tix)
}

func TestInvoiceNumberShortCode(t *testing.T) {
	now := time.UnixMilli(1756345678901)
	assert.Equal(t, "INV-abc-8901", InvoiceNumber("abc", now))
}

func TestInvoiceNumberRegeneratesSuffix(t *testing.T) {
	first := InvoiceNumber("ORD-a1b2c3d4", time.UnixMilli(1756345670001))
	second := InvoiceNumber("ORD-a1b2c3d4", time.UnixMilli(1756345670002))
	assert.NotEqual(t, first, second)
}

func TestEpochSuffixLength(t *testing.T) {
	assert.Len(t, epochSuffix(time.UnixMilli(1756345678901)), 4)
	assert.Equal(t, "42", epochSuffix(time.UnixMilli(42)))
}
