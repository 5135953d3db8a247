package helper

import (
	"fmt"
	"time"
)

// Invoice and ticket numbers are display-only: derived from the order
// code plus the current time, regenerated on each access, never stored.

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func epochSuffix(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return lastN(ms, 4)
}

func InvoiceNumber(orderCode string, now time.Time) string {
	return fmt.Sprintf("INV-%s-%s", lastN(orderCode, 6), epochSuffix(now))
}

func TicketNumber(orderCode string, now time.Time) string {
	return fmt.Sprintf("TIX-%s-%s", lastN(orderCode, 6), epochSuffix(now))
}
