// Package settlement supplies opaque on-chain settlement receipts. The
// engine attaches them to treasury transactions without verifying them.
package settlement

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Receipts issues settlement receipt identifiers for vault transactions.
type Receipts struct{}

func NewReceipts() *Receipts {
	return &Receipts{}
}

// NewReceipt returns a fresh hex-encoded receipt in transaction-hash form.
func (Receipts) NewReceipt() string {
	id := uuid.New()
	return "0x" + hex.EncodeToString(id[:])
}
