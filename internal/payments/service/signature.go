package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature reports whether signature equals the hex HMAC-SHA256 digest of
// "orderID|paymentID" under secret. This is the Razorpay checkout callback
// signature scheme; a mismatch means the confirmation did not originate from
// the gateway.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return expected == signature
}
