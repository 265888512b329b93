package service

import (
	"crypto/rand"
	"encoding/hex"
)

// NewOrderToken returns an 8-character hex token used as an order id.
func NewOrderToken() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
