package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard date/time values
	transactionTime := time.Date(2025, 1, 10, 14, 30, 45, 123456789, time.UTC)
	orderID := "c0a80101-0000-4000-8000-000000000001"

	// Encode the token
	token := EncodeToken(transactionTime, orderID)
	assert.NotEmpty(t, token, "Token should not be empty")

	// Decode the token and verify
	decodedTime, decodedOrderID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, transactionTime, decodedTime, "Transaction time should match after decode")
	assert.Equal(t, orderID, decodedOrderID, "Order ID should match after decode")

	// Test case 2: Zero time value
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, orderID)
	decodedZeroTime, decodedID, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroTime, "Zero time should match after decode")
	assert.Equal(t, orderID, decodedID, "Order ID should match after decode")

	// Test case 3: Current time value
	now := time.Now().UTC()
	nowToken := EncodeToken(now, orderID)
	decodedNow, _, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")

	// Due to potential nanosecond precision issues, use Equal instead of direct comparison
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // Base64 encoded date without separator
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test invalid time format
	badToken := "bm90YWRhdGV8b3JkZXItMQ==" // Base64 encoded "notadate|order-1"
	_, _, err = DecodeToken(badToken)
	assert.Error(t, err, "Should return an error for invalid time format")
	assert.Contains(t, err.Error(), "transaction time parse", "Error should mention time parsing issue")
}

