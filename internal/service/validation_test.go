package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUserFields_Order(t *testing.T) {
	// All fields invalid: the name rule fires first
	err := validateUserFields("short", "", "bad", "not-an-email")
	require.Error(t, err)
	assert.Equal(t, "Name must be between 15 and 60 characters", err.Error())

	// Name fixed: address is next
	err = validateUserFields("A Perfectly Valid Name", "", "bad", "not-an-email")
	require.Error(t, err)
	assert.Equal(t, "Address must not exceed 400 characters", err.Error())

	// Address fixed: password is next
	err = validateUserFields("A Perfectly Valid Name", "1 Test Street", "bad", "not-an-email")
	require.Error(t, err)
	assert.Equal(t, "Password must be 8-16 characters with at least one uppercase letter and one special character", err.Error())

	// Password fixed: email is last
	err = validateUserFields("A Perfectly Valid Name", "1 Test Street", "Abcdef1!", "not-an-email")
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", err.Error())

	// Everything valid
	assert.NoError(t, validateUserFields("A Perfectly Valid Name", "1 Test Street", "Abcdef1!", "a@b.com"))
}

func TestValidateUserFields_Boundaries(t *testing.T) {
	name15 := strings.Repeat("n", 15)
	name60 := strings.Repeat("n", 60)
	name61 := strings.Repeat("n", 61)
	address400 := strings.Repeat("a", 400)
	address401 := strings.Repeat("a", 401)

	assert.NoError(t, validateUserFields(name15, "x", "Abcdef1!", "a@b.com"))
	assert.NoError(t, validateUserFields(name60, address400, "Abcdef1!", "a@b.com"))
	assert.Error(t, validateUserFields(name61, "x", "Abcdef1!", "a@b.com"))
	assert.Error(t, validateUserFields(name15, address401, "Abcdef1!", "a@b.com"))
}

func TestValidPassword(t *testing.T) {
	testCases := []struct {
		password string
		valid    bool
	}{
		{"Abcdef1!", true},
		{"A!bcdefg", true},
		{"Abcdefghijklmn!?", true},   // 16 chars
		{"Abcdefghijklmno!?", false}, // 17 chars
		{"Abcde1!", false},           // 7 chars
		{"abcdef1!", false},          // no uppercase
		{"Abcdefgh", false},          // no special
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			assert.Equal(t, tc.valid, validPassword(tc.password))
		})
	}
}

func TestEmailRegex(t *testing.T) {
	valid := []string{"a@b.com", "user.name+tag@sub.example.org"}
	invalid := []string{"", "plain", "a@b", "a b@c.com", "a@b c.com", "@example.com"}

	for _, email := range valid {
		assert.True(t, emailRegex.MatchString(email), email)
	}
	for _, email := range invalid {
		assert.False(t, emailRegex.MatchString(email), email)
	}
}
