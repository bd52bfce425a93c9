package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		password  string
		want      string
	}{
		{
			name:      "all valid",
			firstName: "John", lastName: "Doe", email: "John_Doe@example.com", password: "its26uv3nf",
			want: "",
		},
		{
			name:      "first name too short",
			firstName: "J", lastName: "Do", email: "John_Doe@example.com", password: "its26uv3nf",
			want: MsgNameTooShort,
		},
		{
			name:      "two char names pass the length rule",
			firstName: "Jo", lastName: "Do", email: "John_Doe@example.com", password: "its26uv3nf",
			want: "",
		},
		{
			name:      "non-alphabetic names",
			firstName: "!!!!!!!!!", lastName: "$$$$$$$$$$$$", email: "John_Doe@example.com", password: "its26uv3nf",
			want: MsgNameInvalidChar,
		},
		{
			name:      "last name checked after first name",
			firstName: "John", lastName: "D0e", email: "John_Doe@example.com", password: "its26uv3nf",
			want: MsgNameInvalidChar,
		},
		{
			name:      "email too short",
			firstName: "John", lastName: "Doe", email: ".co", password: "its26uv3nf",
			want: MsgEmailTooShort,
		},
		{
			name:      "email invalid character",
			firstName: "John", lastName: "Doe", email: "john doe@example.com", password: "its26uv3nf",
			want: MsgEmailInvalidChar,
		},
		{
			name:      "password too short",
			firstName: "John", lastName: "Doe", email: "John_Doe@example.com", password: "abc",
			want: MsgPasswordTooShort,
		},
		{
			name:      "six char password passes",
			firstName: "John", lastName: "Doe", email: "John_Doe@example.com", password: "abcdef",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSignup(tt.firstName, tt.lastName, tt.email, tt.password)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The first failing rule wins even when later fields are also invalid.
func TestValidateSignup_Ordering(t *testing.T) {
	got := ValidateSignup("J", "!!", ".co", "abc")
	assert.Equal(t, MsgNameTooShort, got)

	got = ValidateSignup("John", "!!", ".co", "abc")
	assert.Equal(t, MsgNameInvalidChar, got)

	got = ValidateSignup("John", "Doe", ".co", "abc")
	assert.Equal(t, MsgEmailTooShort, got)

	got = ValidateSignup("John", "Doe", "John_Doe@example.com", "abc")
	assert.Equal(t, MsgPasswordTooShort, got)
}

// Per-field length rule runs before the character-class rule.
func TestValidateSignup_RuleOrderWithinField(t *testing.T) {
	got := ValidateSignup("!", "Doe", "John_Doe@example.com", "its26uv3nf")
	assert.Equal(t, MsgNameTooShort, got)

	got = ValidateSignup("John", "Doe", "!", "its26uv3nf")
	assert.Equal(t, MsgEmailTooShort, got)
}
