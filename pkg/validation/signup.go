package validation

import "unicode"

// Messages returned to signup clients. These strings (trailing spaces
// included) are a wire contract consumed by existing clients; do not edit.
const (
	MsgNameTooShort     = "Names should be more than 2 "
	MsgNameInvalidChar  = "Invalid character in your name(s)"
	MsgEmailTooShort    = "Email should be more than 4 character "
	MsgEmailInvalidChar = "Invalid character in your email "
	MsgPasswordTooShort = "Password should be more than 6 character "
)

// rule is a pure predicate paired with the message surfaced when it fails.
type rule struct {
	ok      func(string) bool
	message string
}

var nameRules = []rule{
	{minLen(2), MsgNameTooShort},
	{alphabetic, MsgNameInvalidChar},
}

var emailRules = []rule{
	{minLen(4), MsgEmailTooShort},
	{emailCharset, MsgEmailInvalidChar},
}

var passwordRules = []rule{
	{minLen(6), MsgPasswordTooShort},
}

// ValidateSignup evaluates the signup field rules in their declared order:
// firstName, lastName, email, password, with each field's length rule ahead
// of its character-class rule. The first failing rule's message is returned;
// the empty string means every rule passed.
func ValidateSignup(firstName, lastName, email, password string) string {
	fields := []struct {
		value string
		rules []rule
	}{
		{firstName, nameRules},
		{lastName, nameRules},
		{email, emailRules},
		{password, passwordRules},
	}
	for _, f := range fields {
		for _, r := range f.rules {
			if !r.ok(f.value) {
				return r.message
			}
		}
	}
	return ""
}

func minLen(n int) func(string) bool {
	return func(s string) bool { return len([]rune(s)) >= n }
}

func alphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func emailCharset(s string) bool {
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
		case r == '@' || r == '.' || r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
