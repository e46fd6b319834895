package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Student code pattern: HS followed by 6 digits
	StudentCodePattern = `^HS\d{6}$`

	// Phone pattern: 9-11 digits, optional leading zero kept
	PhonePattern = `^0?\d{9,10}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email       *regexp.Regexp
	StudentCode *regexp.Regexp
	Phone       *regexp.Regexp
}{
	Email:       regexp.MustCompile(EmailPattern),
	StudentCode: regexp.MustCompile(StudentCodePattern),
	Phone:       regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether the string is an acceptable email address
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidStudentCode reports whether the string matches the school issued format
func IsValidStudentCode(code string) bool {
	return CompiledPatterns.StudentCode.MatchString(code)
}

// IsValidPhone reports whether the string is an acceptable phone number
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}
