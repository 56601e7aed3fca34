package verify

import (
	"regexp"
	"strings"
)

var (
	reSixteenDigits = regexp.MustCompile(`\b\d{16}\b`)
	reTwelveDigits  = regexp.MustCompile(`\d{12}`)
	rePANNumber     = regexp.MustCompile(`\b[A-Z]{5}\d{4}[A-Z]\b`)
	rePANExact      = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
)

// ExtractAadhaarNumber finds a 16-digit enrollment number in OCR text: either
// sixteen contiguous digits, or a 12-digit run immediately followed by four
// more digits once whitespace is stripped.
func ExtractAadhaarNumber(text string) string {
	replacer := strings.NewReplacer(" ", "", "\n", "", "\r", "")
	clean := replacer.Replace(text)

	if match := reSixteenDigits.FindString(clean); match != "" {
		return match
	}

	spaceless := strings.ReplaceAll(text, " ", "")
	for _, twelve := range reTwelveDigits.FindAllString(spaceless, -1) {
		extended := regexp.MustCompile(twelve + `\d{4}`)
		if match := extended.FindString(clean); match != "" {
			return match
		}
	}
	return ""
}

// ExtractPANNumber finds the 10-character PAN (5 letters, 4 digits, 1 letter).
func ExtractPANNumber(text string) string {
	return rePANNumber.FindString(text)
}

// ValidateAadhaarNumber reports whether the value is exactly 16 digits.
func ValidateAadhaarNumber(number string) bool {
	if len(number) != 16 {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidatePANNumber reports whether the value is exactly 10 characters in the
// 5-letters 4-digits 1-letter uppercase format.
func ValidatePANNumber(number string) bool {
	return rePANExact.MatchString(number)
}
