package form

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/helpdesk/internal/entity"
)

const (
	FieldUserName      = "user_name"
	FieldUserEmail     = "user_email"
	FieldUserPhone     = "user_phone"
	FieldDepartment    = "department"
	FieldIssueCategory = "issue_category"
	FieldPriority      = "priority"
	FieldSubject       = "subject"
	FieldDescription   = "description"
)

// Fields lists the submission form fields in display order.
var Fields = []string{
	FieldUserName,
	FieldUserEmail,
	FieldUserPhone,
	FieldDepartment,
	FieldIssueCategory,
	FieldPriority,
	FieldSubject,
	FieldDescription,
}

const (
	MsgRequired = "This field is required"
	MsgEmail    = "Please enter a valid email address"
	MsgPhone    = "Please enter a valid phone number (at least 10 digits)"
	MsgPriority = "Please select a valid priority"

	minPhoneDigits = 10
	maxPhoneLength = 20
)

// whitespace matches what browsers treat as \s: ASCII space characters,
// vertical tab, every Unicode separator and the byte order mark.
const whitespace = `\s\x{0B}\p{Z}\x{FEFF}`

// phoneChars is the set of characters a phone number may contain.
const phoneChars = `\d` + whitespace + `\+\-\(\)`

var (
	emailRegex = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`)
	phoneRegex = regexp.MustCompile(`^[` + phoneChars + `]{10,20}$`)
)

var required = v.Required.Error(MsgRequired)

// fieldRules is shared by whole-form and single-field validation.
var fieldRules = map[string][]v.Rule{
	FieldUserName:      {required},
	FieldUserEmail:     {required, v.Match(emailRegex).Error(MsgEmail)},
	FieldUserPhone:     {v.By(validatePhone)},
	FieldDepartment:    nil,
	FieldIssueCategory: {required},
	FieldPriority:      {required, v.By(validatePriority)},
	FieldSubject:       {required},
	FieldDescription:   {required},
}

// IsRequired reports whether the field must be non-empty.
func IsRequired(field string) bool {
	for _, r := range fieldRules[field] {
		if _, ok := r.(v.RequiredRule); ok {
			return true
		}
	}
	return false
}

// ValidateTicketInsert trims the record in place and validates every field.
func ValidateTicketInsert(t *entity.TicketInsert) error {
	*t = t.Trim()
	return ValidateStruct(t,
		v.Field(&t.UserName, fieldRules[FieldUserName]...),
		v.Field(&t.UserEmail, fieldRules[FieldUserEmail]...),
		v.Field(&t.UserPhone, fieldRules[FieldUserPhone]...),
		v.Field(&t.Department, fieldRules[FieldDepartment]...),
		v.Field(&t.IssueCategory, fieldRules[FieldIssueCategory]...),
		v.Field(&t.Priority, fieldRules[FieldPriority]...),
		v.Field(&t.Subject, fieldRules[FieldSubject]...),
		v.Field(&t.Description, fieldRules[FieldDescription]...),
	)
}

// ValidateField validates a single field value, as done when a field loses focus.
func ValidateField(field, value string) error {
	rules, ok := fieldRules[field]
	if !ok {
		return nil
	}
	return v.Validate(strings.TrimSpace(value), rules...)
}

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidPhone reports whether a non-empty phone value is acceptable.
func ValidPhone(s string) bool {
	return phoneRegex.MatchString(s) && countDigits(s) >= minPhoneDigits
}

func validatePhone(value interface{}) error {
	s := stringValue(value)
	if s == "" {
		return nil
	}
	if !ValidPhone(s) {
		return errors.New(MsgPhone)
	}
	return nil
}

func validatePriority(value interface{}) error {
	s := stringValue(value)
	if s == "" {
		return nil
	}
	for _, p := range entity.TicketPriorities {
		if string(p) == s {
			return nil
		}
	}
	return errors.New(MsgPriority)
}

// SanitizePhone keeps only digits, spaces, '+', '-' and parentheses and
// caps the value at 20 characters.
func SanitizePhone(s string) string {
	s = govalidator.WhiteList(s, phoneChars)
	if utf8.RuneCountInString(s) > maxPhoneLength {
		s = string([]rune(s)[:maxPhoneLength])
	}
	return s
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func stringValue(value interface{}) string {
	switch x := value.(type) {
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case entity.TicketPriority:
		return string(x)
	case *entity.TicketPriority:
		if x == nil {
			return ""
		}
		return string(*x)
	}
	return ""
}
