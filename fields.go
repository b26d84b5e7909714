package regform

import (
	"strconv"
	"strings"
	"time"

	"github.com/dkotenko/regform/pkg/validator"
)

// Field identifiers of the registration form, in canonical registration
// order.
const (
	FieldFullName        = "fullName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldBirthDate       = "birthDate"
	FieldNationalID      = "nationalId"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldWebsite         = "website"
	FieldSalary          = "salary"
	FieldCountry         = "country"
	FieldGender          = "gender"
	FieldInterests       = "interests"
	FieldCV              = "cv"
	FieldComments        = "comments"
	FieldTerms           = "terms"
)

// CVMIMEType is the only accepted upload type for the CV field.
const CVMIMEType = "application/pdf"

// NewRegistrationRegistry builds the fixed rule set of the registration form.
// The clock supplies "today" for the birth-date boundaries and is read on
// every validation pass; a nil clock means time.Now. The registry must not be
// mutated after this call.
func NewRegistrationRegistry(limits Limits, clock func() time.Time) *Registry {
	if clock == nil {
		clock = time.Now
	}

	r := NewRegistry()

	r.Register(Descriptor{
		FieldID:  FieldFullName,
		Required: true,
		Validate: func(v Value, _ map[string]Value) string {
			name := strings.TrimSpace(v.Str())
			return validator.First(
				validator.Required(FieldFullName, name),
				validator.MinLen(FieldFullName, name, limits.MinNameLen),
				validator.LettersAndSpaces(FieldFullName, name),
				validator.MinWords(FieldFullName, name, 2),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldEmail,
		Required: true,
		Pattern:  validator.EmailPattern(),
		Validate: func(v Value, _ map[string]Value) string {
			return validator.First(
				validator.Required(FieldEmail, v.Str()),
				validator.ValidEmail(FieldEmail, v.Str()),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldPhone,
		Required: true,
		Pattern:  validator.PhoneECPattern(),
		Validate: func(v Value, _ map[string]Value) string {
			return validator.First(
				validator.Required(FieldPhone, v.Str()),
				validator.ValidPhoneEC(FieldPhone, v.Str()),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldBirthDate,
		Required: true,
		Validate: func(v Value, _ map[string]Value) string {
			raw := strings.TrimSpace(v.Str())
			if msg := validator.First(
				validator.Required(FieldBirthDate, raw),
			); msg != "" {
				return msg
			}
			date, ok := validator.ParseDate(raw)
			if !ok {
				return "must be a valid date"
			}
			// Check order is fixed: future, then unrealistically old,
			// then under age.
			now := clock()
			return validator.First(
				validator.NotFutureDateAt(FieldBirthDate, date, now),
				validator.MaxAgeAt(FieldBirthDate, date, now, limits.MaxAgeYears),
				validator.MinAgeAt(FieldBirthDate, date, now, limits.MinAge),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldNationalID,
		Required: true,
		Validate: func(v Value, _ map[string]Value) string {
			id := strings.TrimSpace(v.Str())
			return validator.First(
				validator.Required(FieldNationalID, id),
				validator.DigitString(FieldNationalID, id, 10),
				validator.CedulaProvince(FieldNationalID, id),
				validator.CedulaChecksum(FieldNationalID, id),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldPassword,
		Required: true,
		Validate: func(v Value, _ map[string]Value) string {
			return validator.First(
				validator.Required(FieldPassword, v.Str()),
				validator.MinLen(FieldPassword, v.Str(), limits.MinPasswordLen),
				validator.PasswordLowercase(FieldPassword, v.Str()),
				validator.PasswordUppercase(FieldPassword, v.Str()),
				validator.PasswordDigit(FieldPassword, v.Str()),
				validator.PasswordSpecialChar(FieldPassword, v.Str()),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldConfirmPassword,
		Required: true,
		Peers:    []string{FieldPassword},
		Validate: func(v Value, peers map[string]Value) string {
			return validator.First(
				validator.Required(FieldConfirmPassword, v.Str()),
				validator.PasswordMatch(FieldConfirmPassword, v.Str(), peers[FieldPassword].Str()),
			)
		},
	})

	r.Register(Descriptor{
		FieldID: FieldWebsite,
		Pattern: validator.WebsitePattern(),
		Validate: func(v Value, _ map[string]Value) string {
			site := strings.TrimSpace(v.Str())
			if site == "" {
				return ""
			}
			return validator.First(
				validator.ValidWebsite(FieldWebsite, site),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldSalary,
		Required: true,
		Validate: func(v Value, _ map[string]Value) string {
			raw := strings.TrimSpace(v.Str())
			if msg := validator.First(
				validator.Required(FieldSalary, raw),
				validator.ParseableNumber(FieldSalary, raw),
			); msg != "" {
				return msg
			}
			salary, _ := strconv.ParseFloat(raw, 64)
			return validator.First(
				validator.NotNegative(FieldSalary, salary),
				validator.MaxAmount(FieldSalary, salary, limits.MaxSalary),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldCountry,
		Required: true,
		Validate: func(v Value, _ map[string]Value) string {
			return validator.First(
				validator.RequiredChoice(FieldCountry, v.Str()),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldGender,
		Required: true,
		Validate: func(v Value, _ map[string]Value) string {
			return validator.First(
				validator.GroupSelected(FieldGender, v.Multi()),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldInterests,
		Required: true,
		Validate: func(v Value, _ map[string]Value) string {
			return validator.First(
				validator.MinSelected(FieldInterests, v.Multi(), limits.MinInterests),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldCV,
		Required: true,
		Validate: func(v Value, _ map[string]Value) string {
			meta, present := v.File()
			if msg := validator.First(
				validator.RequiredFile(FieldCV, present),
			); msg != "" {
				return msg
			}
			return validator.First(
				validator.FileMIMEType(FieldCV, meta.MIMEType, CVMIMEType),
				validator.MaxFileSize(FieldCV, meta.Size, limits.MaxCVBytes),
			)
		},
	})

	r.Register(Descriptor{
		FieldID: FieldComments,
		Validate: func(v Value, _ map[string]Value) string {
			if v.Str() == "" {
				return ""
			}
			return validator.First(
				validator.MaxLen(FieldComments, v.Str(), limits.MaxCommentsLen),
			)
		},
	})

	r.Register(Descriptor{
		FieldID:  FieldTerms,
		Required: true,
		Validate: func(v Value, _ map[string]Value) string {
			return validator.First(
				validator.Accepted(FieldTerms, v.Checked()),
			)
		},
	})

	return r
}
