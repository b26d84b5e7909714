package regform

import "github.com/dkotenko/regform/pkg/config"

// Limits are the tunable thresholds of the registration rule set. The zero
// value is not useful; start from DefaultLimits or LoadLimits.
type Limits struct {
	MinNameLen     int     `env:"REGFORM_MIN_NAME_LEN" envDefault:"2"`
	MinAge         int     `env:"REGFORM_MIN_AGE" envDefault:"18"`
	MaxAgeYears    int     `env:"REGFORM_MAX_AGE_YEARS" envDefault:"100"`
	MinPasswordLen int     `env:"REGFORM_MIN_PASSWORD_LEN" envDefault:"8"`
	MaxSalary      float64 `env:"REGFORM_MAX_SALARY" envDefault:"1000000"`
	MinInterests   int     `env:"REGFORM_MIN_INTERESTS" envDefault:"2"`
	MaxCVBytes     int64   `env:"REGFORM_MAX_CV_BYTES" envDefault:"5242880"`
	MaxCommentsLen int     `env:"REGFORM_MAX_COMMENTS_LEN" envDefault:"500"`
}

// DefaultLimits returns the stock thresholds without consulting the
// environment.
func DefaultLimits() Limits {
	return Limits{
		MinNameLen:     2,
		MinAge:         18,
		MaxAgeYears:    100,
		MinPasswordLen: 8,
		MaxSalary:      1_000_000,
		MinInterests:   2,
		MaxCVBytes:     5_242_880,
		MaxCommentsLen: 500,
	}
}

// LoadLimits reads thresholds from the environment (and an optional .env
// file), falling back to the defaults above.
func LoadLimits() (Limits, error) {
	var l Limits
	if err := config.Load(&l); err != nil {
		return Limits{}, err
	}
	return l, nil
}
