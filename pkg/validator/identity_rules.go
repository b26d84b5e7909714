package validator

// Ecuadorian cédula de identidad: ten decimal digits where the first two
// encode the issuing province (01-24), the next seven are a sequence number,
// and the tenth is a verification digit computed with the "módulo 10"
// weighted checksum.

const (
	cedulaLength      = 10
	cedulaMinProvince = 1
	cedulaMaxProvince = 24
)

// cedulaChecksum computes the expected verification digit for the first nine
// digits. Digits at even indexes are doubled; products above 9 drop 9. The
// verifier is the distance from the digit sum to the next multiple of ten.
func cedulaChecksum(digits []int) int {
	sum := 0
	for i, d := range digits[:9] {
		p := d
		if i%2 == 0 {
			p *= 2
			if p > 9 {
				p -= 9
			}
		}
		sum += p
	}
	if sum%10 == 0 {
		return 0
	}
	return 10 - sum%10
}

func cedulaDigits(value string) ([]int, bool) {
	if len(value) != cedulaLength {
		return nil, false
	}
	digits := make([]int, cedulaLength)
	for i, r := range value {
		if r < '0' || r > '9' {
			return nil, false
		}
		digits[i] = int(r - '0')
	}
	return digits, true
}

// CedulaProvince validates that the first two digits encode a real province.
// Values that are not ten digits long fail here too; compose DigitString
// ahead of this rule for a more specific message.
func CedulaProvince(field, value string) Rule {
	return Rule{
		Check: func() bool {
			digits, ok := cedulaDigits(value)
			if !ok {
				return false
			}
			province := digits[0]*10 + digits[1]
			return province >= cedulaMinProvince && province <= cedulaMaxProvince
		},
		Error: ValidationError{
			Field:   field,
			Message: "province code is not valid",
		},
	}
}

// CedulaChecksum validates the verification digit.
func CedulaChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			digits, ok := cedulaDigits(value)
			if !ok {
				return false
			}
			return cedulaChecksum(digits) == digits[9]
		},
		Error: ValidationError{
			Field:   field,
			Message: "identification number is not valid",
		},
	}
}
