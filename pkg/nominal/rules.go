package nominal

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Numeric covers the built-in numeric kinds and their defined types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Prebuilt guards for common nominal types. Each performs a single
// validate-or-reject check; compose richer checks in a custom validator.

// NonEmpty rejects strings that are empty or whitespace-only.
func NonEmpty[T ~string]() Guard[T] {
	return New(func(v T) error {
		if strings.TrimSpace(string(v)) == "" {
			return errors.New("must not be empty")
		}
		return nil
	})
}

// MinLen rejects strings shorter than n bytes.
func MinLen[T ~string](n int) Guard[T] {
	return New(func(v T) error {
		if len(v) < n {
			return fmt.Errorf("must be at least %d characters", n)
		}
		return nil
	})
}

// MaxLen rejects strings longer than n bytes.
func MaxLen[T ~string](n int) Guard[T] {
	return New(func(v T) error {
		if len(v) > n {
			return fmt.Errorf("must be at most %d characters", n)
		}
		return nil
	})
}

// Matches rejects strings not matched by the given pattern.
func Matches[T ~string](re *regexp.Regexp) Guard[T] {
	if re == nil {
		panic(ErrNilValidator)
	}
	return New(func(v T) error {
		if !re.MatchString(string(v)) {
			return fmt.Errorf("must match pattern %s", re.String())
		}
		return nil
	})
}

// Email validates addresses for typical web use: parseable by net/mail,
// a single non-empty local part, and a dotted domain.
func Email[T ~string]() Guard[T] {
	return New(func(v T) error {
		value := string(v)
		if strings.TrimSpace(value) == "" {
			return errors.New("must not be empty")
		}

		addr, err := mail.ParseAddress(value)
		if err != nil {
			return errors.New("must be a valid email address")
		}

		parts := strings.Split(addr.Address, "@")
		if len(parts) != 2 || parts[0] == "" {
			return errors.New("must be a valid email address")
		}

		domain := parts[1]
		if !strings.Contains(domain, ".") ||
			strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return errors.New("must be a valid email address")
		}
		return nil
	})
}

// UUID validates the standard 36-character UUID format.
func UUID[T ~string]() Guard[T] {
	return New(func(v T) error {
		value := string(v)

		// Fast rejection: check length and hyphen positions before parsing
		if len(value) != 36 {
			return errors.New("must be a valid UUID")
		}
		if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return errors.New("must be a valid UUID")
		}

		if _, err := uuid.Parse(value); err != nil {
			return errors.New("must be a valid UUID")
		}
		return nil
	})
}

// Range rejects values outside [min, max].
func Range[T Numeric](min, max T) Guard[T] {
	return New(func(v T) error {
		if v < min || v > max {
			return fmt.Errorf("must be between %v and %v", min, max)
		}
		return nil
	})
}

// Positive rejects values that are zero or negative.
func Positive[T Numeric]() Guard[T] {
	return New(func(v T) error {
		if v <= 0 {
			return errors.New("must be positive")
		}
		return nil
	})
}

// NonNegative rejects negative values.
func NonNegative[T Numeric]() Guard[T] {
	return New(func(v T) error {
		if v < 0 {
			return errors.New("must not be negative")
		}
		return nil
	})
}

// OneOf rejects values not in the allowed set.
func OneOf[T comparable](allowed ...T) Guard[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return New(func(v T) error {
		if _, ok := set[v]; !ok {
			return errors.New("must be one of the allowed values")
		}
		return nil
	})
}
