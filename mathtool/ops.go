package mathtool

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// MaxFactorial bounds factorial input so a single call cannot grow
// without limit. 10000! has roughly 35,660 digits and still computes
// in well under a millisecond.
const MaxFactorial = 10000

// Add returns the sum of a and b.
func Add(a, b float64) float64 { return a + b }

// Subtract returns a minus b.
func Subtract(a, b float64) float64 { return a - b }

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 { return a * b }

// Divide returns a divided by b. Fails when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: parameter %q must be non-zero", ErrDivisionByZero, "b")
	}
	return a / b, nil
}

// Power returns base raised to exponent. A negative base with a
// fractional exponent has no real result, and zero cannot be raised
// to a negative exponent.
func Power(base, exponent float64) (float64, error) {
	if base == 0 && exponent < 0 {
		return 0, fmt.Errorf("%w: zero cannot be raised to a negative exponent", ErrDivisionByZero)
	}
	if base < 0 && exponent != math.Trunc(exponent) {
		return 0, fmt.Errorf("%w: negative base %s with fractional exponent %s has no real result",
			ErrInvalidArgument, formatReal(base), formatReal(exponent))
	}
	return math.Pow(base, exponent), nil
}

// Sqrt returns the principal square root of x. x must be non-negative.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: parameter %q must be non-negative, got %s", ErrInvalidArgument, "x", formatReal(x))
	}
	return math.Sqrt(x), nil
}

// Logarithm returns the logarithm of x in the given base. x must be
// positive; base must be positive and not equal to 1.
func Logarithm(x, base float64) (float64, error) {
	if x <= 0 {
		return 0, fmt.Errorf("%w: parameter %q must be positive, got %s", ErrInvalidArgument, "x", formatReal(x))
	}
	if base <= 0 || base == 1 {
		return 0, fmt.Errorf("%w: parameter %q must be positive and not equal to 1, got %s",
			ErrInvalidArgument, "base", formatReal(base))
	}
	return math.Log(x) / math.Log(base), nil
}

// Absolute returns |x|.
func Absolute(x float64) float64 { return math.Abs(x) }

// Modulo returns the remainder of a divided by b using truncated
// division, so the result keeps the sign of a. Fails when b is zero.
func Modulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: parameter %q must be non-zero", ErrDivisionByZero, "b")
	}
	return math.Mod(a, b), nil
}

// Factorial returns n! exactly. n must be in [0, MaxFactorial].
func Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: parameter %q must be non-negative, got %d", ErrInvalidArgument, "n", n)
	}
	if n > MaxFactorial {
		return nil, fmt.Errorf("%w: parameter %q must not exceed %d, got %d", ErrOutOfRange, "n", MaxFactorial, n)
	}
	return new(big.Int).MulRange(1, n), nil
}

// GCD returns the greatest common divisor of a and b, always
// non-negative. gcd(0, x) = |x| and gcd(0, 0) = 0.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// LCM returns the least common multiple of a and b exactly, using
// big.Int so |a*b| cannot overflow. lcm(0, 0) is undefined.
func LCM(a, b int64) (*big.Int, error) {
	if a == 0 && b == 0 {
		return nil, fmt.Errorf("%w: lcm(0, 0) is undefined", ErrUndefinedResult)
	}
	product := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	product.Abs(product)
	return product.Div(product, big.NewInt(GCD(a, b))), nil
}

// IsPrime reports whether n is prime, by trial division. For composite
// n it also returns the smallest divisor found; values below 2 are not
// prime and carry no divisor.
func IsPrime(n int64) (prime bool, divisor int64) {
	if n < 2 {
		return false, 0
	}
	if n == 2 {
		return true, 0
	}
	if n%2 == 0 {
		return false, 2
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false, i
		}
	}
	return true, 0
}

// IsEven reports whether n is divisible by two.
func IsEven(n int64) bool { return n%2 == 0 }

// formatReal renders v with the shortest representation that parses
// back exactly, so whole values print without a trailing ".0".
func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
