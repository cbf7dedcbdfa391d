package mathtool

import (
	"context"
	"fmt"
	"math"
	"strconv"
)

// Catalog returns the full tool set in presentation order: basic
// arithmetic, advanced operations, then number theory. Each call
// returns fresh Definition values, so callers can register them
// without sharing state.
func Catalog() []Definition {
	return []Definition{
		// Basic arithmetic.
		{
			Name:        "add",
			Description: "Add two numbers together. Returns the sum of a and b.",
			Params: []Param{
				{Name: "a", Type: Real, Description: "First number"},
				{Name: "b", Type: Real, Description: "Second number"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				return resultReal(Add(args.Real("a"), args.Real("b"))), nil
			},
		},
		{
			Name:        "subtract",
			Description: "Subtract the second number from the first number. Returns the difference (a - b).",
			Params: []Param{
				{Name: "a", Type: Real, Description: "First number"},
				{Name: "b", Type: Real, Description: "Second number"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				return resultReal(Subtract(args.Real("a"), args.Real("b"))), nil
			},
		},
		{
			Name:        "multiply",
			Description: "Multiply two numbers together. Returns the product of a and b.",
			Params: []Param{
				{Name: "a", Type: Real, Description: "First number"},
				{Name: "b", Type: Real, Description: "Second number"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				return resultReal(Multiply(args.Real("a"), args.Real("b"))), nil
			},
		},
		{
			Name:        "divide",
			Description: "Divide the first number by the second number. Returns the quotient (a / b). Fails for division by zero.",
			Params: []Param{
				{Name: "a", Type: Real, Description: "Numerator"},
				{Name: "b", Type: Real, Description: "Denominator"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				v, err := Divide(args.Real("a"), args.Real("b"))
				if err != nil {
					return "", err
				}
				return resultReal(v), nil
			},
		},

		// Advanced operations.
		{
			Name:        "power",
			Description: "Raise a number to the power of another number. Returns base raised to the power of exponent.",
			Params: []Param{
				{Name: "base", Type: Real, Description: "Base number"},
				{Name: "exponent", Type: Real, Description: "Exponent"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				v, err := Power(args.Real("base"), args.Real("exponent"))
				if err != nil {
					return "", err
				}
				return resultReal(v), nil
			},
		},
		{
			Name:        "sqrt",
			Description: "Calculate the square root of a number. The input must be non-negative.",
			Params: []Param{
				{Name: "x", Type: Real, Description: "Number to find square root of (must be non-negative)", Check: NonNegative},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				v, err := Sqrt(args.Real("x"))
				if err != nil {
					return "", err
				}
				return resultReal(v), nil
			},
		},
		{
			Name:        "logarithm",
			Description: "Calculate the logarithm of a number with a specified base. Defaults to the natural logarithm.",
			Params: []Param{
				{Name: "x", Type: Real, Description: "Number to find logarithm of (must be positive)", Check: Positive},
				{Name: "base", Type: Real, Description: "Base of the logarithm (default: e for natural log)", Optional: true, Default: math.E},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				v, err := Logarithm(args.Real("x"), args.Real("base"))
				if err != nil {
					return "", err
				}
				return resultReal(v), nil
			},
		},
		{
			Name:        "absolute",
			Description: "Calculate the absolute value of a number.",
			Params: []Param{
				{Name: "x", Type: Real, Description: "Number to find absolute value of"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				return resultReal(Absolute(args.Real("x"))), nil
			},
		},
		{
			Name:        "modulo",
			Description: "Calculate the remainder when a is divided by b.",
			Params: []Param{
				{Name: "a", Type: Real, Description: "Dividend"},
				{Name: "b", Type: Real, Description: "Divisor"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				v, err := Modulo(args.Real("a"), args.Real("b"))
				if err != nil {
					return "", err
				}
				return resultReal(v), nil
			},
		},

		// Number theory.
		{
			Name:        "factorial",
			Description: "Calculate the factorial of a non-negative integer.",
			Params: []Param{
				{Name: "n", Type: Integer, Description: "Non-negative integer to calculate factorial of", Check: NonNegative},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				v, err := Factorial(args.Int("n"))
				if err != nil {
					return "", err
				}
				return "Result: " + v.String(), nil
			},
		},
		{
			Name:        "gcd",
			Description: "Calculate the greatest common divisor of two integers.",
			Params: []Param{
				{Name: "a", Type: Integer, Description: "First integer"},
				{Name: "b", Type: Integer, Description: "Second integer"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				return "Result: " + strconv.FormatInt(GCD(args.Int("a"), args.Int("b")), 10), nil
			},
		},
		{
			Name:        "lcm",
			Description: "Calculate the least common multiple of two integers.",
			Params: []Param{
				{Name: "a", Type: Integer, Description: "First integer"},
				{Name: "b", Type: Integer, Description: "Second integer"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				v, err := LCM(args.Int("a"), args.Int("b"))
				if err != nil {
					return "", err
				}
				return "Result: " + v.String(), nil
			},
		},
		{
			Name:        "is_prime",
			Description: "Check if a number is prime. Values below 2 are not prime.",
			Params: []Param{
				{Name: "n", Type: Integer, Description: "Integer to check for primality"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				n := args.Int("n")
				prime, divisor := IsPrime(n)
				switch {
				case prime:
					return fmt.Sprintf("%d is prime", n), nil
				case divisor != 0:
					return fmt.Sprintf("%d is not prime (divisible by %d)", n, divisor), nil
				default:
					return fmt.Sprintf("%d is not prime", n), nil
				}
			},
		},
		{
			Name:        "is_even",
			Description: "Check if a number is even.",
			Params: []Param{
				{Name: "n", Type: Integer, Description: "Integer to check"},
			},
			Handler: func(_ context.Context, args Args) (string, error) {
				n := args.Int("n")
				if IsEven(n) {
					return fmt.Sprintf("%d is even", n), nil
				}
				return fmt.Sprintf("%d is odd", n), nil
			},
		},
	}
}

func resultReal(v float64) string {
	return "Result: " + formatReal(v)
}
