// Package mathtool provides the arithmetic and number-theory tool set
// served over MCP: pure functions, declared parameter schemas, and a
// fixed catalog of tool definitions.
//
// Every tool is a stateless function over numeric inputs. Validation
// happens in two layers: CoerceArgs checks each argument against its
// declared Param (type, presence, predicate) before anything computes,
// and the exported functions guard their own domains so they stay safe
// when called directly.
//
// Failures wrap one of four sentinel errors — ErrInvalidArgument,
// ErrDivisionByZero, ErrOutOfRange, ErrUndefinedResult — and always
// name the violated constraint and parameter:
//
//	_, err := mathtool.Sqrt(-4)
//	errors.Is(err, mathtool.ErrInvalidArgument) // true
//
// Catalog returns the full tool set ready for registration:
//
//	for _, def := range mathtool.Catalog() {
//	    _ = reg.Register(def)
//	}
//
// Exact results: factorial and lcm are computed with math/big, so
// factorial(170) does not fall off the float64 cliff and lcm cannot
// overflow int64.
package mathtool
