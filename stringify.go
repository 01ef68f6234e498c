package bettererror

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"

	"go.uber.org/zap"

	"github.com/xgx-io/xgx-better-error/internal/coerce"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks a debug value that was deliberately left unset. It
// stringifies to "undefined", as opposed to nil which stringifies to "null".
var Undefined fmt.Stringer = undefined{}

// unknownValue is returned when a value cannot be rendered.
const unknownValue = "unknown"

// Stringify renders an arbitrary debug value:
//
//	nil (or a typed nil)      → "null"
//	Undefined                 → "undefined"
//	string                    → the string wrapped in double quotes
//	integers, floats, big.Int → decimal text
//	bool                      → "true" / "false"
//	func                      → the function's name
//	error                     → its Error() text
//	anything else             → its JSON encoding
//
// Values that fail to encode (cycles, channels) render as "unknown".
func Stringify(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			logger().Debug("failed to stringify debug value",
				zap.String("type", fmt.Sprintf("%T", v)),
				zap.Any("panic", r),
			)
			s = unknownValue
		}
	}()

	if coerce.IsNil(v) {
		return "null"
	}
	switch x := v.(type) {
	case undefined:
		return x.String()
	case string:
		return `"` + x + `"`
	case bool:
		return strconv.FormatBool(x)
	case error:
		return x.Error()
	}
	if n, ok := coerce.Number(v); ok {
		return n
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return `"` + rv.String() + `"`
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	case reflect.Func:
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
			return fn.Name()
		}
		return rv.Type().String()
	}

	out, err := coerce.JSON(v)
	if err != nil {
		logger().Debug("failed to stringify debug value",
			zap.String("type", fmt.Sprintf("%T", v)),
			zap.Error(err),
		)
		return unknownValue
	}
	return out
}
