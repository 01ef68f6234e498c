// Package debuglog renders enriched errors for structured loggers. It
// does not own a logger or decide what is logged; it only turns an error's
// debug map into zap fields or logr key/values, in the map's order.
//
//	debuglog.LogZap(logger, "charge failed", err)
//	debuglog.LogLogr(log, "reconcile failed", err, bettererror.WithoutStack())
//
// Errors without an enriched error in their chain are logged with the error
// field only.
package debuglog

import (
	"errors"

	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	bettererror "github.com/xgx-io/xgx-better-error"
)

// Field names used alongside the debug entries.
const (
	FieldErrorName = "errorName"
	FieldDebugs    = "debugs"
)

func enriched(err error) (bettererror.Enriched, bool) {
	if err == nil {
		return nil, false
	}
	var en bettererror.Enriched
	if errors.As(err, &en) {
		return en, true
	}
	return nil, false
}

// debugsObject adapts a debug map to zapcore.ObjectMarshaler.
type debugsObject struct {
	debugs *bettererror.Debugs
}

func (d debugsObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for k, v := range d.debugs.All() {
		switch x := v.(type) {
		case string:
			enc.AddString(k, x)
		case bool:
			enc.AddBool(k, x)
		case int:
			enc.AddInt(k, x)
		case int64:
			enc.AddInt64(k, x)
		case float64:
			enc.AddFloat64(k, x)
		default:
			enc.AddString(k, bettererror.Stringify(v))
		}
	}
	return nil
}

// ZapFields returns the error field, followed, for enriched errors, by the
// error name and the debug map as a nested object.
func ZapFields(err error, opts ...bettererror.DebugOption) []zap.Field {
	if err == nil {
		return nil
	}
	fields := []zap.Field{zap.Error(err)}
	en, ok := enriched(err)
	if !ok {
		return fields
	}
	debugs := en.DebugsObjectWith(bettererror.ResolveDebugOptions(opts...))
	return append(fields,
		zap.String(FieldErrorName, en.Name()),
		zap.Object(FieldDebugs, debugsObject{debugs: debugs}),
	)
}

// LogZap logs err at error level with ZapFields.
func LogZap(l *zap.Logger, msg string, err error, opts ...bettererror.DebugOption) {
	if l == nil {
		return
	}
	l.Error(msg, ZapFields(err, opts...)...)
}

// KeysAndValues returns alternating keys and values for logr: the error name
// followed by every debug entry, flattened at the top level.
func KeysAndValues(err error, opts ...bettererror.DebugOption) []any {
	en, ok := enriched(err)
	if !ok {
		return nil
	}
	debugs := en.DebugsObjectWith(bettererror.ResolveDebugOptions(opts...))
	kv := make([]any, 0, 2+2*debugs.Len())
	kv = append(kv, FieldErrorName, en.Name())
	for k, v := range debugs.All() {
		kv = append(kv, k, v)
	}
	return kv
}

// LogLogr logs err through log.Error with KeysAndValues.
func LogLogr(log logr.Logger, msg string, err error, opts ...bettererror.DebugOption) {
	log.Error(err, msg, KeysAndValues(err, opts...)...)
}
