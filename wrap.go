// wrap.go — adapters that bring arbitrary errors into the enriched model.
package bettererror

// Wrap creates a BaseError with message whose original error is err. Options
// are applied after the original error is recorded. A nil err yields a plain
// BaseError.
//
// Example:
//
//	if err := db.Ping(ctx); err != nil {
//	    return bettererror.Wrap(err, "database unavailable", bettererror.WithDebug("dsn", dsn))
//	}
func Wrap(err error, message string, opts ...Option) *BaseError {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithOriginalError(err))
	all = append(all, opts...)
	return build(message, all, 1)
}

// From converts any error into a *BaseError without adding policy.
//   - nil → nil
//   - *BaseError → returned as-is
//   - other error → a new BaseError whose message is err.Error() and whose
//     original error is err; the stack is captured at the caller of From
func From(err error) *BaseError {
	if err == nil {
		return nil
	}
	if be, ok := err.(*BaseError); ok {
		return be
	}
	return build(err.Error(), []Option{WithOriginalError(err)}, 1)
}
