// Package main demonstrates usage of the better-error packages.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	bettererror "github.com/xgx-io/xgx-better-error"
	"github.com/xgx-io/xgx-better-error/debuglog"
	"github.com/xgx-io/xgx-better-error/result"
)

func main() {
	logger := zap.NewExample()
	defer func() { _ = logger.Sync() }()
	bettererror.SetLogger(logger)

	// Combine fallible steps: the first failure wins.
	port := result.RunAndCapture(func() (int, error) { return strconv.Atoi("80a") })
	host := result.Ok("db.internal")
	addr := result.Multiple3(port, host, result.Ok("db.internal:80"))

	if err := addr.Err(); err != nil {
		// Wrap the failure with diagnostic context.
		cfgErr := bettererror.Wrap(err, "invalid database address",
			bettererror.WithName("configError"),
			bettererror.WithDebug("host", host.Value()),
			bettererror.WithAutoGenerateID(),
		)
		outer := bettererror.New("service startup failed",
			bettererror.WithOriginalError(cfgErr),
			bettererror.WithDebug("service", "billing"),
		)

		fmt.Println(outer.FullMessage())
		for k, v := range outer.DebugString(bettererror.WithoutStack(), bettererror.WithoutOriginalErrorStack()).All() {
			fmt.Printf("  %s = %s\n", k, v)
		}

		debuglog.LogZap(logger, "startup aborted", outer, bettererror.WithoutStack())
		fmt.Println("same identity:", bettererror.IDOf(outer) == cfgErr.ID())
		fmt.Println("is strconv error:", errors.Is(outer, strconv.ErrSyntax))
	}

	// A panic inside a captured function becomes a failed Result.
	r := result.Capture(func() int { panic("boom") })
	fmt.Println("captured:", r.Err())
}
