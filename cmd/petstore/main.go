package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/palantir/witchcraft-go-logging/wlog"

	"github.com/mark3labs/petstore-client/internal/cli"
)

func main() {
	wlog.SetDefaultLoggerProvider(wlog.NewJSONMarshalLoggerProvider())

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
