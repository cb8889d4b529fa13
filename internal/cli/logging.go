package cli

import (
	"context"
	"io"

	"github.com/palantir/witchcraft-go-logging/wlog"
	"github.com/palantir/witchcraft-go-logging/wlog/svclog/svc1log"
)

// withLogger attaches a JSON service logger writing to w. Debug lines, such as
// the per-request ones emitted by the client runtime, need verbose.
func withLogger(ctx context.Context, w io.Writer, verbose bool) context.Context {
	level := wlog.InfoLevel
	if verbose {
		level = wlog.DebugLevel
	}
	logger := svc1log.NewFromCreator(w, level, wlog.NewJSONMarshalLoggerProvider().NewLeveledLogger)
	return svc1log.WithLogger(ctx, logger)
}
