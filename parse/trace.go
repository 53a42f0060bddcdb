package parse

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("parse")

// Trace passes rule through unchanged and logs its entry offset and
// outcome at debug level under the "parse" logger. Without a configured
// logging backend the calls are no-ops, so rules can stay wrapped in
// production code.
func Trace[C Cursor[C], O any](name string, rule Rule[C, O]) Rule[C, O] {
	return func(in C) Result[C, O] {
		log.Debugf("%s: enter at offset %d", name, in.Offset())
		res := rule(in)
		switch res.kind {
		case KindComplete, KindIncomplete:
			log.Debugf("%s: %s at offset %d", name, res.kind, res.rest.Offset())
		default:
			log.Debugf("%s: %s at %s: %s", name, res.kind, res.err.Position(), res.err.Message())
		}
		return res
	}
}
