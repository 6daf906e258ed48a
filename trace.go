package pseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'pseq'.
func trace() tracing.Trace {
	return tracing.Select("pseq")
}
