package common

import (
	"time"

	"github.com/fundwit/go-commons/types"
)

// TimestampOf converts t into a types.Timestamp, keeping microsecond precision.
func TimestampOf(t time.Time) types.Timestamp {
	var ts types.Timestamp
	if t.IsZero() {
		return ts
	}
	if err := ts.UnmarshalText([]byte(t.Round(time.Microsecond).Format(time.RFC3339Nano))); err != nil {
		panic(err)
	}
	return ts
}
