package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive range of UTC calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange resolves the required "start" and "end" query parameters into
// a DateRange. Both must be bare YYYY-MM-DD dates; they are normalized to
// midnight UTC. A range with start after end is legal and simply enumerates no
// days. Missing or malformed parameters wrap ErrBadRequest.
func ParseDateRange(params map[string]string) (DateRange, error) {
	start, err := requireDate(params, "start")
	if err != nil {
		return DateRange{}, err
	}
	end, err := requireDate(params, "end")
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: start, End: end}, nil
}

func requireDate(params map[string]string, key string) (time.Time, error) {
	raw, ok := params[key]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: missing %q parameter", ErrBadRequest, key)
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrBadRequest, raw)
	}
	return t.UTC(), nil
}

// Days enumerates one UTC midnight per calendar day from Start to End
// inclusive. An inverted range yields an empty slice.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
