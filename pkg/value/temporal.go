package value

import "time"

// Temporal values are normalized at construction so that equality and
// hashing can compare instants.
//
//   - Date keeps the calendar day at midnight UTC.
//   - Time keeps the wall clock on 0001-01-01 UTC.
//   - DateTime keeps the wall clock in UTC, dropping the zone.
//   - DateTimeUTC converts to UTC.
//   - DateTimeLocal converts to time.Local.
//   - DateTimeWithTimeZone keeps the instant and its offset.

// Date builds a calendar date.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, ext: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// TimeOfDay builds a wall-clock time.
func TimeOfDay(t time.Time) Value {
	return Value{kind: KindTime, ext: time.Date(1, 1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// DateTime builds a timestamp without zone.
func DateTime(t time.Time) Value {
	return Value{kind: KindDateTime, ext: naive(t)}
}

// DateTimeUTC builds a timestamp in UTC.
func DateTimeUTC(t time.Time) Value {
	return Value{kind: KindDateTimeUTC, ext: t.UTC()}
}

// DateTimeLocal builds a timestamp in the local zone.
func DateTimeLocal(t time.Time) Value {
	return Value{kind: KindDateTimeLocal, ext: t.Local()}
}

// DateTimeWithTimeZone builds a timestamp with a fixed offset.
func DateTimeWithTimeZone(t time.Time) Value {
	_, off := t.Zone()
	return Value{kind: KindDateTimeWithTimeZone, ext: t.In(time.FixedZone("", off))}
}

func naive(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Layouts used by the default inline formatter. Fractions are written only
// when non-zero.
const (
	LayoutDate     = "2006-01-02"
	LayoutTime     = "15:04:05"
	LayoutDateTime = "2006-01-02 15:04:05"
)

// FormatTemporal renders a temporal value without quotes: dates as
// YYYY-MM-DD, times as HH:MM:SS[.ffffff], naive timestamps as
// YYYY-MM-DD HH:MM:SS[.ffffff] and zoned timestamps with a trailing
// ±HH:MM offset. withOffset=false drops the offset of zoned kinds.
func FormatTemporal(v Value, withOffset bool) string {
	t, ok := v.ext.(time.Time)
	if !ok {
		return ""
	}
	switch v.kind {
	case KindDate:
		return t.Format(LayoutDate)
	case KindTime:
		return t.Format(LayoutTime) + fraction(t)
	case KindDateTime:
		return t.Format(LayoutDateTime) + fraction(t)
	default:
		s := t.Format(LayoutDateTime) + fraction(t)
		if withOffset {
			s += " " + t.Format("-07:00")
		}
		return s
	}
}

func fraction(t time.Time) string {
	us := t.Nanosecond() / 1000
	if us == 0 {
		return ""
	}
	b := []byte(".000000")
	for i := 6; i > 0; i-- {
		b[i] = byte('0' + us%10)
		us /= 10
	}
	return string(b)
}
