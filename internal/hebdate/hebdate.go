// Package hebdate renders Gregorian dates as Hebrew calendar labels
// (e.g. "י״ח באלול תשפ״ו") using the standard arithmetic calendar.
package hebdate

import (
	"strings"
	"time"
)

// epoch is the fixed day number of 1 Tishrei, year 1.
const epoch = -1373428

// Label returns the Hebrew date label for t, or "" when t is the zero time
// or predates the Gregorian era. It never panics and never errors; callers
// display the result as-is.
func Label(t time.Time) string {
	if t.IsZero() || t.Year() < 1 {
		return ""
	}
	year, monthName, day := fromFixed(fixedFromGregorian(t))
	return numeral(day) + " ב" + monthName + " " + numeral(year%1000)
}

// isLeapYear reports whether Hebrew year y has thirteen months.
func isLeapYear(y int) bool {
	return (7*y+1)%19 < 7
}

// elapsedDays returns the number of days from the Hebrew epoch to the mean
// new year of year y, adjusted for the four postponement rules.
func elapsedDays(y int) int {
	monthsElapsed := 235*((y-1)/19) + 12*((y-1)%19) + (7*((y-1)%19)+1)/19
	partsElapsed := 204 + 793*(monthsElapsed%1080)
	hoursElapsed := 5 + 12*monthsElapsed + 793*(monthsElapsed/1080) + partsElapsed/1080
	day := 1 + 29*monthsElapsed + hoursElapsed/24
	parts := (hoursElapsed%24)*1080 + partsElapsed%1080

	if parts >= 19440 ||
		(day%7 == 2 && parts >= 9924 && !isLeapYear(y)) ||
		(day%7 == 1 && parts >= 16789 && isLeapYear(y-1)) {
		day++
	}
	if r := day % 7; r == 0 || r == 3 || r == 5 {
		day++
	}
	return day
}

// newYear returns the fixed day number of 1 Tishrei of year y.
func newYear(y int) int {
	return epoch + elapsedDays(y)
}

// daysInYear returns the length of Hebrew year y (353-385 days).
func daysInYear(y int) int {
	return elapsedDays(y+1) - elapsedDays(y)
}

type monthInfo struct {
	name string
	days int
}

// yearMonths returns the months of year y in civil order (Tishrei first)
// with their lengths for that year.
func yearMonths(y int) []monthInfo {
	dy := daysInYear(y)
	heshvan := 29
	if dy%10 == 5 {
		heshvan = 30
	}
	kislev := 30
	if dy%10 == 3 {
		kislev = 29
	}
	months := []monthInfo{
		{"תשרי", 30},
		{"חשוון", heshvan},
		{"כסלו", kislev},
		{"טבת", 29},
		{"שבט", 30},
	}
	if isLeapYear(y) {
		months = append(months, monthInfo{"אדר א׳", 30}, monthInfo{"אדר ב׳", 29})
	} else {
		months = append(months, monthInfo{"אדר", 29})
	}
	return append(months,
		monthInfo{"ניסן", 30},
		monthInfo{"אייר", 29},
		monthInfo{"סיון", 30},
		monthInfo{"תמוז", 29},
		monthInfo{"אב", 30},
		monthInfo{"אלול", 29},
	)
}

// fixedFromGregorian returns the fixed day number of t's calendar date.
func fixedFromGregorian(t time.Time) int {
	y, m, d := t.Date()
	mi := int(m)
	abs := 365*(y-1) + (y-1)/4 - (y-1)/100 + (y-1)/400 + (367*mi-362)/12
	if mi > 2 {
		if gregorianLeap(y) {
			abs--
		} else {
			abs -= 2
		}
	}
	return abs + d
}

func gregorianLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// fromFixed converts a fixed day number to (Hebrew year, month name, day).
func fromFixed(abs int) (int, string, int) {
	year := (abs-epoch)/366 + 1
	for abs >= newYear(year+1) {
		year++
	}
	dayOfYear := abs - newYear(year) + 1
	for _, m := range yearMonths(year) {
		if dayOfYear <= m.days {
			return year, m.name, dayOfYear
		}
		dayOfYear -= m.days
	}
	// Unreachable: yearMonths always sums to daysInYear.
	return year, "אלול", 29
}

var (
	hundreds = []struct {
		v int
		s string
	}{{400, "ת"}, {300, "ש"}, {200, "ר"}, {100, "ק"}}
	tens = []string{"", "י", "כ", "ל", "מ", "נ", "ס", "ע", "פ", "צ"}
	ones = []string{"", "א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט"}
)

// numeral renders n (1-999) as Hebrew letters with geresh/gershayim
// punctuation. 15 and 16 use the traditional ט״ו and ט״ז forms.
func numeral(n int) string {
	if n <= 0 || n > 999 {
		return ""
	}
	var b strings.Builder
	for _, h := range hundreds {
		for n >= h.v {
			b.WriteString(h.s)
			n -= h.v
		}
	}
	switch n {
	case 15:
		b.WriteString("טו")
	case 16:
		b.WriteString("טז")
	default:
		b.WriteString(tens[n/10])
		b.WriteString(ones[n%10])
	}
	return punctuate(b.String())
}

// punctuate inserts gershayim before the final letter of a multi-letter
// numeral, or appends a geresh to a single letter.
func punctuate(s string) string {
	runes := []rune(s)
	if len(runes) == 1 {
		return s + "׳"
	}
	return string(runes[:len(runes)-1]) + "״" + string(runes[len(runes)-1:])
}
