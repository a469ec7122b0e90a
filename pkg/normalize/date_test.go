package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		opts []ParseOption
		want string
		prec Precision
	}{
		{
			name: "iso day",
			raw:  "1991-10-21",
			want: "21-Oct-1991",
			prec: PrecisionFull,
		},
		{
			name: "canonical day passes through",
			raw:  "26-Jul-2024",
			want: "26-Jul-2024",
			prec: PrecisionFull,
		},
		{
			name: "spelled out day",
			raw:  "24 November 1873",
			want: "24-Nov-1873",
			prec: PrecisionFull,
		},
		{
			name: "two digit year with reference",
			raw:  "04-Apr-49",
			opts: []ParseOption{WithReferenceYear(1972)},
			want: "04-Apr-1949",
			prec: PrecisionFull,
		},
		{
			name: "two digit year crossing century boundary",
			raw:  "04-Apr-49",
			opts: []ParseOption{WithReferenceYear(1948)},
			want: "04-Apr-1849",
			prec: PrecisionFull,
		},
		{
			name: "two digit year without reference is rejected",
			raw:  "04-Apr-49",
			want: "",
			prec: PrecisionNone,
		},
		{
			name: "month and two digit year with reference",
			raw:  "Dec-67",
			opts: []ParseOption{WithReferenceYear(1988)},
			want: "01-Dec-1967",
			prec: PrecisionFull,
		},
		{
			name: "month and two digit year without reference is rejected",
			raw:  "Dec-67",
			want: "",
			prec: PrecisionNone,
		},
		{
			name: "day and month with default year",
			raw:  "6 April",
			opts: []ParseOption{WithDefaultYear(1896)},
			want: "06-Apr-1896",
			prec: PrecisionFull,
		},
		{
			name: "day and month without default year is rejected",
			raw:  "6 April",
			want: "",
			prec: PrecisionNone,
		},
		{
			name: "month and year pins to first of month",
			raw:  "July 1882",
			want: "01-Jul-1882",
			prec: PrecisionFull,
		},
		{
			name: "bare year keeps only year precision",
			raw:  "1879",
			want: "01-Jan-1879",
			prec: PrecisionYear,
		},
		{
			name: "year embedded in free text",
			raw:  "(1926 or 1927)",
			want: "01-Jan-1926",
			prec: PrecisionYear,
		},
		{
			name: "five digit run is not a year",
			raw:  "roll 12345",
			want: "",
			prec: PrecisionNone,
		},
		{
			name: "year after a longer digit run",
			raw:  "entry 123456, born 1926",
			want: "01-Jan-1926",
			prec: PrecisionYear,
		},
		{
			name: "empty string",
			raw:  "",
			want: "",
			prec: PrecisionNone,
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: "",
			prec: PrecisionNone,
		},
		{
			name: "garbage is unknown not guessed",
			raw:  "circa unknown",
			want: "",
			prec: PrecisionNone,
		},
		{
			name: "quoted curly input",
			raw:  "“1991-10-21”",
			want: "21-Oct-1991",
			prec: PrecisionFull,
		},
		{
			name: "unicode dash variants",
			raw:  "04–Apr–1949",
			want: "04-Apr-1949",
			prec: PrecisionFull,
		},
		{
			name: "invalid iso day is unknown",
			raw:  "1991-13-45",
			want: "",
			prec: PrecisionNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.raw, tt.opts...)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.prec, got.Precision())
		})
	}
}

func TestDateZeroValue(t *testing.T) {
	var d Date
	assert.False(t, d.Known())
	assert.False(t, d.Full())
	assert.Equal(t, "", d.String())
	assert.Equal(t, 0, d.Year())
	assert.Equal(t, Unknown, d)
}

func TestDateConstructors(t *testing.T) {
	d := DateOf(time.Date(2000, time.January, 1, 13, 37, 0, 0, time.UTC))
	assert.True(t, d.Full())
	assert.Equal(t, "01-Jan-2000", d.String())

	y := YearOf(1879)
	assert.True(t, y.Known())
	assert.False(t, y.Full())
	assert.Equal(t, 1879, y.Year())
}

func TestParseDateRange(t *testing.T) {
	t.Run("canonical range", func(t *testing.T) {
		r := ParseDateRange("24-Jul-2024 to 11-Aug-2024")
		assert.True(t, r.Valid())
		assert.Equal(t, time.Date(2024, time.July, 24, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2024, time.August, 11, 0, 0, 0, 0, time.UTC), r.End)
	})

	t.Run("em dash placeholder", func(t *testing.T) {
		assert.False(t, ParseDateRange("—").Valid())
	})

	t.Run("empty", func(t *testing.T) {
		assert.False(t, ParseDateRange("").Valid())
	})

	t.Run("round trip", func(t *testing.T) {
		r := ParseDateRange("06-Apr-1896 to 15-Apr-1896")
		assert.Equal(t, "06-Apr-1896 to 15-Apr-1896", r.String())
	})
}

func TestNormalizeDateRange(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		year int
		want string
	}{
		{
			name: "year on end date",
			raw:  "21 July – 8 August 2021",
			year: 2020,
			want: "21-Jul-2021 to 08-Aug-2021",
		},
		{
			name: "start month implied",
			raw:  "6 – 13 April",
			year: 1896,
			want: "06-Apr-1896 to 13-Apr-1896",
		},
		{
			name: "both months stated",
			raw:  "14 May – 28 October",
			year: 1900,
			want: "14-May-1900 to 28-Oct-1900",
		},
		{
			name: "bare dash survives unchanged",
			raw:  "–",
			year: 1916,
			want: "–",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDateRange(tt.raw, tt.year))
		})
	}
}
