package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentboard/harvester/internal/models"
)

func TestParseSalary_Range(t *testing.T) {
	t.Parallel()

	got := ParseSalary("£30,000 - £40,000")
	require.NotNil(t, got)
	require.Equal(t, models.SalaryRange, got.Mode)
	require.Equal(t, 30000.0, got.Min)
	require.Equal(t, 40000.0, got.Max)
	require.Equal(t, "GBP", got.Currency)
	require.Equal(t, models.PeriodYearly, got.Period)
}

func TestParseSalary_ReversedRangeIsSorted(t *testing.T) {
	t.Parallel()

	got := ParseSalary("$90k - $70k")
	require.NotNil(t, got)
	require.Equal(t, models.SalaryRange, got.Mode)
	require.Equal(t, 70000.0, got.Min)
	require.Equal(t, 90000.0, got.Max)
	require.Equal(t, "USD", got.Currency)
}

func TestParseSalary_Competitive(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"Competitive", "Salary DOE", "negotiable"} {
		got := ParseSalary(text)
		require.NotNil(t, got, text)
		require.Equal(t, models.SalaryCompetitive, got.Mode, text)
		require.Zero(t, got.Min, text)
		require.Zero(t, got.Max, text)
	}
}

func TestParseSalary_SingleFigureIsFixed(t *testing.T) {
	t.Parallel()

	got := ParseSalary("€55,000 per annum")
	require.NotNil(t, got)
	require.Equal(t, models.SalaryFixed, got.Mode)
	require.Equal(t, 55000.0, got.Min)
	require.Equal(t, 55000.0, got.Max)
	require.Equal(t, "EUR", got.Currency)
	require.Equal(t, models.PeriodYearly, got.Period)
}

func TestParseSalary_KShorthand(t *testing.T) {
	t.Parallel()

	got := ParseSalary("80k USD yearly")
	require.NotNil(t, got)
	require.Equal(t, 80000.0, got.Min)
	require.Equal(t, "USD", got.Currency)
}

func TestParseSalary_HourlyPeriod(t *testing.T) {
	t.Parallel()

	got := ParseSalary("$25 per hour")
	require.NotNil(t, got)
	require.Equal(t, models.PeriodHourly, got.Period)
	require.Equal(t, models.SalaryFixed, got.Mode)
}

func TestParseSalary_NoMatchYieldsNil(t *testing.T) {
	t.Parallel()

	require.Nil(t, ParseSalary(""))
	require.Nil(t, ParseSalary("   "))
	require.Nil(t, ParseSalary("excellent benefits"))
}
