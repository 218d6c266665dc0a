package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisiafloresta/painel-bi/components/transparency"
)

func TestHealthUnitDistribution(t *testing.T) {
	counts := CountUnitsByCategory(HealthUnits())
	assert.Equal(t, 20, counts[CategoryUBS])
	assert.Equal(t, 6, counts[CategoryPostos])
	assert.Equal(t, 1, counts[CategoryCAPS])
	assert.Equal(t, 1, counts[CategoryGestao])
	assert.Equal(t, 2, counts[CategoryEspecializadas])
}

func TestSchoolZones(t *testing.T) {
	list := Schools()
	require.Len(t, list, 42)
	zones := CountSchoolsByZone(list)
	assert.Equal(t, 30, zones[ZoneRural])
	assert.Equal(t, 12, zones[ZoneUrbana])
	assert.InDelta(t, 71.4, Share(zones[ZoneRural], len(list)), 0.05)
}

func TestAccessorsReturnCopies(t *testing.T) {
	units := HealthUnits()
	units[0].Name = "alterado"
	assert.NotEqual(t, "alterado", HealthUnits()[0].Name)

	july, ok := AttendanceFor("julho")
	require.True(t, ok)
	july.ByType["Enfermagem"] = 0
	again, _ := AttendanceFor("julho")
	assert.Equal(t, 4600, again.ByType["Enfermagem"])
}

func TestAttendanceTotals(t *testing.T) {
	july, ok := AttendanceFor("julho")
	require.True(t, ok)
	assert.Equal(t, 20000, july.Total)

	breakdown := july.Breakdown()
	require.Len(t, breakdown, len(AttendanceTypes))
	assert.Equal(t, "Consultas Médicas", breakdown[0].Label)

	_, ok = AttendanceFor("dezembro")
	assert.False(t, ok)
}

func TestIndicatorsCarryKnownProvenance(t *testing.T) {
	groups := [][]Indicator{
		UnitIndicators(), DemographyIndicators(), HealthIndicators(),
		SocioeconomicIndicators(), EducationIndicators(), SecurityIndicators(),
	}
	for _, group := range groups {
		for _, ind := range group {
			assert.True(t, transparency.Known(ind.Provenance), ind.Key)
		}
	}
}

func TestEducationIndicatorsAreReal(t *testing.T) {
	for _, ind := range EducationIndicators() {
		assert.Equal(t, transparency.Real, ind.Provenance)
		assert.Equal(t, "INEP", ind.Source)
	}
}

func TestAggregations(t *testing.T) {
	assert.Zero(t, Average(nil))
	assert.InDelta(t, 18625, Average(MonthlyAttendanceTrend()), 0.5)
	assert.Equal(t, 225.0, Total([]Period{{"a", 100}, {"b", 125}}))

	avg, n := AverageIDEB(Schools())
	assert.Equal(t, 10, n)
	assert.InDelta(t, 5.33, avg, 0.001)

	assert.Zero(t, Share(1, 0))
	assert.InDelta(t, 75, Live().BedOccupancy(), 1e-9)
}

func TestFacilityCategory(t *testing.T) {
	assert.Equal(t, CategoryUBS, FacilityUBS.Category())
	assert.Equal(t, CategoryPostos, FacilityPosto.Category())
	assert.Equal(t, CategoryGestao, FacilityGestao.Category())
	assert.Equal(t, CategoryEspecializadas, FacilityCEO.Category())
	assert.Equal(t, "#dc2626", FacilityHospital.MarkerColor())
	assert.Equal(t, "#f59e0b", FacilityPosto.MarkerColor())
	assert.Equal(t, "#059669", SchoolEJA.MarkerColor())
}
