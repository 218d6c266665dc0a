package dataset

import "sort"

// CountUnitsByType tallies establishments per facility type.
func CountUnitsByType(units []HealthUnit) map[FacilityType]int {
	out := make(map[FacilityType]int)
	for _, u := range units {
		out[u.Type]++
	}
	return out
}

// CountUnitsByCategory tallies establishments per legend bucket.
func CountUnitsByCategory(units []HealthUnit) map[string]int {
	out := map[string]int{
		CategoryUBS:            0,
		CategoryPostos:         0,
		CategoryCAPS:           0,
		CategoryGestao:         0,
		CategoryEspecializadas: 0,
	}
	for _, u := range units {
		out[u.Type.Category()]++
	}
	return out
}

// CountSchoolsByZone tallies schools per zone.
func CountSchoolsByZone(list []School) map[Zone]int {
	out := map[Zone]int{ZoneUrbana: 0, ZoneRural: 0}
	for _, s := range list {
		out[s.Zone]++
	}
	return out
}

// CountSchoolsByType tallies schools per teaching stage.
func CountSchoolsByType(list []School) map[SchoolType]int {
	out := make(map[SchoolType]int)
	for _, s := range list {
		out[s.Type]++
	}
	return out
}

// Share returns part/total as a percentage, or 0 when total is 0.
func Share(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Average returns the mean of the values, or 0 for an empty series.
func Average(values []Period) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v.Value
	}
	return sum / float64(len(values))
}

// Total sums the series.
func Total(values []Period) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v.Value
	}
	return sum
}

// AverageIDEB averages the IDEB of the schools that have one.
func AverageIDEB(list []School) (float64, int) {
	sum, n := 0.0, 0
	for _, s := range list {
		if s.IDEB == nil {
			continue
		}
		sum += *s.IDEB
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// Breakdown turns a month's per-type counts into an ordered series.
func (m MonthlyAttendance) Breakdown() []Period {
	out := make([]Period, 0, len(m.ByType))
	seen := make(map[string]bool, len(m.ByType))
	for _, name := range AttendanceTypes {
		if v, ok := m.ByType[name]; ok {
			out = append(out, Period{Label: name, Value: float64(v)})
			seen[name] = true
		}
	}
	var rest []string
	for name := range m.ByType {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, Period{Label: name, Value: float64(m.ByType[name])})
	}
	return out
}
