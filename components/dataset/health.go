package dataset

var healthUnits = []HealthUnit{
	{Name: "Secretaria Municipal de Saúde", Type: FacilityGestao, Address: "Rua Dr. Antônio Marinho, 210 - Centro", Zone: ZoneUrbana, Phone: "(84) 3277-2410", Email: "saude@nisiafloresta.rn.gov.br", Lat: ptr(-6.0914), Lng: ptr(-35.2085)},
	{Name: "Centro de Saúde Antonio Marinho de Carvalho", Type: FacilityEspecializada, Address: "Av. Gov. Aluízio Alves, s/n - Centro", Zone: ZoneUrbana, Phone: "(84) 3277-2233", Lat: ptr(-6.0921), Lng: ptr(-35.2098)},
	{Name: "CEO Nísia Floresta", Type: FacilityCEO, Address: "Rua Cel. Joaquim Manoel, 45 - Centro", Zone: ZoneUrbana, Phone: "(84) 3277-2251", Lat: ptr(-6.0903), Lng: ptr(-35.2077)},
	{Name: "CAPS Nísia Floresta", Type: FacilityCAPS, Address: "Rua Pedro Velho, 88 - Centro", Zone: ZoneUrbana, Phone: "(84) 3277-2318", Email: "caps@nisiafloresta.rn.gov.br", Lat: ptr(-6.0897), Lng: ptr(-35.2103)},
	{Name: "UBS Dr. Luiz de Oliveira Filho", Type: FacilityUBS, Address: "Rua São José, 120 - Centro", Zone: ZoneUrbana, Phone: "(84) 3277-2245", Lat: ptr(-6.0928), Lng: ptr(-35.2071)},
	{Name: "UBS Alto do Monte Hermínio", Type: FacilityUBS, Address: "Rua Projetada, s/n - Alto do Monte Hermínio", Zone: ZoneUrbana, Lat: ptr(-6.0862), Lng: ptr(-35.2124)},
	{Name: "UBS Pirangi do Sul", Type: FacilityUBS, Address: "Av. Beira Mar, s/n - Pirangi do Sul", Zone: ZoneUrbana, Phone: "(84) 3238-2102", Lat: ptr(-5.9927), Lng: ptr(-35.1196)},
	{Name: "UBS Tabatinga", Type: FacilityUBS, Address: "Rua das Falésias, s/n - Tabatinga", Zone: ZoneUrbana, Lat: ptr(-6.0494), Lng: ptr(-35.0991)},
	{Name: "UBS Búzios", Type: FacilityUBS, Address: "Rua Principal, s/n - Búzios", Zone: ZoneUrbana, Lat: ptr(-6.0122), Lng: ptr(-35.1098)},
	{Name: "UBS Pium", Type: FacilityUBS, Address: "RN-063, km 12 - Pium", Zone: ZoneRural, Lat: ptr(-5.9719), Lng: ptr(-35.1702)},
	{Name: "UBS Alcaçuz", Type: FacilityUBS, Address: "Rua da Lagoa, s/n - Alcaçuz", Zone: ZoneRural, Lat: ptr(-6.0286), Lng: ptr(-35.1417)},
	{Name: "UBS Campo de Santana", Type: FacilityUBS, Address: "Estrada de Campo de Santana, s/n", Zone: ZoneRural, Lat: ptr(-6.1310), Lng: ptr(-35.1934)},
	{Name: "UBS Porto", Type: FacilityUBS, Address: "Rua do Porto, s/n - Porto", Zone: ZoneRural},
	{Name: "UBS Barreta", Type: FacilityUBS, Address: "Av. Litorânea, s/n - Barreta", Zone: ZoneRural, Lat: ptr(-6.0875), Lng: ptr(-35.0874)},
	{Name: "UBS Timbó", Type: FacilityUBS, Address: "Sítio Timbó, s/n", Zone: ZoneRural},
	{Name: "UBS Currais", Type: FacilityUBS, Address: "Comunidade Currais, s/n", Zone: ZoneRural},
	{Name: "UBS Morrinhos", Type: FacilityUBS, Address: "Comunidade Morrinhos, s/n", Zone: ZoneRural},
	{Name: "UBS Lagoa do Bonfim", Type: FacilityUBS, Address: "Estrada da Lagoa do Bonfim, s/n", Zone: ZoneRural, Lat: ptr(-6.0389), Lng: ptr(-35.2059)},
	{Name: "UBS Santa Luzia", Type: FacilityUBS, Address: "Rua Principal, s/n - Santa Luzia", Zone: ZoneRural},
	{Name: "UBS Lagoinha", Type: FacilityUBS, Address: "Comunidade Lagoinha, s/n", Zone: ZoneRural},
	{Name: "UBS Golandim", Type: FacilityUBS, Address: "Comunidade Golandim, s/n", Zone: ZoneRural},
	{Name: "UBS Jacumã", Type: FacilityUBS, Address: "Rua da Praia, s/n - Jacumã", Zone: ZoneRural},
	{Name: "UBS Boa Vista", Type: FacilityUBS, Address: "Comunidade Boa Vista, s/n", Zone: ZoneRural},
	{Name: "UBS Hospital Velho", Type: FacilityUBS, Address: "Rua do Hospital Velho, s/n - Centro", Zone: ZoneUrbana},
	{Name: "Posto de Saúde Cajueiro", Type: FacilityPosto, Address: "Comunidade Cajueiro, s/n", Zone: ZoneRural},
	{Name: "Posto de Saúde Tororomba", Type: FacilityPosto, Address: "Comunidade Tororomba, s/n", Zone: ZoneRural},
	{Name: "Posto de Saúde Ilha de Ponta Negra", Type: FacilityPosto, Address: "Ilha de Ponta Negra, s/n", Zone: ZoneRural},
	{Name: "Posto de Saúde Araçá", Type: FacilityPosto, Address: "Comunidade Araçá, s/n", Zone: ZoneRural},
	{Name: "Posto de Saúde Camurupim", Type: FacilityPosto, Address: "Praia de Camurupim, s/n", Zone: ZoneRural},
	{Name: "Posto de Saúde Piau", Type: FacilityPosto, Address: "Comunidade Piau, s/n", Zone: ZoneRural},
}

// HealthUnits returns a copy of the health establishment list.
func HealthUnits() []HealthUnit {
	return append([]HealthUnit(nil), healthUnits...)
}

var monthlyAttendance2025 = []MonthlyAttendance{
	{Month: "janeiro", ByType: map[string]int{"Consultas Médicas": 6900, "Enfermagem": 4100, "Odontologia": 1850, "Vacinação": 2300, "Procedimentos": 1650, "Visitas Domiciliares": 1000}},
	{Month: "fevereiro", ByType: map[string]int{"Consultas Médicas": 6800, "Enfermagem": 4050, "Odontologia": 1800, "Vacinação": 2250, "Procedimentos": 1700, "Visitas Domiciliares": 1050}},
	{Month: "marco", ByType: map[string]int{"Consultas Médicas": 7050, "Enfermagem": 4200, "Odontologia": 1900, "Vacinação": 2350, "Procedimentos": 1700, "Visitas Domiciliares": 1000}},
	{Month: "abril", ByType: map[string]int{"Consultas Médicas": 7100, "Enfermagem": 4250, "Odontologia": 1950, "Vacinação": 2300, "Procedimentos": 1700, "Visitas Domiciliares": 1050}},
	{Month: "maio", ByType: map[string]int{"Consultas Médicas": 7200, "Enfermagem": 4300, "Odontologia": 1950, "Vacinação": 2400, "Procedimentos": 1700, "Visitas Domiciliares": 1050}},
	{Month: "junho", ByType: map[string]int{"Consultas Médicas": 7250, "Enfermagem": 4350, "Odontologia": 2000, "Vacinação": 2400, "Procedimentos": 1700, "Visitas Domiciliares": 1050}},
	{Month: "julho", ByType: map[string]int{"Consultas Médicas": 7600, "Enfermagem": 4600, "Odontologia": 2100, "Vacinação": 2500, "Procedimentos": 2000, "Visitas Domiciliares": 1200}},
	{Month: "agosto", ByType: map[string]int{"Consultas Médicas": 7250, "Enfermagem": 4300, "Odontologia": 2000, "Vacinação": 2400, "Procedimentos": 1700, "Visitas Domiciliares": 1050}},
}

// AttendanceTypes is the display order of the attendance breakdown.
var AttendanceTypes = []string{"Consultas Médicas", "Enfermagem", "Odontologia", "Vacinação", "Procedimentos", "Visitas Domiciliares"}

// Attendance2025 returns the monthly attendance breakdown with totals filled in.
func Attendance2025() []MonthlyAttendance {
	out := make([]MonthlyAttendance, len(monthlyAttendance2025))
	for i, m := range monthlyAttendance2025 {
		byType := make(map[string]int, len(m.ByType))
		total := 0
		for k, v := range m.ByType {
			byType[k] = v
			total += v
		}
		out[i] = MonthlyAttendance{Month: m.Month, Total: total, ByType: byType}
	}
	return out
}

// AttendanceFor returns the breakdown for month, matched by name.
func AttendanceFor(month string) (MonthlyAttendance, bool) {
	for _, m := range Attendance2025() {
		if m.Month == month {
			return m, true
		}
	}
	return MonthlyAttendance{}, false
}

// MonthlyAttendanceTrend is the estimated attendance per month for the year.
func MonthlyAttendanceTrend() []Period {
	return []Period{
		{"Jan", 17800}, {"Fev", 17650}, {"Mar", 18200}, {"Abr", 18350},
		{"Mai", 18600}, {"Jun", 18750}, {"Jul", 18800}, {"Ago", 18700},
		{"Set", 18900}, {"Out", 19100}, {"Nov", 19250}, {"Dez", 19400},
	}
}
