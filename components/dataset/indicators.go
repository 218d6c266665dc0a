package dataset

import "github.com/nisiafloresta/painel-bi/components/transparency"

// Population is the resident population by reference year.
func Population() []Period {
	return []Period{
		{Label: "2010", Value: 23784},
		{Label: "2022", Value: 33949},
		{Label: "2025", Value: 34000},
	}
}

// DemographyIndicators are the census headline figures.
func DemographyIndicators() []Indicator {
	return []Indicator{
		{Key: "populacao_2022", Label: "População 2022", Value: 33949, Format: FormatInteger, Reference: "Censo 2022", Provenance: transparency.IBGE},
		{Key: "densidade", Label: "Densidade", Value: 110.3, Format: FormatDecimal, Unit: "hab/km²", Reference: "Censo 2022", Provenance: transparency.IBGE},
		{Key: "area", Label: "Área", Value: 307.719, Format: FormatDecimal, Unit: "km²", Provenance: transparency.IBGE},
	}
}

// UnitIndicators are the headline figures of the health network tab. The
// totals are derived from the establishment list so they never drift.
func UnitIndicators() []Indicator {
	counts := CountUnitsByType(HealthUnits())
	return []Indicator{
		{Key: "total_unidades", Label: "Total de Unidades", Value: float64(len(healthUnits)), Format: FormatInteger, Unit: "Estabelecimentos de saúde", Provenance: transparency.Real, Source: "CNES"},
		{Key: "ubs_ativas", Label: "UBS Ativas", Value: float64(counts[FacilityUBS]), Format: FormatInteger, Unit: "Unidades Básicas de Saúde", Provenance: transparency.Real, Source: "CNES"},
		{Key: "hospital", Label: "Hospital", Value: float64(counts[FacilityHospital]), Format: FormatInteger, Unit: "Hospital e Maternidade", Provenance: transparency.Real, Source: "CNES"},
		{Key: "atendimentos_mes", Label: "Atendimentos/Mês", Value: 20000, Format: FormatInteger, Display: "20.000+", Reference: "Julho 2025", Provenance: transparency.Estimativa},
	}
}

// HealthIndicators are the health outcome figures.
func HealthIndicators() []Indicator {
	return []Indicator{
		{Key: "mortalidade_infantil", Label: "Mortalidade Infantil", Value: 14.2, Format: FormatDecimal, Unit: "por 1.000 nascidos vivos", Provenance: transparency.IBGE},
		{Key: "internacoes_sus", Label: "Internações SUS", Value: 1250, Format: FormatInteger, Unit: "por ano", Provenance: transparency.Estimativa},
		{Key: "cobertura_esf", Label: "Cobertura ESF", Value: 100, Format: FormatPercent, Provenance: transparency.Real, Source: "CNES"},
		{Key: "atendimentos_mes", Label: "Atendimentos/mês", Value: 20000, Format: FormatInteger, Reference: "julho/2025", Provenance: transparency.Estimativa},
	}
}

// SocioeconomicIndicators are the income and budget figures.
func SocioeconomicIndicators() []Indicator {
	return []Indicator{
		{Key: "pib_per_capita", Label: "PIB per capita", Value: 16795, Format: FormatCurrency, Reference: "2021", Provenance: transparency.IBGE},
		{Key: "idhm", Label: "IDHM", Value: 0.622, Format: FormatDecimal, Reference: "2010", Provenance: transparency.IBGE},
		{Key: "receitas", Label: "Receitas", Value: 164600000, Format: FormatCurrency, Reference: "2024", Provenance: transparency.Estimativa},
		{Key: "despesas", Label: "Despesas", Value: 150900000, Format: FormatCurrency, Reference: "2024", Provenance: transparency.Estimativa},
	}
}

// EducationIndicators are the INEP figures of the public network.
func EducationIndicators() []Indicator {
	return []Indicator{
		{Key: "ideb_iniciais", Label: "IDEB Anos Iniciais", Value: 5.8, Format: FormatDecimal, Reference: "2021", Provenance: transparency.Real, Source: "INEP"},
		{Key: "ideb_finais", Label: "IDEB Anos Finais", Value: 4.9, Format: FormatDecimal, Reference: "2021", Provenance: transparency.Real, Source: "INEP"},
		{Key: "matriculas", Label: "Matrículas", Value: 4702, Format: FormatInteger, Reference: "2024 (Rede pública • INEP/QEdu)", Provenance: transparency.Real, Source: "INEP"},
		{Key: "docentes", Label: "Docentes", Value: 246, Format: FormatInteger, Reference: "2024 (Rede pública • INEP/QEdu)", Provenance: transparency.Real, Source: "INEP"},
	}
}

// SecurityIndicators are the public security figures. Only the structure
// count is official.
func SecurityIndicators() []Indicator {
	return []Indicator{
		{Key: "estrutura", Label: "Estrutura de Segurança", Value: 4, Format: FormatInteger, Unit: "Órgãos de segurança", Provenance: transparency.Real, Source: "SSPDS"},
		{Key: "taxa_cvli", Label: "Taxa CVLI", Value: 8.2, Format: FormatDecimal, Unit: "por 100 mil hab", Provenance: transparency.Estimativa},
		{Key: "tempo_resposta", Label: "Tempo Resposta", Value: 12, Format: FormatInteger, Unit: "minutos (média)", Provenance: transparency.Estimativa},
		{Key: "cobertura", Label: "Cobertura", Value: 65, Format: FormatPercent, Unit: "área monitorada", Provenance: transparency.Estimativa},
	}
}

// OccurrencesByType is the estimated share of police occurrences.
func OccurrencesByType() []Period {
	return []Period{
		{Label: "Furtos", Value: 45},
		{Label: "Roubos", Value: 18},
		{Label: "Lesões", Value: 12},
		{Label: "Ameaças", Value: 8},
		{Label: "Outros", Value: 7},
	}
}

// MonthlyOccurrences2025 is the estimated occurrence count per month.
func MonthlyOccurrences2025() []Period {
	return []Period{
		{"Jan", 95}, {"Fev", 88}, {"Mar", 92}, {"Abr", 85},
		{"Mai", 78}, {"Jun", 82}, {"Jul", 90}, {"Ago", 85},
	}
}
