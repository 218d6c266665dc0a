package dataset

// MonthlyGoal compares attendances with the monthly goal.
type MonthlyGoal struct {
	Month       string  `json:"mes"`
	Attendances int     `json:"atendimentos"`
	Goal        int     `json:"meta"`
	Variation   float64 `json:"variacao"`
}

// UnitLoad is the July attendance load of one establishment.
type UnitLoad struct {
	Unit        string  `json:"unidade"`
	Attendances int     `json:"atendimentos"`
	Capacity    int     `json:"capacidade"`
	Occupancy   float64 `json:"ocupacao"`
}

// LiveSnapshot holds the simulated real-time panel figures.
type LiveSnapshot struct {
	AttendancesToday int `json:"atendimentos_hoje"`
	WaitingPatients  int `json:"pacientes_aguardando"`
	BedsInUse        int `json:"leitos_ocupados"`
	BedsTotal        int `json:"leitos_total"`
	AmbulancesActive int `json:"ambulancias_ativas"`
	AmbulancesTotal  int `json:"ambulancias_total"`
	Emergencies      int `json:"emergencias"`
}

// BedOccupancy is the share of beds in use, in percent.
func (s LiveSnapshot) BedOccupancy() float64 {
	if s.BedsTotal == 0 {
		return 0
	}
	return float64(s.BedsInUse) / float64(s.BedsTotal) * 100
}

// MonthlyComparison2025 returns attendances against the 19.000 goal.
func MonthlyComparison2025() []MonthlyGoal {
	return []MonthlyGoal{
		{"Jan", 18500, 19000, -2.6},
		{"Fev", 17800, 19000, -6.3},
		{"Mar", 19200, 19000, 1.1},
		{"Abr", 18900, 19000, -0.5},
		{"Mai", 19500, 19000, 2.6},
		{"Jun", 19800, 19000, 4.2},
		{"Jul", 20000, 19000, 5.3},
		{"Ago", 19700, 19000, 3.7},
	}
}

// UnitLoadJuly2025 returns per-establishment attendance against capacity.
func UnitLoadJuly2025() []UnitLoad {
	return []UnitLoad{
		{"Centro de Saúde Antonio Marinho de Carvalho", 4200, 4500, 93.3},
		{"UBS Pirangi do Sul", 850, 900, 94.4},
		{"UBS Tabatinga", 750, 800, 93.8},
		{"UBS Pium", 680, 750, 90.7},
		{"CAPS Nísia Floresta", 320, 400, 80.0},
		{"UBS Dr. Luiz de Oliveira Filho", 450, 500, 90.0},
		{"UBS Alto do Monte Hermínio", 380, 450, 84.4},
	}
}

// Live returns the simulated real-time snapshot.
func Live() LiveSnapshot {
	return LiveSnapshot{
		AttendancesToday: 847,
		WaitingPatients:  23,
		BedsInUse:        18,
		BedsTotal:        24,
		AmbulancesActive: 2,
		AmbulancesTotal:  3,
		Emergencies:      5,
	}
}

// AttendanceBySpecialty is the simulated attendance count per specialty.
func AttendanceBySpecialty() []Period {
	return []Period{
		{"Clínica Geral", 8500},
		{"Pediatria", 3200},
		{"Ginecologia", 2800},
		{"Odontologia", 2100},
		{"Psicologia", 1800},
		{"Fisioterapia", 1600},
	}
}
