package dataset

var schools = []School{
	{Name: "E.M. Nísia Floresta Brasileira Augusta", INEP: "24041017", Type: SchoolFundamental, Address: "Rua Dr. Antônio Marinho, s/n - Centro", Zone: ZoneUrbana, Modalities: []string{"Anos Iniciais", "Anos Finais"}, IDEB: ptr(5.9)},
	{Name: "E.M. Prof. Josué de Oliveira", INEP: "24041025", Type: SchoolFundamental, Address: "Rua São José, 300 - Centro", Zone: ZoneUrbana, Modalities: []string{"Anos Finais"}, IDEB: ptr(4.8)},
	{Name: "E.M. Maria Madalena da Silva", INEP: "24041033", Type: SchoolFundamental, Address: "Rua Projetada, s/n - Alto do Monte Hermínio", Zone: ZoneUrbana, Modalities: []string{"Anos Iniciais"}, IDEB: ptr(5.6)},
	{Name: "E.M. Pirangi do Sul", INEP: "24041041", Type: SchoolFundamental, Address: "Av. Beira Mar, s/n - Pirangi do Sul", Zone: ZoneUrbana, Modalities: []string{"Anos Iniciais", "Anos Finais"}, IDEB: ptr(5.4)},
	{Name: "E.M. Tabatinga", INEP: "24041050", Type: SchoolFundamental, Address: "Rua das Falésias, s/n - Tabatinga", Zone: ZoneUrbana, Modalities: []string{"Anos Iniciais"}, IDEB: ptr(6.0)},
	{Name: "E.M. Búzios", INEP: "24041068", Type: SchoolFundamental, Address: "Rua Principal, s/n - Búzios", Zone: ZoneUrbana, Modalities: []string{"Anos Iniciais"}},
	{Name: "CMEI Pequeno Príncipe", INEP: "24041076", Type: SchoolInfantil, Address: "Rua Pedro Velho, 40 - Centro", Zone: ZoneUrbana, Modalities: []string{"Creche", "Pré-escola"}},
	{Name: "CMEI Tia Neném", INEP: "24041084", Type: SchoolInfantil, Address: "Rua Cel. Joaquim Manoel, s/n - Centro", Zone: ZoneUrbana, Modalities: []string{"Creche", "Pré-escola"}},
	{Name: "CMEI Pirangi", INEP: "24041092", Type: SchoolInfantil, Address: "Rua dos Cajueiros, s/n - Pirangi do Sul", Zone: ZoneUrbana, Modalities: []string{"Pré-escola"}},
	{Name: "CMEI Sementinha", INEP: "24041106", Type: SchoolInfantil, Address: "Rua Nova, s/n - Centro", Zone: ZoneUrbana, Modalities: []string{"Creche"}},
	{Name: "Centro Municipal de EJA Paulo Freire", INEP: "24041114", Type: SchoolEJA, Address: "Rua São José, 120 - Centro", Zone: ZoneUrbana, Modalities: []string{"EJA Fundamental"}},
	{Name: "E.M. Noturna Tabatinga", INEP: "24041122", Type: SchoolEJA, Address: "Rua das Falésias, s/n - Tabatinga", Zone: ZoneUrbana, Modalities: []string{"EJA Fundamental"}},
	{Name: "E.M. Pium", INEP: "24041130", Type: SchoolFundamental, Address: "RN-063, km 12 - Pium", Zone: ZoneRural, Modalities: []string{"Anos Iniciais", "Anos Finais"}, IDEB: ptr(5.1)},
	{Name: "E.M. Alcaçuz", INEP: "24041149", Type: SchoolFundamental, Address: "Rua da Lagoa, s/n - Alcaçuz", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}, IDEB: ptr(5.3)},
	{Name: "E.M. Campo de Santana", INEP: "24041157", Type: SchoolFundamental, Address: "Estrada de Campo de Santana, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais", "Anos Finais"}, IDEB: ptr(4.6)},
	{Name: "E.M. Porto", INEP: "24041165", Type: SchoolFundamental, Address: "Rua do Porto, s/n - Porto", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Barreta", INEP: "24041173", Type: SchoolFundamental, Address: "Av. Litorânea, s/n - Barreta", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}, IDEB: ptr(5.7)},
	{Name: "E.M. Timbó", INEP: "24041181", Type: SchoolFundamental, Address: "Sítio Timbó, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Currais", INEP: "24041190", Type: SchoolFundamental, Address: "Comunidade Currais, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Morrinhos", INEP: "24041203", Type: SchoolFundamental, Address: "Comunidade Morrinhos, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Lagoa do Bonfim", INEP: "24041211", Type: SchoolFundamental, Address: "Estrada da Lagoa do Bonfim, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais", "Anos Finais"}, IDEB: ptr(4.9)},
	{Name: "E.M. Santa Luzia", INEP: "24041220", Type: SchoolFundamental, Address: "Rua Principal, s/n - Santa Luzia", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Lagoinha", INEP: "24041238", Type: SchoolFundamental, Address: "Comunidade Lagoinha, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Golandim", INEP: "24041246", Type: SchoolFundamental, Address: "Comunidade Golandim, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Jacumã", INEP: "24041254", Type: SchoolFundamental, Address: "Rua da Praia, s/n - Jacumã", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Boa Vista", INEP: "24041262", Type: SchoolFundamental, Address: "Comunidade Boa Vista, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Cajueiro", INEP: "24041270", Type: SchoolFundamental, Address: "Comunidade Cajueiro, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Tororomba", INEP: "24041289", Type: SchoolFundamental, Address: "Comunidade Tororomba, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Ilha de Ponta Negra", INEP: "24041297", Type: SchoolFundamental, Address: "Ilha de Ponta Negra, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Araçá", INEP: "24041300", Type: SchoolFundamental, Address: "Comunidade Araçá, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Camurupim", INEP: "24041319", Type: SchoolFundamental, Address: "Praia de Camurupim, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Piau", INEP: "24041327", Type: SchoolFundamental, Address: "Comunidade Piau, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Hospital Velho", INEP: "24041335", Type: SchoolFundamental, Address: "Estrada do Hospital Velho, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Sítio Oiteiro", INEP: "24041343", Type: SchoolFundamental, Address: "Sítio Oiteiro, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Sítio Mendes", INEP: "24041351", Type: SchoolFundamental, Address: "Sítio Mendes, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "E.M. Bom Jardim", INEP: "24041360", Type: SchoolFundamental, Address: "Comunidade Bom Jardim, s/n", Zone: ZoneRural, Modalities: []string{"Anos Iniciais"}},
	{Name: "CMEI Pium", INEP: "24041378", Type: SchoolInfantil, Address: "RN-063, km 12 - Pium", Zone: ZoneRural, Modalities: []string{"Pré-escola"}},
	{Name: "CMEI Alcaçuz", INEP: "24041386", Type: SchoolInfantil, Address: "Rua da Lagoa, s/n - Alcaçuz", Zone: ZoneRural, Modalities: []string{"Pré-escola"}},
	{Name: "CMEI Campo de Santana", INEP: "24041394", Type: SchoolInfantil, Address: "Estrada de Campo de Santana, s/n", Zone: ZoneRural, Modalities: []string{"Creche", "Pré-escola"}},
	{Name: "CMEI Barreta", INEP: "24041408", Type: SchoolInfantil, Address: "Av. Litorânea, s/n - Barreta", Zone: ZoneRural, Modalities: []string{"Pré-escola"}},
	{Name: "E.M. Noturna Pium", INEP: "24041416", Type: SchoolEJA, Address: "RN-063, km 12 - Pium", Zone: ZoneRural, Modalities: []string{"EJA Fundamental"}},
	{Name: "E.M. Noturna Campo de Santana", INEP: "24041424", Type: SchoolEJA, Address: "Estrada de Campo de Santana, s/n", Zone: ZoneRural, Modalities: []string{"EJA Fundamental"}},
}

// Schools returns a copy of the municipal school list.
func Schools() []School {
	return append([]School(nil), schools...)
}
