package rby

func mew() *Pokemon {
	return &Pokemon{
		Name:      "Mew",
		Level:     100,
		BaseStats: StatSet{100, 100, 100, 100, 100},
		IVs:       PERFECT_IVS,
		EVs:       PERFECT_EVS,
		Types:     []Type{TYPE_PSYCHIC},
	}
}

func mewtwo() *Pokemon {
	return &Pokemon{
		Name:      "Mewtwo",
		Level:     100,
		BaseStats: StatSet{106, 110, 90, 154, 130},
		IVs:       PERFECT_IVS,
		EVs:       PERFECT_EVS,
		Types:     []Type{TYPE_PSYCHIC},
	}
}

// rattata is the generic test subject: level 100 with perfect IVs and EVs
func rattata() *Pokemon {
	return &Pokemon{
		Name:      "Rattata",
		Level:     100,
		BaseStats: StatSet{30, 56, 35, 25, 72},
		IVs:       PERFECT_IVS,
		EVs:       PERFECT_EVS,
		Types:     []Type{TYPE_NORMAL},
	}
}
