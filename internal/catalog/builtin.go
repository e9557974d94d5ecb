package catalog

// builtinCategories is the compiled-in catalog, in display order.
//
//nolint:gochecknoglobals,lll // Static reference table.
var builtinCategories = []Category{
	{
		Name:    "Physics",
		Entries: []Entry{
			{
				Name:        "Speed of Light",
				Value:       "299,792,458 m/s",
				Description: "The speed of light in vacuum.",
			},
			{
				Name:        "Gravitational Constant",
				Value:       "6.67430 × 10^-11 m^3 kg^-1 s^-2",
				Description: "The constant of proportionality in Newton's law of gravitation.",
			},
			{
				Name:        "Planck's Constant",
				Value:       "6.62607015 × 10^-34 J s",
				Description: "The fundamental constant relating energy and frequency of photons.",
			},
			{
				Name:        "Boltzmann Constant",
				Value:       "1.380649 × 10^-23 J/K",
				Description: "The physical constant relating the average kinetic energy of particles in a gas with the temperature of the gas.",
			},
			{
				Name:        "Elementary Charge",
				Value:       "1.602176634 × 10^-19 C",
				Description: "The magnitude of electric charge carried by a single proton.",
			},
			{
				Name:        "Magnetic Constant",
				Value:       "4π × 10^-7 N/A^2",
				Description: "The proportionality constant in the magnetic component of Maxwell's equations.",
			},
			{
				Name:        "Fine-Structure Constant",
				Value:       "0.0072973525693",
				Description: "A dimensionless constant characterizing the strength of the electromagnetic interaction.",
			},
			{
				Name:        "Cosmological Constant",
				Value:       "8πGρ/3 - Λ",
				Description: "The constant in Einstein's field equations of General Relativity, associated with dark energy.",
			},
			{
				Name:        "Stefan-Boltzmann Constant",
				Value:       "5.670374419 × 10^-8 W m^-2 K^-4",
				Description: "The constant in Stefan-Boltzmann law relating temperature to thermal radiation emitted by a black body.",
			},
			{
				Name:        "Gas Constant",
				Value:       "8.314462618 J mol^-1 K^-1",
				Description: "The constant in the ideal gas law.",
			},
			{
				Name:        "Avogadro's Number",
				Value:       "6.02214076 × 10^23 mol^-1",
				Description: "The number of atoms or molecules in one mole of a substance.",
			},
			{
				Name:        "Faraday Constant",
				Value:       "96485.33212 C/mol",
				Description: "The magnitude of electric charge per mole of electrons.",
			},
			{
				Name:        "Standard Atmosphere",
				Value:       "101,325 Pa",
				Description: "The standard pressure at sea level.",
			},
			{
				Name:        "Molar Mass of Carbon-12",
				Value:       "12.00000 g/mol",
				Description: "The molar mass of the carbon-12 isotope, used as the standard for atomic mass units.",
			},
		},
	},
	{
		Name:    "Chemistry",
		Entries: []Entry{
			{
				Name:        "Gas Constant",
				Value:       "8.314462618 J mol^-1 K^-1",
				Description: "The constant in the ideal gas law.",
			},
			{
				Name:        "Avogadro's Number",
				Value:       "6.02214076 × 10^23 mol^-1",
				Description: "The number of atoms or molecules in one mole of a substance.",
			},
			{
				Name:        "Faraday Constant",
				Value:       "96485.33212 C/mol",
				Description: "The magnitude of electric charge per mole of electrons.",
			},
			{
				Name:        "Standard Atmosphere",
				Value:       "101,325 Pa",
				Description: "The standard pressure at sea level.",
			},
			{
				Name:        "Molar Mass of Carbon-12",
				Value:       "12.00000 g/mol",
				Description: "The molar mass of the carbon-12 isotope, used as the standard for atomic mass units.",
			},
			{
				Name:        "Ionization Energy of Hydrogen",
				Value:       "13.598 eV",
				Description: "The energy required to ionize a hydrogen atom.",
			},
			{
				Name:        "Bond Dissociation Energy of H2",
				Value:       "435.88 kJ/mol",
				Description: "The energy required to dissociate a hydrogen molecule into two hydrogen atoms.",
			},
			{
				Name:        "Standard Molar Entropy of Water",
				Value:       "69.91 J mol^-1 K^-1",
				Description: "The entropy of water in its standard state at 298 K.",
			},
			{
				Name:        "Standard Enthalpy of Formation of Water",
				Value:       "-285.83 kJ/mol",
				Description: "The enthalpy change when one mole of water is formed from its elements in their standard states.",
			},
			{
				Name:        "Thermal Conductivity of Copper",
				Value:       "401 W m^-1 K^-1",
				Description: "The ability of copper to conduct heat.",
			},
		},
	},
	{
		Name:    "Mathematics",
		Entries: []Entry{
			{
				Name:        "Euler's Number (e)",
				Value:       "2.718281828",
				Description: "The base of the natural logarithm, used extensively in mathematics.",
			},
			{
				Name:        "Pi (π)",
				Value:       "3.14159265359",
				Description: "The ratio of the circumference of a circle to its diameter.",
			},
			{
				Name:        "Golden Ratio (φ)",
				Value:       "1.61803398875",
				Description: "The number that appears in various contexts in mathematics, art, and nature.",
			},
			{
				Name:        "Square Root of 2 (√2)",
				Value:       "1.41421356237",
				Description: "The length of the diagonal of a square with side length 1.",
			},
			{
				Name:        "Square Root of 3 (√3)",
				Value:       "1.73205080757",
				Description: "The length of the diagonal of a cube with side length 1.",
			},
			{
				Name:        "Natural Logarithm of 2 (ln 2)",
				Value:       "0.69314718056",
				Description: "The natural logarithm of 2.",
			},
			{
				Name:        "Logarithm Base 10 of 2 (log10 2)",
				Value:       "0.30102999566",
				Description: "The logarithm of 2 with base 10.",
			},
			{
				Name:        "Catalan's Constant",
				Value:       "0.91596559416",
				Description: "A constant that appears in combinatorial mathematics.",
			},
			{
				Name:        "Ramanujan's Constant",
				Value:       "1.2824271291",
				Description: "A constant related to the distribution of prime numbers.",
			},
			{
				Name:        "Feigenbaum Constants",
				Value:       "δ ≈ 4.66920160910, α ≈ 2.50290787595",
				Description: "Constants that arise in the study of bifurcations in chaotic systems.",
			},
		},
	},
}
