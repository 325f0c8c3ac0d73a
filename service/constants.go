package service

const (
	// Costos fijos mensuales (no configurables)
	MonthlyUtilities     = 70.0
	MonthlyMiscellaneous = 100.0

	// Costos únicos del programa
	VisaFee      = 200.0
	FlightCost   = 500.0
	SetupCost    = 800.0
	OneTimeCosts = VisaFee + FlightCost + SetupCost

	// Simulación
	TrialCount    = 500
	DefaultMonths = 12

	// Modelo de variabilidad: porcentaje del estimado con un piso mínimo,
	// para que incluso un estimado de cero tenga incertidumbre
	RentStdRate       = 0.10
	RentStdFloor      = 50.0
	FoodStdRate       = 0.15
	FoodStdFloor      = 20.0
	TransportStdRate  = 0.20
	TransportStdFloor = 10.0
)
