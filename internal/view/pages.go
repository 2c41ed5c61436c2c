package view

import "formdemo/internal/model"

// CalculatorPage feeds the calculator results page. Exactly one of Calc and
// Error is set.
type CalculatorPage struct {
	Calc  *model.Calculation
	Error string
}

// ErrorPage feeds the generic error page.
type ErrorPage struct {
	Status  int
	Message string
}
