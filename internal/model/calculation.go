package model

// Operation selects the arithmetic applied by the calculator.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Valid reports whether op is one of the four supported operations.
func (op Operation) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// Symbol returns the infix operator used when redisplaying a calculation.
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return string(op)
}

// Calculation is a successful calculator result with its inputs.
type Calculation struct {
	Operand1  float64   `json:"operand1"`
	Operand2  float64   `json:"operand2"`
	Operation Operation `json:"operation"`
	Result    float64   `json:"result"`
}
