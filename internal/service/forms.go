package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"formdemo/internal/model"
)

var (
	ErrMessageRequired  = errors.New("message is required")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrOutOfRange       = errors.New("result out of range")
)

const (
	// UnknownSign is the personality reported for a sign outside the zodiac table.
	UnknownSign = "Unknown sign"

	LuckyMin = 1
	LuckyMax = 100
)

// IntN returns a uniform random integer in [0, n).
type IntN func(n int) int

// FormService defines the transformations behind each result page.
// Every method is a pure function of its arguments (apart from the lucky number)
// and is safe for concurrent use.
type FormService interface {
	// Froyo echoes the flavor and toppings in submitted order.
	Froyo(ctx context.Context, flavor string, toppings []string) *model.FroyoOrder

	// Favorites echoes the three answers unchanged.
	Favorites(ctx context.Context, color, animal, city string) *model.Favorites

	// SortMessage returns the message together with its letters sorted by code point.
	// An empty message yields ErrMessageRequired.
	SortMessage(ctx context.Context, message string) (*model.SecretMessage, error)

	// Calculate parses both operands as float64 and applies operation.
	// Errors: ErrInvalidInput, ErrInvalidOperation, ErrDivisionByZero, ErrOutOfRange.
	Calculate(ctx context.Context, operand1, operand2, operation string) (*model.Calculation, error)

	// Horoscope looks the sign up and draws a lucky number in [LuckyMin, LuckyMax].
	Horoscope(ctx context.Context, name, sign string) *model.Horoscope

	// Signs lists the zodiac table in calendar order.
	Signs(ctx context.Context) []model.SignInfo
}

type formService struct {
	intn   IntN
	tracer trace.Tracer
}

// NewFormService constructs a FormService. A nil intn uses math/rand/v2.
func NewFormService(intn IntN) FormService {
	if intn == nil {
		intn = rand.IntN
	}
	return &formService{
		intn:   intn,
		tracer: otel.Tracer("formdemo/internal/service"),
	}
}

func (s *formService) Froyo(ctx context.Context, flavor string, toppings []string) *model.FroyoOrder {
	_, span := s.tracer.Start(ctx, "FormService.Froyo")
	defer span.End()
	span.SetAttributes(attribute.Int("froyo.toppings", len(toppings)))

	if toppings == nil {
		toppings = []string{}
	}
	return &model.FroyoOrder{Flavor: flavor, Toppings: slices.Clone(toppings)}
}

func (s *formService) Favorites(ctx context.Context, color, animal, city string) *model.Favorites {
	_, span := s.tracer.Start(ctx, "FormService.Favorites")
	defer span.End()

	return &model.Favorites{Color: color, Animal: animal, City: city}
}

func (s *formService) SortMessage(ctx context.Context, message string) (*model.SecretMessage, error) {
	_, span := s.tracer.Start(ctx, "FormService.SortMessage")
	defer span.End()

	if message == "" {
		fail(span, ErrMessageRequired)
		return nil, ErrMessageRequired
	}
	span.SetAttributes(attribute.Int("message.length", len(message)))
	return &model.SecretMessage{Message: message, Sorted: SortLetters(message)}, nil
}

// SortLetters reorders the characters of message into ascending code point order.
// No normalization or collation is applied.
func SortLetters(message string) string {
	runes := []rune(message)
	slices.Sort(runes)
	return string(runes)
}

func (s *formService) Calculate(ctx context.Context, operand1, operand2, operation string) (*model.Calculation, error) {
	_, span := s.tracer.Start(ctx, "FormService.Calculate")
	defer span.End()
	span.SetAttributes(attribute.String("calculator.operation", operation))

	a, err := parseOperand(operand1)
	if err != nil {
		fail(span, err)
		return nil, fmt.Errorf("operand1: %w", err)
	}
	b, err := parseOperand(operand2)
	if err != nil {
		fail(span, err)
		return nil, fmt.Errorf("operand2: %w", err)
	}

	op := model.Operation(operation)
	var result float64
	switch op {
	case model.OpAdd:
		result = a + b
	case model.OpSubtract:
		result = a - b
	case model.OpMultiply:
		result = a * b
	case model.OpDivide:
		if b == 0 {
			fail(span, ErrDivisionByZero)
			return nil, ErrDivisionByZero
		}
		result = a / b
	default:
		fail(span, ErrInvalidOperation)
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperation, operation)
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		fail(span, ErrOutOfRange)
		return nil, ErrOutOfRange
	}

	return &model.Calculation{Operand1: a, Operand2: b, Operation: op, Result: result}, nil
}

func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	return v, nil
}

func (s *formService) Horoscope(ctx context.Context, name, sign string) *model.Horoscope {
	_, span := s.tracer.Start(ctx, "FormService.Horoscope")
	defer span.End()
	span.SetAttributes(attribute.String("horoscope.sign", sign))

	personality, ok := Personality(sign)
	if !ok {
		personality = UnknownSign
	}
	return &model.Horoscope{
		Name:        name,
		Sign:        sign,
		Personality: personality,
		LuckyNumber: LuckyMin + s.intn(LuckyMax-LuckyMin+1),
	}
}

func (s *formService) Signs(ctx context.Context) []model.SignInfo {
	_, span := s.tracer.Start(ctx, "FormService.Signs")
	defer span.End()

	return zodiac()
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
