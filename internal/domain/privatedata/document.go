package privatedata

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"

	"venture-hub/internal/access"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownSection = errors.New("unknown section")
	ErrNotFound       = errors.New("section not found")
)

// Document es el contenido tipado de una sección privada.
type Document interface {
	Section() access.Section
	Validate() error
}

// Record es una sección privada de una startup: exactamente uno por (startup, section).
type Record struct {
	StartupID string
	Section   access.Section
	Document  Document
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New devuelve el documento por defecto de la sección (lo que guarda GetOrCreate).
func New(section access.Section) (Document, error) {
	switch section {
	case access.SectionFinancials:
		return newFinancials(), nil
	case access.SectionPeople:
		return newPeople(), nil
	case access.SectionNews:
		return newNews(), nil
	case access.SectionTechnology:
		return newTechnology(), nil
	default:
		return nil, ErrUnknownSection
	}
}

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, reason)
}

var (
	quarterRe = regexp.MustCompile(`^Q[1-4] \d{4}$`)
	hundred   = decimal.NewFromInt(100)
)

func checkURL(field, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid(field, "must be an absolute http(s) URL")
	}
	return nil
}

func checkEmail(field, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if _, err := mail.ParseAddress(raw); err != nil {
		return invalid(field, "must be a valid email")
	}
	return nil
}

// Límites de columna NUMERIC(digits, decimals).
const (
	percentDigits, percentScale = 5, 2
	moneyDigits, moneyScale     = 12, 2
)

// checkDecimal acota d a maxDigits dígitos con a lo sumo maxScale decimales.
// El exponente se mira antes que el coeficiente: 1e20000000 se rechaza sin expandirlo.
func checkDecimal(field string, d decimal.Decimal, maxDigits, maxScale int32) error {
	exp := d.Exponent()
	if exp > maxDigits || exp < -(maxDigits+maxScale) {
		return invalid(field, fmt.Sprintf("must have at most %d digits and %d decimals", maxDigits, maxScale))
	}
	if exp < -maxScale && !d.Truncate(maxScale).Equal(d) {
		return invalid(field, fmt.Sprintf("must have at most %d decimals", maxScale))
	}
	if !d.IsZero() && int32(d.NumDigits())+exp > maxDigits-maxScale {
		return invalid(field, fmt.Sprintf("must have at most %d digits before the decimal point", maxDigits-maxScale))
	}
	return nil
}

// checkAmount: null permitido, sin restricción de signo.
func checkAmount(field string, d decimal.NullDecimal, maxDigits, maxScale int32) error {
	if !d.Valid {
		return nil
	}
	return checkDecimal(field, d.Decimal, maxDigits, maxScale)
}

func checkNonNegative(field string, d decimal.NullDecimal, maxDigits, maxScale int32) error {
	if err := checkAmount(field, d, maxDigits, maxScale); err != nil {
		return err
	}
	if d.Valid && d.Decimal.IsNegative() {
		return invalid(field, "must be >= 0")
	}
	return nil
}

func checkMoney(field string, d decimal.NullDecimal) error {
	return checkNonNegative(field, d, moneyDigits, moneyScale)
}

func checkPercent(field string, d decimal.NullDecimal) error {
	return checkPercentScale(field, d, percentScale)
}

func checkPercentScale(field string, d decimal.NullDecimal, scale int32) error {
	if !d.Valid {
		return nil
	}
	return percentValue(field, d.Decimal, scale)
}

func percentValue(field string, d decimal.Decimal, scale int32) error {
	if err := checkDecimal(field, d, percentDigits, scale); err != nil {
		return err
	}
	if d.IsNegative() || d.GreaterThan(hundred) {
		return invalid(field, "must be between 0 and 100")
	}
	return nil
}

func checkDate(field, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return invalid(field, "must be YYYY-MM-DD")
	}
	return nil
}

func checkQuarter(field, raw string) error {
	if !quarterRe.MatchString(strings.TrimSpace(raw)) {
		return invalid(field, `must look like "Q1 2025"`)
	}
	return nil
}

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return invalid(field, "is required")
	}
	return nil
}

// emptyIfNil: un null en el patch no debe dejar null donde el documento guarda listas.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// firstErr corta en el primer error (el orden de checks define qué se reporta).
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
