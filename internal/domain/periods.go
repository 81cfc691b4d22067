package domain

import (
	"fmt"
	"time"
)

// SalesPeriod identifica um mês de vendas: mês com dois dígitos e ano com quatro
type SalesPeriod struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

func PeriodOf(t time.Time) SalesPeriod {
	return SalesPeriod{
		Month: fmt.Sprintf("%02d", int(t.Month())),
		Year:  fmt.Sprintf("%04d", t.Year()),
	}
}

// ParsePeriod valida mês (01-12) e ano (quatro dígitos)
func ParsePeriod(month, year string) (SalesPeriod, error) {
	if len(month) != 2 || month < "01" || month > "12" {
		return SalesPeriod{}, fmt.Errorf("mês inválido %q, use dois dígitos (01-12)", month)
	}
	if len(year) != 4 || year < "1000" || year > "9999" {
		return SalesPeriod{}, fmt.Errorf("ano inválido %q, use quatro dígitos", year)
	}
	return SalesPeriod{Month: month, Year: year}, nil
}

// String retorna o período no formato mm-yyyy
func (p SalesPeriod) String() string {
	return fmt.Sprintf("%s-%s", p.Month, p.Year)
}

// Bounds retorna o intervalo [início, fim) do período no fuso informado
func (p SalesPeriod) Bounds(loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("01-2006", p.String(), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}

// AvailablePeriods representa os períodos com vendas registradas para uma loja
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato mm-yyyy
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}

func NewAvailablePeriods(periods []SalesPeriod) *AvailablePeriods {
	result := &AvailablePeriods{
		Periods: make([]string, 0, len(periods)),
		Years:   make([]string, 0),
		Months:  make([]string, 0),
	}

	years := make(map[string]bool)
	months := make(map[string]bool)
	for _, p := range periods {
		result.Periods = append(result.Periods, p.String())
		if !years[p.Year] {
			years[p.Year] = true
			result.Years = append(result.Years, p.Year)
		}
		if !months[p.Month] {
			months[p.Month] = true
			result.Months = append(result.Months, p.Month)
		}
	}

	return result
}
