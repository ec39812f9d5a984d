package employee

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/payroll/pkg/constants"
)

type CreateFullTimeDTO struct {
	Code          string `validate:"required,alphanum"`
	Name          string `validate:"required"`
	MonthlySalary decimal.Decimal
}

// Normalize trims the code. The name is kept verbatim: the report echoes
// it exactly as entered.
func (d *CreateFullTimeDTO) Normalize() {
	d.Code = strings.TrimSpace(d.Code)
}

func (d *CreateFullTimeDTO) Ok(_ context.Context) (map[string]string, bool) {
	d.Normalize()
	return validateStruct(d)
}

func (d *CreateFullTimeDTO) ToEntity() FullTime {
	return NewFullTime(d.Code, d.Name, d.MonthlySalary)
}

type CreatePartTimeDTO struct {
	Code        string `validate:"required,alphanum"`
	Name        string `validate:"required"`
	HourlyWage  decimal.Decimal
	HoursWorked decimal.Decimal
}

func (d *CreatePartTimeDTO) Normalize() {
	d.Code = strings.TrimSpace(d.Code)
}

func (d *CreatePartTimeDTO) Ok(_ context.Context) (map[string]string, bool) {
	d.Normalize()
	return validateStruct(d)
}

func (d *CreatePartTimeDTO) ToEntity() PartTime {
	return NewPartTime(d.Code, d.Name, d.HourlyWage, d.HoursWorked)
}

type CreateContractualDTO struct {
	Code              string `validate:"required,alphanum"`
	Name              string `validate:"required"`
	PaymentPerProject decimal.Decimal
	ProjectsCompleted int `validate:"gte=0"`
}

func (d *CreateContractualDTO) Normalize() {
	d.Code = strings.TrimSpace(d.Code)
}

func (d *CreateContractualDTO) Ok(_ context.Context) (map[string]string, bool) {
	d.Normalize()
	return validateStruct(d)
}

func (d *CreateContractualDTO) ToEntity() Contractual {
	return NewContractual(d.Code, d.Name, d.PaymentPerProject, d.ProjectsCompleted)
}

func validateStruct(v any) (map[string]string, bool) {
	errs := constants.Validate.Struct(v)
	if errs == nil {
		return map[string]string{}, true
	}
	fields := make(map[string]string)
	for _, fe := range errs.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields, false
}
