package employee

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindFullTime    Kind = "full_time"
	KindPartTime    Kind = "part_time"
	KindContractual Kind = "contractual"
)

// Record is the closed set of employee variants kept in the registry.
// Each variant carries only the fields its pay rule needs. The record
// marker seals the set: computing pay and rendering reports dispatch over
// these concrete types in one place instead of through virtual methods.
type Record interface {
	Code() string
	Name() string
	RecordID() uuid.UUID
	Kind() Kind

	// WithRecordID returns a copy carrying the registry-assigned identity.
	WithRecordID(id uuid.UUID) Record

	record()
}

type identity struct {
	recordID uuid.UUID
	code     string
	name     string
}

func (id identity) Code() string        { return id.code }
func (id identity) Name() string        { return id.name }
func (id identity) RecordID() uuid.UUID { return id.recordID }

type FullTime struct {
	identity
	monthlySalary decimal.Decimal
}

func NewFullTime(code, name string, monthlySalary decimal.Decimal) FullTime {
	return FullTime{
		identity:      identity{code: code, name: name},
		monthlySalary: monthlySalary,
	}
}

func (e FullTime) Kind() Kind                     { return KindFullTime }
func (e FullTime) MonthlySalary() decimal.Decimal { return e.monthlySalary }
func (e FullTime) WithRecordID(id uuid.UUID) Record {
	e.recordID = id
	return e
}
func (e FullTime) record() {}

type PartTime struct {
	identity
	hourlyWage  decimal.Decimal
	hoursWorked decimal.Decimal
}

func NewPartTime(code, name string, hourlyWage, hoursWorked decimal.Decimal) PartTime {
	return PartTime{
		identity:    identity{code: code, name: name},
		hourlyWage:  hourlyWage,
		hoursWorked: hoursWorked,
	}
}

func (e PartTime) Kind() Kind                   { return KindPartTime }
func (e PartTime) HourlyWage() decimal.Decimal  { return e.hourlyWage }
func (e PartTime) HoursWorked() decimal.Decimal { return e.hoursWorked }
func (e PartTime) WithRecordID(id uuid.UUID) Record {
	e.recordID = id
	return e
}
func (e PartTime) record() {}

type Contractual struct {
	identity
	paymentPerProject decimal.Decimal
	projectsCompleted int
}

func NewContractual(code, name string, paymentPerProject decimal.Decimal, projectsCompleted int) Contractual {
	return Contractual{
		identity:          identity{code: code, name: name},
		paymentPerProject: paymentPerProject,
		projectsCompleted: projectsCompleted,
	}
}

func (e Contractual) Kind() Kind                         { return KindContractual }
func (e Contractual) PaymentPerProject() decimal.Decimal { return e.paymentPerProject }
func (e Contractual) ProjectsCompleted() int             { return e.projectsCompleted }
func (e Contractual) WithRecordID(id uuid.UUID) Record {
	e.recordID = id
	return e
}
func (e Contractual) record() {}

// Salary computes the pay owed for one record. Exact decimal arithmetic,
// no rounding: products keep their combined scale.
func Salary(r Record) decimal.Decimal {
	switch e := r.(type) {
	case FullTime:
		return e.monthlySalary
	case PartTime:
		return e.hourlyWage.Mul(e.hoursWorked)
	case Contractual:
		return e.paymentPerProject.Mul(decimal.NewFromInt(int64(e.projectsCompleted)))
	default:
		panic(fmt.Sprintf("employee: unknown record type %T", r))
	}
}
