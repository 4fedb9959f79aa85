package reportutils

import (
	"errors"

	"github.com/ehsanranjbar/reportutils/internal/ordmap"
	"github.com/ehsanranjbar/reportutils/iters"
)

var (
	// ErrInvalidInput is returned when a report does not carry a well formed
	// mapping of report ids to employee groups.
	ErrInvalidInput = errors.New("invalid input")
)

// EmployeeGroup is an ordered sequence of employee identifiers.
type EmployeeGroup[T any] []T

// Report maps report ids to employee groups. The groups are enumerated in
// the order they were added.
type Report[T any] struct {
	AllEmployees *ordmap.Map[string, EmployeeGroup[T]]
}

// NewReport creates a new Report with an empty mapping.
func NewReport[T any]() *Report[T] {
	return &Report[T]{
		AllEmployees: ordmap.New[string, EmployeeGroup[T]](),
	}
}

// Add appends a group under the given report id. It returns ordmap.ErrKeyExists
// if the id is already present and ErrInvalidInput on a nil report.
func (r *Report[T]) Add(id string, group EmployeeGroup[T]) error {
	if r == nil {
		return ErrInvalidInput
	}
	if r.AllEmployees == nil {
		r.AllEmployees = ordmap.New[string, EmployeeGroup[T]]()
	}
	return r.AllEmployees.Add(id, group)
}

// Len returns the total number of employees across all groups.
func (r *Report[T]) Len() int {
	if r == nil || r.AllEmployees == nil {
		return 0
	}

	var n int
	for g := range r.AllEmployees.Values() {
		n += len(g)
	}
	return n
}

func (r *Report[T]) valid() bool {
	return r != nil && r.AllEmployees != nil
}

// Flatten returns all employees of the report as one list, group by group in
// enumeration order. The result never shares memory with the report.
func Flatten[T any](r *Report[T]) ([]T, error) {
	if !r.valid() {
		return nil, ErrInvalidInput
	}

	employees := make([]T, 0, r.Len())
	for g := range r.AllEmployees.Values() {
		employees = append(employees, g...)
	}
	return employees, nil
}

// Iter returns an iterator over the same sequence as Flatten keyed by the
// position of each employee in it. The iterator must be closed.
func Iter[T any](r *Report[T]) (*iters.Enumerator[int, T], error) {
	if !r.valid() {
		return nil, ErrInvalidInput
	}

	groups := iters.Map(iters.Seq(r.AllEmployees.Iter()), func(g EmployeeGroup[T]) (iters.ValueIterator[T], error) {
		return iters.Slice(g), nil
	})
	return iters.Enumerate[int, T](iters.Flatten[T](groups)), nil
}
