package forms

import (
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// EmployeeRegistrationID identifies the employee registration form.
const EmployeeRegistrationID = "employee-registration"

// JobTypes lists the employment arrangements the registration form accepts.
var JobTypes = []string{"Full-Time", "Part-Time", "Contractor"}

// MsgSalaryRequiredFullTime is attached to the salary path when a full-time
// registration omits a positive salary.
const MsgSalaryRequiredFullTime = "Salary is required for full-time jobs"

// EmployeeRegistrationSchema builds the registration schema. Salary is
// optional on its own; the cross-field rule requires a positive salary only
// for full-time employees, so part-time entries with no salary stay valid.
func EmployeeRegistrationSchema() *schema.ObjectNode {
	return schema.Object(
		schema.Field{Name: "firstName", Node: schema.String().Required()},
		schema.Field{Name: "lastName", Node: schema.String().Required()},
		schema.Field{Name: "email", Node: schema.String().Required().Email()},
		schema.Field{Name: "jobType", Node: schema.String().Required().OneOf(JobTypes)},
		schema.Field{Name: "salary", Node: schema.Number().Min(0)},
		schema.Field{Name: "startDate", Node: schema.DateTime().Required()},
		schema.Field{Name: "remote", Node: schema.Boolean()},
		schema.Field{Name: "workHistories", Node: schema.Array(workHistorySchema())},
	).Refine("salary", MsgSalaryRequiredFullTime, func(bag map[string]any) bool {
		if bag["jobType"] != "Full-Time" {
			return true
		}
		salary, ok := bag["salary"].(float64)
		return ok && salary > 0
	})
}

func workHistorySchema() *schema.ObjectNode {
	return schema.Object(
		schema.Field{Name: "company", Node: schema.String().Required()},
		schema.Field{Name: "position", Node: schema.String().Required()},
	)
}

// EmployeeRegistrationDefinition pairs the schema with the form's identity.
func EmployeeRegistrationDefinition() model.Definition {
	return model.Definition{
		ID:          EmployeeRegistrationID,
		Action:      "/employees",
		Method:      "POST",
		Title:       "Employee Registration",
		Description: "Register a new employee record.",
		Schema:      EmployeeRegistrationSchema(),
	}
}

// EmployeeRegistrationModel builds the renderer-facing model with the switch
// widget on the remote flag.
func EmployeeRegistrationModel() (model.FormModel, error) {
	built, err := model.NewBuilder().Build(EmployeeRegistrationDefinition())
	if err != nil {
		return model.FormModel{}, err
	}
	overrideWidget(&built, "remote", model.WidgetSwitch)
	return built, nil
}

// NewEmployeeRegistrationForm mounts a state container for the registration
// form.
func NewEmployeeRegistrationForm(initial map[string]any, onSubmit form.SubmitFunc) (*form.Form, error) {
	return form.New(initial, form.Config{
		Schema:   EmployeeRegistrationSchema(),
		OnSubmit: onSubmit,
	})
}
