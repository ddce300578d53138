package internal

import (
	"net/url"
	"sort"
	"strings"

	"consignment-server/internal/consignment/domain"
	"consignment-server/internal/consignment/usecases"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

// FieldRow is one template line on the creation form.
type FieldRow struct {
	Input    domain.FieldInput
	Selected bool
	Value    string
}

// ParseCreationSubmission decodes the creation form. Only templates whose
// toggle is on are selected; their value defaults to "".
func ParseCreationSubmission(form url.Values) usecases.CreationSubmission {
	submission := usecases.CreationSubmission{
		Name:       form.Get("name"),
		Selections: make(map[shareddomain.ID]domain.FieldSelection),
	}

	for _, id := range SelectedTemplateIDs(form) {
		submission.Selections[id] = domain.FieldSelection{
			Selected: true,
			Value:    strings.TrimSpace(form.Get(domain.ValueKey(id))),
		}
	}

	return submission
}

// SelectedTemplateIDs returns the ids whose toggle is on, sorted for stable output.
func SelectedTemplateIDs(form url.Values) []shareddomain.ID {
	ids := []shareddomain.ID{}
	for key, values := range form {
		id, ok := domain.TemplateIDFromToggleKey(key)
		if !ok || len(values) == 0 {
			continue
		}
		if domain.IsToggleOn(values[len(values)-1]) {
			ids = append(ids, id)
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FieldValues collects the submitted value inputs keyed by input name.
func FieldValues(form url.Values) map[string]string {
	values := make(map[string]string)
	for key := range form {
		if strings.HasPrefix(key, "value_") {
			values[key] = form.Get(key)
		}
	}
	return values
}

func NewFieldRows(form domain.CreationForm, submission usecases.CreationSubmission) []FieldRow {
	rows := make([]FieldRow, len(form.Fields))
	for i, input := range form.Fields {
		selection := submission.Selections[input.TemplateID]
		rows[i] = FieldRow{
			Input:    input,
			Selected: selection.Selected,
			Value:    selection.Value,
		}
	}
	return rows
}

// SelectedInputs keeps the inputs of the selected rows, in form order.
func SelectedInputs(rows []FieldRow) []domain.FieldInput {
	inputs := []domain.FieldInput{}
	for _, row := range rows {
		if row.Selected {
			inputs = append(inputs, row.Input)
		}
	}
	return inputs
}

func ParseMeasurementInput(form url.Values) usecases.MeasurementInput {
	return usecases.MeasurementInput{
		TemplateID:      strings.TrimSpace(form.Get("field_template_id")),
		CustomFieldName: strings.TrimSpace(form.Get("custom_field_name")),
		Value:           strings.TrimSpace(form.Get("value")),
	}
}

// MeasurementInputFrom pre-fills the measurement form from a stored measurement.
func MeasurementInputFrom(measurement domain.Measurement) usecases.MeasurementInput {
	input := usecases.MeasurementInput{Value: measurement.Value}
	if id, ok := measurement.TemplateID(); ok {
		input.TemplateID = id.String()
	}
	if name, ok := measurement.CustomFieldName(); ok {
		input.CustomFieldName = name
	}
	return input
}
