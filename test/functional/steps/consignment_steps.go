package steps

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"consignment-server/internal/consignment/usecases"
	shareddomain "consignment-server/internal/shared_kernel/domain"
)

var listedConsignmentRegex = regexp.MustCompile(`<a href="/consignments/[^"]+">([^<]+)</a>`)

func (fc *FeatureContext) fieldTemplatesExist(names string) error {
	for _, name := range splitList(names) {
		template, err := fc.app.FieldTemplates.CreateFieldTemplate(context.Background(), name)
		if err != nil {
			return fmt.Errorf("creating field template %q: %w", name, err)
		}
		fc.templates[name] = template.ID
	}
	return nil
}

func (fc *FeatureContext) iDeleteFieldTemplate(name string) error {
	id, err := fc.templateID(name)
	if err != nil {
		return err
	}
	return fc.capture(fc.apiDriver.DeleteFieldTemplate(id.String()))
}

func (fc *FeatureContext) consignmentsExist(names string) error {
	for _, name := range splitList(names) {
		if _, err := fc.app.Consignments.CreateConsignment(context.Background(), name); err != nil {
			return fmt.Errorf("creating consignment %q: %w", name, err)
		}
	}
	return nil
}

func (fc *FeatureContext) consignmentHasMeasurement(consignmentName, templateName, value string) error {
	consignment, err := fc.mustFindConsignment(consignmentName)
	if err != nil {
		return err
	}
	id, err := fc.templateID(templateName)
	if err != nil {
		return err
	}

	_, err = fc.app.Measurements.AddMeasurement(context.Background(), consignment.ID, usecases.MeasurementInput{
		TemplateID: id.String(),
		Value:      value,
	})
	return err
}

func (fc *FeatureContext) consignmentHasCustomMeasurement(consignmentName, fieldName, value string) error {
	consignment, err := fc.mustFindConsignment(consignmentName)
	if err != nil {
		return err
	}

	_, err = fc.app.Measurements.AddMeasurement(context.Background(), consignment.ID, usecases.MeasurementInput{
		CustomFieldName: fieldName,
		Value:           value,
	})
	return err
}

func (fc *FeatureContext) iCreateConsignmentWithFieldSetTo(name, templateName, value string) error {
	id, err := fc.templateID(templateName)
	if err != nil {
		return err
	}
	return fc.capture(fc.apiDriver.CreateConsignment(name, map[string]string{id.String(): value}))
}

func (fc *FeatureContext) iCreateConsignmentWithFieldsLeftEmpty(name, templateNames string) error {
	values := make(map[string]string)
	for _, templateName := range splitList(templateNames) {
		id, err := fc.templateID(templateName)
		if err != nil {
			return err
		}
		values[id.String()] = ""
	}
	return fc.capture(fc.apiDriver.CreateConsignment(name, values))
}

func (fc *FeatureContext) iToggleFields(templateNames string) error {
	ids := []string{}
	for _, templateName := range splitList(templateNames) {
		if id, ok := fc.templates[templateName]; ok {
			ids = append(ids, id.String())
			continue
		}
		ids = append(ids, templateName)
	}
	return fc.capture(fc.apiDriver.ToggleFields(ids))
}

func (fc *FeatureContext) iSearchConsignmentsFor(search string) error {
	return fc.capture(fc.apiDriver.ListConsignments(search))
}

func (fc *FeatureContext) iDeleteConsignment(name string) error {
	consignment, err := fc.mustFindConsignment(name)
	if err != nil {
		return err
	}
	return fc.capture(fc.apiDriver.DeleteConsignment(consignment.ID.String()))
}

func (fc *FeatureContext) iShouldBeRedirectedToTheEditPageOfConsignment(name string) error {
	consignment, err := fc.mustFindConsignment(name)
	if err != nil {
		return err
	}
	return fc.iShouldBeRedirectedTo(fmt.Sprintf("/admin-panel/consignments/%s/edit/", consignment.ID))
}

func (fc *FeatureContext) measurementValues(consignmentName string) (map[string]string, int, error) {
	consignment, err := fc.mustFindConsignment(consignmentName)
	if err != nil {
		return nil, 0, err
	}

	detail, err := fc.app.Consignments.GetConsignmentDetail(context.Background(), consignment.ID)
	if err != nil {
		return nil, 0, err
	}

	values := make(map[string]string, len(detail.Measurements))
	for _, measurement := range detail.Measurements {
		values[measurement.FieldName] = measurement.Measurement.Value
	}
	return values, len(detail.Measurements), nil
}

func (fc *FeatureContext) consignmentShouldHaveMeasurements(name string, count int) error {
	_, total, err := fc.measurementValues(name)
	if err != nil {
		return err
	}
	fc.require.Equal(count, total, "Unexpected number of measurements")
	return nil
}

func (fc *FeatureContext) consignmentShouldHaveMeasurementWithValue(name, field, value string) error {
	values, _, err := fc.measurementValues(name)
	if err != nil {
		return err
	}
	fc.require.Contains(values, field)
	fc.require.Equal(value, values[field])
	return nil
}

func (fc *FeatureContext) consignmentShouldHaveNoMeasurement(name, field string) error {
	values, _, err := fc.measurementValues(name)
	if err != nil {
		return err
	}
	fc.require.NotContains(values, field)
	return nil
}

func (fc *FeatureContext) consignmentShouldNotExist(name string) error {
	_, found, err := fc.findConsignment(name)
	if err != nil {
		return err
	}
	fc.require.False(found, "Consignment %q should have been deleted", name)
	return nil
}

func (fc *FeatureContext) thePublicPageOfConsignmentShouldContain(name, text string) error {
	consignment, err := fc.mustFindConsignment(name)
	if err != nil {
		return err
	}
	if err := fc.capture(fc.apiDriver.GetConsignment(consignment.ID.String())); err != nil {
		return err
	}
	fc.require.Equal(200, fc.response.StatusCode)
	fc.require.Contains(fc.body, text)
	return nil
}

func (fc *FeatureContext) theListedConsignmentsShouldBe(names string) error {
	listed := []string{}
	for _, match := range listedConsignmentRegex.FindAllStringSubmatch(fc.body, -1) {
		listed = append(listed, strings.TrimSpace(match[1]))
	}
	fc.require.Equal(splitList(names), listed)
	return nil
}

func (fc *FeatureContext) theFragmentShouldOfferAValueInputFor(templateName string) error {
	id, err := fc.templateID(templateName)
	if err != nil {
		return err
	}
	fc.require.Contains(fc.body, valueInputName(id))
	return nil
}

func (fc *FeatureContext) theFragmentShouldNotOfferAValueInputFor(templateName string) error {
	id, err := fc.templateID(templateName)
	if err != nil {
		return err
	}
	fc.require.NotContains(fc.body, valueInputName(id))
	return nil
}

func valueInputName(id shareddomain.ID) string {
	return fmt.Sprintf(`name="value_%s"`, id)
}
