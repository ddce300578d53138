package steps

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"consignment-server/internal/consignment/domain"
	"consignment-server/internal/consignment/usecases"
	shareddomain "consignment-server/internal/shared_kernel/domain"
	"consignment-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	app       *driver.App
	apiDriver *driver.APIDriver
	response  *http.Response
	body      string
	templates map[string]shareddomain.ID
	require   *require.Assertions
	t         godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Given(`^the consignment server is running$`, fc.theConsignmentServerIsRunning)
	ctx.When(`^I open "([^"]*)"$`, fc.iOpen)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^I should be redirected to "([^"]*)"$`, fc.iShouldBeRedirectedTo)

	// Auth steps
	ctx.Given(`^an operator "([^"]*)" with password "([^"]*)" exists$`, fc.anOperatorWithPasswordExists)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, fc.iAmLoggedInAsWithPassword)
	ctx.When(`^I log in as "([^"]*)" with password "([^"]*)"$`, fc.iLogInAsWithPassword)
	ctx.When(`^I log in as "([^"]*)" with password "([^"]*)" and next "([^"]*)"$`, fc.iLogInAsWithPasswordAndNext)
	ctx.When(`^I log out$`, fc.iLogOut)

	// Field template steps
	ctx.Given(`^field templates "([^"]*)" exist$`, fc.fieldTemplatesExist)
	ctx.When(`^I delete field template "([^"]*)"$`, fc.iDeleteFieldTemplate)

	// Consignment steps
	ctx.Given(`^consignments? "([^"]*)" exists?$`, fc.consignmentsExist)
	ctx.Given(`^consignment "([^"]*)" has measurement "([^"]*)" with value "([^"]*)"$`, fc.consignmentHasMeasurement)
	ctx.Given(`^consignment "([^"]*)" has custom measurement "([^"]*)" with value "([^"]*)"$`, fc.consignmentHasCustomMeasurement)
	ctx.When(`^I create consignment "([^"]*)" with field "([^"]*)" set to "([^"]*)"$`, fc.iCreateConsignmentWithFieldSetTo)
	ctx.When(`^I create consignment "([^"]*)" with fields "([^"]*)" left empty$`, fc.iCreateConsignmentWithFieldsLeftEmpty)
	ctx.When(`^I toggle fields "([^"]*)"$`, fc.iToggleFields)
	ctx.When(`^I search consignments for "([^"]*)"$`, fc.iSearchConsignmentsFor)
	ctx.When(`^I delete consignment "([^"]*)"$`, fc.iDeleteConsignment)
	ctx.Then(`^I should be redirected to the edit page of consignment "([^"]*)"$`, fc.iShouldBeRedirectedToTheEditPageOfConsignment)
	ctx.Then(`^consignment "([^"]*)" should have (\d+) measurements$`, fc.consignmentShouldHaveMeasurements)
	ctx.Then(`^consignment "([^"]*)" should have measurement "([^"]*)" with value "([^"]*)"$`, fc.consignmentShouldHaveMeasurementWithValue)
	ctx.Then(`^consignment "([^"]*)" should have no measurement "([^"]*)"$`, fc.consignmentShouldHaveNoMeasurement)
	ctx.Then(`^consignment "([^"]*)" should not exist$`, fc.consignmentShouldNotExist)
	ctx.Then(`^the public page of consignment "([^"]*)" should contain "([^"]*)"$`, fc.thePublicPageOfConsignmentShouldContain)
	ctx.Then(`^the listed consignments should be "([^"]*)"$`, fc.theListedConsignmentsShouldBe)
	ctx.Then(`^the fragment should offer a value input for "([^"]*)"$`, fc.theFragmentShouldOfferAValueInputFor)
	ctx.Then(`^the fragment should not offer a value input for "([^"]*)"$`, fc.theFragmentShouldNotOfferAValueInputFor)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if fc.app != nil {
			fc.app.Close()
			fc.app = nil
		}
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.apiDriver = nil
	fc.response = nil
	fc.body = ""
	fc.templates = make(map[string]shareddomain.ID)
}

// capture keeps the last response and drains its body so the connection can be reused.
func (fc *FeatureContext) capture(response *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	fc.response = response
	fc.body = string(body)
	return nil
}

func (fc *FeatureContext) findConsignment(name string) (domain.Consignment, bool, error) {
	consignments, _, err := fc.app.Consignments.ListConsignments(
		context.Background(),
		name,
		usecases.Pagination{Limit: 100},
	)
	if err != nil {
		return domain.Consignment{}, false, err
	}

	for _, consignment := range consignments {
		if consignment.Name.String() == name {
			return consignment, true, nil
		}
	}
	return domain.Consignment{}, false, nil
}

func (fc *FeatureContext) mustFindConsignment(name string) (domain.Consignment, error) {
	consignment, found, err := fc.findConsignment(name)
	if err != nil {
		return domain.Consignment{}, err
	}
	if !found {
		return domain.Consignment{}, fmt.Errorf("consignment %q not found", name)
	}
	return consignment, nil
}

func (fc *FeatureContext) templateID(name string) (shareddomain.ID, error) {
	id, ok := fc.templates[name]
	if !ok {
		return "", fmt.Errorf("field template %q was not created in this scenario", name)
	}
	return id, nil
}
