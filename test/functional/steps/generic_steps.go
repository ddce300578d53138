package steps

import (
	"strings"

	"consignment-server/test/functional/driver"
)

func (fc *FeatureContext) theConsignmentServerIsRunning() error {
	app, err := driver.StartApp()
	if err != nil {
		return err
	}
	fc.app = app
	fc.apiDriver = driver.NewAPIDriver(app.Server.URL)
	return nil
}

func (fc *FeatureContext) iOpen(path string) error {
	return fc.capture(fc.apiDriver.Get(path))
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) iShouldBeRedirectedTo(location string) error {
	fc.require.Equal(303, fc.response.StatusCode, "Expected a see-other redirect")
	fc.require.Equal(location, fc.response.Header.Get("Location"))
	return nil
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
