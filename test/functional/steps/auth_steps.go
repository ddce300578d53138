package steps

import (
	"context"
)

func (fc *FeatureContext) anOperatorWithPasswordExists(username, password string) error {
	return fc.app.Auth.EnsureOperator(context.Background(), username, password)
}

func (fc *FeatureContext) iAmLoggedInAsWithPassword(username, password string) error {
	if err := fc.iLogInAsWithPassword(username, password); err != nil {
		return err
	}
	fc.require.Equal(303, fc.response.StatusCode, "Login should succeed")
	return nil
}

func (fc *FeatureContext) iLogInAsWithPassword(username, password string) error {
	return fc.capture(fc.apiDriver.Login(username, password, ""))
}

func (fc *FeatureContext) iLogInAsWithPasswordAndNext(username, password, next string) error {
	return fc.capture(fc.apiDriver.Login(username, password, next))
}

func (fc *FeatureContext) iLogOut() error {
	return fc.capture(fc.apiDriver.Logout())
}
