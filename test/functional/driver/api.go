package driver

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
)

// APIDriver talks to the server the way a browser would. Redirects are not
// followed so that steps can assert on them.
type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}

	return &APIDriver{
		baseURL: baseURL,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (d *APIDriver) Get(path string) (*http.Response, error) {
	return d.client.Get(d.baseURL + path)
}

func (d *APIDriver) PostForm(path string, form url.Values) (*http.Response, error) {
	return d.client.PostForm(d.baseURL+path, form)
}

func (d *APIDriver) PostHTMX(path string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, d.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return d.client.Do(req)
}

func (d *APIDriver) Login(username, password, next string) (*http.Response, error) {
	return d.PostForm("/auth/login", url.Values{
		"username": {username},
		"password": {password},
		"next":     {next},
	})
}

func (d *APIDriver) Logout() (*http.Response, error) {
	return d.PostForm("/auth/logout", url.Values{})
}

// CreateConsignment submits the dynamic creation form. Only the template ids
// present in values are toggled on.
func (d *APIDriver) CreateConsignment(name string, values map[string]string) (*http.Response, error) {
	form := url.Values{"name": {name}}
	for id, value := range values {
		form.Set(fmt.Sprintf("field_%s", id), "on")
		form.Set(fmt.Sprintf("value_%s", id), value)
	}
	return d.PostForm("/admin-panel/consignments/create/", form)
}

func (d *APIDriver) ToggleFields(ids []string) (*http.Response, error) {
	form := url.Values{}
	for _, id := range ids {
		form.Set(fmt.Sprintf("field_%s", id), "on")
	}
	return d.PostHTMX("/admin-panel/htmx/field-toggle/", form)
}

func (d *APIDriver) ListConsignments(search string) (*http.Response, error) {
	return d.Get("/?search=" + url.QueryEscape(search))
}

func (d *APIDriver) GetConsignment(id string) (*http.Response, error) {
	return d.Get(fmt.Sprintf("/consignments/%s", id))
}

func (d *APIDriver) DeleteFieldTemplate(id string) (*http.Response, error) {
	return d.PostForm(fmt.Sprintf("/admin-panel/field-templates/%s/delete/", id), url.Values{})
}

func (d *APIDriver) DeleteConsignment(id string) (*http.Response, error) {
	return d.PostForm(fmt.Sprintf("/admin-panel/consignments/%s/delete/", id), url.Values{})
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.Get("/healthz")
}
