package sandbox

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	defaultProjectColor = "#283593"

	maxNameLength    = 30
	maxURLLength     = 255
	maxTextLength    = 255
	maxSummaryLength = 255
)

type projectCreateRequest struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

func (r *projectCreateRequest) sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Website = strings.TrimSpace(r.Website)
}

func (r *projectCreateRequest) validate() url.Values {
	errors := url.Values{}
	requireName(errors, r.Name)
	requireWebsite(errors, "website", r.Website)
	return errors
}

type projectUpdateRequest struct {
	Name            string `json:"name"`
	Website         string `json:"website"`
	Icon            string `json:"icon"`
	Greeting        string `json:"greeting"`
	GreetingTimeout uint   `json:"greeting_timeout"`
	Color           string `json:"color"`
}

func (r *projectUpdateRequest) sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Website = strings.TrimSpace(r.Website)
	r.Color = strings.ToUpper(strings.TrimSpace(r.Color))
	if r.Color == "" {
		r.Color = defaultProjectColor
	}
}

func (r *projectUpdateRequest) validate() url.Values {
	errors := url.Values{}
	requireName(errors, r.Name)
	requireWebsite(errors, "website", r.Website)
	if !strings.HasPrefix(r.Color, "#") {
		errors.Add("color", "color must be a hex color code")
	}
	return errors
}

type whatsappIntegrationRequest struct {
	Name        string `json:"name"`
	Text        string `json:"text"`
	PhoneNumber string `json:"phone_number"`
}

func (r *whatsappIntegrationRequest) validate() url.Values {
	errors := url.Values{}
	requireName(errors, strings.TrimSpace(r.Name))
	requireField(errors, "text", r.Text, maxTextLength)
	requireField(errors, "phone_number", r.PhoneNumber, maxTextLength)
	return errors
}

type contentIntegrationRequest struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Text    string `json:"text"`
}

func (r *contentIntegrationRequest) validate() url.Values {
	errors := url.Values{}
	requireName(errors, strings.TrimSpace(r.Name))
	requireField(errors, "title", r.Title, maxTextLength)
	requireField(errors, "summary", r.Summary, maxSummaryLength)
	if strings.TrimSpace(r.Text) == "" {
		errors.Add("text", "text is a required field")
	}
	return errors
}

type phoneCallIntegrationRequest struct {
	Name        string `json:"name"`
	Text        string `json:"text"`
	PhoneNumber string `json:"phone_number"`
}

func (r *phoneCallIntegrationRequest) validate() url.Values {
	errors := url.Values{}
	requireName(errors, strings.TrimSpace(r.Name))
	requireField(errors, "text", r.Text, maxTextLength)
	requireField(errors, "phone_number", r.PhoneNumber, maxTextLength)
	return errors
}

type linkIntegrationRequest struct {
	Name    string `json:"name"`
	Text    string `json:"text"`
	Website string `json:"website"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
}

func (r *linkIntegrationRequest) validate() url.Values {
	errors := url.Values{}
	requireName(errors, strings.TrimSpace(r.Name))
	requireField(errors, "text", r.Text, maxTextLength)
	requireWebsite(errors, "website", r.Website)
	return errors
}

type integrationsUpdateRequest struct {
	Order []uuid.UUID `json:"order"`
}

func requireName(errors url.Values, name string) {
	if name == "" {
		errors.Add("name", "name is a required field")
		return
	}
	if len(name) > maxNameLength {
		errors.Add("name", "name must be at most 30 characters")
	}
}

func requireField(errors url.Values, field, value string, maxLength int) {
	if strings.TrimSpace(value) == "" {
		errors.Add(field, field+" is a required field")
		return
	}
	if len(value) > maxLength {
		errors.Add(field, field+" is too long")
	}
}

func requireWebsite(errors url.Values, field, website string) {
	website = strings.TrimSpace(website)
	if website == "" {
		errors.Add(field, field+" is a required field")
		return
	}
	if len(website) > maxURLLength {
		errors.Add(field, field+" must be at most 255 characters")
		return
	}
	parsed, err := url.Parse(website)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		errors.Add(field, field+" must be a valid URL")
	}
}
