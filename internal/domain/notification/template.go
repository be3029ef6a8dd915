package notification

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"text/template"
	"time"
)

var (
	ErrInvalidTemplateKey = errors.New("template key must be lowercase letters, digits or underscores")
	ErrEmptySubject       = errors.New("template subject is required")
	ErrEmptyBody          = errors.New("template body is required")
	ErrTemplateSyntax     = errors.New("template does not parse")
)

// Key of the template used for signing invitations.
const TemplateSignatureRequest = "signature_request"

var templateKeyRegex = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// TemplateData is what templates can reference, e.g. {{.SignLink}}.
type TemplateData struct {
	RecipientName  string
	CompanyName    string
	VehicleTitle   string
	LicensePlate   string
	ContractNumber string
	SignLink       string
	ExpiresAt      string
}

type Template struct {
	key       string
	name      string
	subject   string
	body      string
	updatedAt time.Time
}

func NewTemplate(key, name, subject, body string, now time.Time) (*Template, error) {
	if !templateKeyRegex.MatchString(key) {
		return nil, ErrInvalidTemplateKey
	}
	if strings.TrimSpace(subject) == "" {
		return nil, ErrEmptySubject
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	for _, src := range []string{subject, body} {
		if _, err := template.New(key).Option("missingkey=error").Parse(src); err != nil {
			return nil, errors.Join(ErrTemplateSyntax, err)
		}
	}
	if strings.TrimSpace(name) == "" {
		name = key
	}
	return &Template{
		key:       key,
		name:      name,
		subject:   subject,
		body:      body,
		updatedAt: now,
	}, nil
}

func ReconstructTemplate(key, name, subject, body string, updatedAt time.Time) *Template {
	return &Template{
		key:       key,
		name:      name,
		subject:   subject,
		body:      body,
		updatedAt: updatedAt,
	}
}

// Render executes subject and body against data.
func (t *Template) Render(data TemplateData) (subject, body string, err error) {
	subject, err = execute(t.key+":subject", t.subject, data)
	if err != nil {
		return "", "", err
	}
	body, err = execute(t.key+":body", t.body, data)
	if err != nil {
		return "", "", err
	}
	return subject, body, nil
}

func execute(name, src string, data TemplateData) (string, error) {
	tpl, err := template.New(name).Parse(src)
	if err != nil {
		return "", errors.Join(ErrTemplateSyntax, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (t *Template) Key() string          { return t.key }
func (t *Template) Name() string         { return t.name }
func (t *Template) Subject() string      { return t.subject }
func (t *Template) Body() string         { return t.body }
func (t *Template) UpdatedAt() time.Time { return t.updatedAt }

// DefaultSignatureRequest is used when the signature_request template has
// been deleted from the store.
func DefaultSignatureRequest() *Template {
	return ReconstructTemplate(
		TemplateSignatureRequest,
		"Ondertekenverzoek koopovereenkomst",
		"Uw koopovereenkomst {{.ContractNumber}} van {{.CompanyName}}",
		`Beste {{.RecipientName}},

Hierbij ontvangt u de koopovereenkomst voor de {{.VehicleTitle}} ({{.LicensePlate}}).
U kunt de overeenkomst digitaal ondertekenen via {{.SignLink}}.
De link is geldig tot {{.ExpiresAt}}.

Met vriendelijke groet,
{{.CompanyName}}`,
		time.Time{},
	)
}
