//go:build unit

package notification_test

import (
	"testing"
	"time"

	"dealer-contracts/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		key     string
		subject string
		body    string
		errIs   error
	}{
		{name: "valid", key: "signature_request", subject: "Contract {{.ContractNumber}}", body: "Beste {{.RecipientName}}"},
		{name: "uppercase key", key: "Signature", subject: "s", body: "b", errIs: notification.ErrInvalidTemplateKey},
		{name: "empty key", key: "", subject: "s", body: "b", errIs: notification.ErrInvalidTemplateKey},
		{name: "empty subject", key: "k", subject: " ", body: "b", errIs: notification.ErrEmptySubject},
		{name: "empty body", key: "k", subject: "s", body: "", errIs: notification.ErrEmptyBody},
		{name: "broken syntax", key: "k", subject: "s", body: "{{.SignLink", errIs: notification.ErrTemplateSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := notification.NewTemplate(tt.key, "", tt.subject, tt.body, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, actual.Name())
			assert.Equal(t, now, actual.UpdatedAt())
		})
	}
}

func TestTemplate_Render(t *testing.T) {
	tpl, err := notification.NewTemplate(
		notification.TemplateSignatureRequest,
		"Ondertekenverzoek",
		"Uw koopovereenkomst {{.ContractNumber}}",
		"Beste {{.RecipientName}}, onderteken via {{.SignLink}} voor {{.ExpiresAt}}.",
		time.Now(),
	)
	require.NoError(t, err)

	subject, body, err := tpl.Render(notification.TemplateData{
		RecipientName:  "Jan",
		ContractNumber: "XX123Y-260314-0ABC",
		SignLink:       "https://x/contract/sign/t",
		ExpiresAt:      "21-03-2026",
	})
	require.NoError(t, err)
	assert.Equal(t, "Uw koopovereenkomst XX123Y-260314-0ABC", subject)
	assert.Equal(t, "Beste Jan, onderteken via https://x/contract/sign/t voor 21-03-2026.", body)

	broken := notification.ReconstructTemplate("k", "k", "s", "{{.Unknown}}", time.Now())
	_, _, err = broken.Render(notification.TemplateData{})
	assert.Error(t, err)
}

func TestRecipientResolution(t *testing.T) {
	t.Run("explicit requires name and valid email", func(t *testing.T) {
		_, err := notification.NewExplicit("", "jan@example.nl")
		assert.ErrorIs(t, err, notification.ErrRecipientRequired)

		_, err = notification.NewExplicit("Jan", "jan")
		assert.ErrorIs(t, err, notification.ErrInvalidEmail)

		ex, err := notification.NewExplicit(" Jan ", " jan@example.nl ")
		require.NoError(t, err)
		assert.Equal(t, "Jan", ex.Name)
		assert.Equal(t, "jan@example.nl", ex.Email.Value())
	})

	t.Run("variants are distinguished by type", func(t *testing.T) {
		id := uuid.New()
		resolutions := []notification.RecipientResolution{
			notification.ByVehicle{VehicleID: id},
			notification.Explicit{Name: "Jan"},
		}
		var kinds []string
		for _, r := range resolutions {
			switch v := r.(type) {
			case notification.ByVehicle:
				assert.Equal(t, id, v.VehicleID)
				kinds = append(kinds, "vehicle")
			case notification.Explicit:
				kinds = append(kinds, "explicit")
			}
		}
		assert.Equal(t, []string{"vehicle", "explicit"}, kinds)
	})
}
