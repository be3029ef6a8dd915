package response

import "dealer-contracts/internal/domain/notification"

type EmailTemplateResponse struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromEmailTemplate(t *notification.Template) *EmailTemplateResponse {
	return &EmailTemplateResponse{
		Key:       t.Key(),
		Name:      t.Name(),
		Subject:   t.Subject(),
		Body:      t.Body(),
		UpdatedAt: t.UpdatedAt().Unix(),
	}
}

func FromEmailTemplates(ts []*notification.Template) []*EmailTemplateResponse {
	res := make([]*EmailTemplateResponse, len(ts))
	for i, t := range ts {
		res[i] = FromEmailTemplate(t)
	}
	return res
}
