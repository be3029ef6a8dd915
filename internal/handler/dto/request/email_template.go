package request

import "dealer-contracts/internal/usecase/commands"

type UpsertEmailTemplateRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Subject string `json:"subject" binding:"required,max=500"`
	Body    string `json:"body" binding:"required,max=20000"`
}

func (r *UpsertEmailTemplateRequest) ToCommand(key string) commands.UpsertTemplateRequest {
	return commands.UpsertTemplateRequest{
		Key:     key,
		Name:    r.Name,
		Subject: r.Subject,
		Body:    r.Body,
	}
}
