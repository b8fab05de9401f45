package handler

import "hyprnurture/internal/model"

// Pointer fields with `required` only check that the key was sent; empty
// strings are accepted.

type NewsRequest struct {
	CompanyName *string `json:"company_name" binding:"required"`
}

type GenerateRequest struct {
	Name        *string `json:"name" binding:"required"`
	Position    *string `json:"position" binding:"required"`
	CompanyName *string `json:"company_name" binding:"required"`
	CompanySize *string `json:"company_size" binding:"required"`
	Note        string  `json:"note"`
}

func (r GenerateRequest) toModel() model.GenerationRequest {
	return model.GenerationRequest{
		Name:        *r.Name,
		Position:    *r.Position,
		CompanyName: *r.CompanyName,
		CompanySize: *r.CompanySize,
		Note:        r.Note,
	}
}

type SendEmailRequest struct {
	ToEmail     string `json:"to_email" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	HTMLContent string `json:"html_content" binding:"required"`
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
