package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"hyprnurture/pkg/mail"
)

type EmailHandler struct {
	sender mail.Sender
}

func NewEmailHandler(sender mail.Sender) *EmailHandler {
	return &EmailHandler{sender: sender}
}

func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ActionResponse{Success: false, Message: "to_email, subject and html_content are required"})
		return
	}

	id, err := h.sender.Send(c.Request.Context(), mail.Message{
		To:      req.ToEmail,
		Subject: req.Subject,
		HTML:    req.HTMLContent,
	})
	if err != nil {
		slog.Error("error sending email", "to", req.ToEmail, "error", err)
		c.JSON(http.StatusOK, ActionResponse{Success: false, Message: "Failed to send email: " + err.Error()})
		return
	}

	slog.Info("email sent", "to", req.ToEmail, "id", id)
	c.JSON(http.StatusOK, ActionResponse{Success: true, Message: "Email sent successfully!"})
}
