package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hyprnurture/internal/model"
	"hyprnurture/internal/outreach"
)

type NewsFinder interface {
	Recent(ctx context.Context, company string) []model.NewsItem
}

type CompanyLooker interface {
	Lookup(ctx context.Context, company string) model.CompanyProfile
}

type MessageGenerator interface {
	Generate(ctx context.Context, req model.GenerationRequest) (*model.GenerationResult, error)
}

type OutreachHandler struct {
	news      NewsFinder
	company   CompanyLooker
	generator MessageGenerator
}

func NewOutreachHandler(news NewsFinder, company CompanyLooker, generator MessageGenerator) *OutreachHandler {
	return &OutreachHandler{
		news:      news,
		company:   company,
		generator: generator,
	}
}

func (h *OutreachHandler) GetNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company_name is required"})
		return
	}

	c.JSON(http.StatusOK, h.news.Recent(c.Request.Context(), *req.CompanyName))
}

func (h *OutreachHandler) GetCompanyInfo(c *gin.Context) {
	company := strings.TrimSpace(c.Query("company"))
	if company == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, h.company.Lookup(c.Request.Context(), company))
}

func (h *OutreachHandler) Generate(c *gin.Context) {
	var body GenerateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		slog.Warn("invalid generate request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req := body.toModel()

	slog.Info("generating outreach", "name", req.Name, "position", req.Position, "company", req.CompanyName)

	res, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		var genErr *outreach.GenerationError
		var malformed *outreach.ResponseMalformedError
		switch {
		case errors.As(err, &genErr), errors.As(err, &malformed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			slog.Error("error generating outreach", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Generation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *OutreachHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
