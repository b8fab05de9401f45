package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const draftsUnavailable = "Draft saving is not available (no database)."

// Drafts are not persisted. The endpoints exist so existing clients keep
// working.
type DraftHandler struct{}

func NewDraftHandler() *DraftHandler {
	return &DraftHandler{}
}

func (h *DraftHandler) SaveDraft(c *gin.Context) {
	c.JSON(http.StatusOK, ActionResponse{Success: false, Message: draftsUnavailable})
}

func (h *DraftHandler) GetDrafts(c *gin.Context) {
	c.JSON(http.StatusOK, []any{})
}
