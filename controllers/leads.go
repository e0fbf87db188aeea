package controllers

import (
	"net/http"
	"strings"

	dbpkg "spellbee/db"
	"spellbee/models"

	"github.com/gin-gonic/gin"
)

type UpdateLeadRequest struct {
	Status string `json:"status" form:"status"`
	Note   string `json:"note" form:"note"`
}

// GET /api/leads?status=
func GetLeads(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	query := db.Order("id asc")
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !models.IsLeadStatusValid(status) {
			RespondError(c, "status inválido", http.StatusBadRequest)
			return
		}
		query = query.Where("status = ?", status)
	}

	var leads []models.Lead
	if err := query.Find(&leads).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"leads": leads})
}

// PUT /api/leads/:id
func UpdateLead(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var body UpdateLeadRequest
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Status != "" && !models.IsLeadStatusValid(body.Status) {
		RespondError(c, "status inválido", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var lead models.Lead
	if err := db.First(&lead, id).Error; err != nil {
		RespondError(c, "lead não encontrado", http.StatusNotFound)
		return
	}

	if body.Status != "" {
		lead.Status = body.Status
	}
	if body.Note != "" {
		lead.Note = body.Note
	}
	if err := db.Save(&lead).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"lead": lead})
}
