package controllers

import (
	"net/http"
	"strings"

	dbpkg "spellbee/db"
	"spellbee/models"
	"spellbee/tools"

	"github.com/gin-gonic/gin"
)

// GET /api/parents?q=
// Filtro opcional por nome ou telefone, mesmo critério da busca do bot.
func GetParents(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	query := db.Order("id asc")
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, "%"+tools.NormalizePhone(q)+"%")
	}

	var parents []models.Parent
	if err := query.Find(&parents).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"parents": parents})
}

// GET /api/parents/:id
func GetParentByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var parent models.Parent
	if err := db.First(&parent, id).Error; err != nil {
		RespondError(c, "parent não encontrado", http.StatusNotFound)
		return
	}

	var lead models.Lead
	if err := db.Where("parent_id = ?", parent.ID).First(&lead).Error; err != nil {
		RespondSuccess(c, gin.H{"parent": parent})
		return
	}

	RespondSuccess(c, gin.H{"parent": parent, "lead": lead})
}
