package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"arthika/internal/logger"
	"arthika/internal/models"
)

// auditService records who changed what. Audit writes are best-effort:
// a failure is logged but never surfaces to the request that triggered it.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log appends an audit entry for a user action.
func (s *auditService) Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{}) {
	log := logger.Get()

	var payload string
	if changes != nil {
		raw, err := json.Marshal(changes)
		if err != nil {
			log.Warnw("failed to marshal audit changes", "error", err, "action", action)
		} else {
			payload = string(raw)
		}
	}

	entry := models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      payload,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Errorw("failed to write audit log", "error", err, "action", action, "resource_type", resourceType)
	}
}
