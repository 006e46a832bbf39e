package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zeonixpay/zeonix-dashboard/db"
	"github.com/zeonixpay/zeonix-dashboard/dbtypes"
	"github.com/zeonixpay/zeonix-dashboard/types"
)

var GlobalAuditService *AuditService

// AuditService records successful mutations against the upstream api.
// Writes are queued so the proxy response is never delayed by the db.
type AuditService struct {
	queue  chan *dbtypes.AuditLog
	logger logrus.FieldLogger
}

// StartAuditService is used to start the global audit service
func StartAuditService() error {
	if GlobalAuditService != nil {
		return nil
	}

	GlobalAuditService = &AuditService{
		queue:  make(chan *dbtypes.AuditLog, 256),
		logger: logrus.StandardLogger().WithField("module", "audit"),
	}
	go GlobalAuditService.processQueue()

	return nil
}

// RecordMutation queues an audit entry for a proxied mutation. Details may
// be nil; otherwise it is stored as json.
func (as *AuditService) RecordMutation(session *types.Session, method, route string, statusCode int, details interface{}) {
	if as == nil {
		return
	}

	entry := &dbtypes.AuditLog{
		Role:       "",
		Method:     method,
		Route:      route,
		StatusCode: statusCode,
		CreatedAt:  time.Now(),
	}
	if session != nil {
		entry.SessionID = session.ID
		entry.Role = session.Role
	}
	if details != nil {
		detailsJson, err := json.Marshal(details)
		if err != nil {
			as.logger.WithError(err).Warnf("error encoding audit details for %v %v", method, route)
		} else {
			entry.Details = string(detailsJson)
		}
	}

	select {
	case as.queue <- entry:
	default:
		as.logger.Warnf("audit queue full, dropping entry for %v %v", method, route)
	}
}

func (as *AuditService) processQueue() {
	for entry := range as.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := db.InsertAuditLog(ctx, entry)
		cancel()
		if err != nil {
			as.logger.WithError(err).Errorf("error writing audit entry for %v %v", entry.Method, entry.Route)
		}
	}
}
