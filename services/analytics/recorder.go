package analytics

import (
	analyticsRepo "angoni/database/repository/analytics"
	"angoni/models"

	"go.uber.org/zap"
)

// Recorder appends usage events. A pure observability side channel: every
// failure is logged and swallowed so the primary operation never notices.
type Recorder interface {
	Record(eventType string, data map[string]interface{}, meta models.RequestMeta)
}

// DefaultRecorder is the production implementation.
type DefaultRecorder struct {
	Repo analyticsRepo.AnalyticsRepository
}

// Record attempts a single usage-event write.
func (r *DefaultRecorder) Record(eventType string, data map[string]interface{}, meta models.RequestMeta) {
	event := &models.UsageEvent{
		EventType: eventType,
		EventData: data,
		PageURL:   meta.PageURL,
		UserIP:    meta.UserIP,
		UserAgent: meta.UserAgent,
		SessionID: meta.SessionID,
	}
	if err := r.Repo.Insert(event); err != nil {
		zap.L().Warn("Failed to record usage event", zap.String("event_type", eventType), zap.Error(err))
	}
}
