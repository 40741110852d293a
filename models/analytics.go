package models

import "time"

// UsageEvent is an append-only record of a user-facing interaction. It is
// written best-effort by the request path and only ever read back by the
// admin analytics endpoint.
type UsageEvent struct {
	ID        string                 `bson:"id" json:"id"`
	EventType string                 `bson:"event_type" json:"event_type"`
	EventData map[string]interface{} `bson:"event_data,omitempty" json:"event_data,omitempty"`
	PageURL   string                 `bson:"page_url" json:"page_url"`
	UserIP    string                 `bson:"user_ip" json:"user_ip"`
	UserAgent string                 `bson:"user_agent" json:"user_agent"`
	SessionID string                 `bson:"session_id" json:"session_id"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
}

// RequestMeta carries the request-derived fields attached to usage events
// and booking provenance. Missing fields stay empty.
type RequestMeta struct {
	PageURL   string
	UserIP    string
	UserAgent string
	SessionID string
}

// DashboardStats is an ephemeral aggregate snapshot recomputed on every
// admin stats request. Never persisted, never cached.
type DashboardStats struct {
	TotalBookings  int64 `json:"totalBookings"`
	TotalRevenue   int64 `json:"totalRevenue"`
	TotalCustomers int   `json:"totalCustomers"`
	ActiveVehicles int64 `json:"activeVehicles"`
}
