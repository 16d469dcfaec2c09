package ports

import (
	"context"
	"time"
)

// WorkProgressEvent describes the progress of a work order after a routing
// step completed or the order was rejected.
type WorkProgressEvent struct {
	WorkOrderID        string  `json:"workOrderId"`
	ProductName        string  `json:"productName"`
	Status             string  `json:"status"`
	TotalProcesses     int     `json:"totalProcesses"`
	CompletedProcesses int     `json:"completedProcesses"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// EquipmentStatusEvent describes the current state of a piece of equipment
// together with its latest telemetry sample, when one exists.
type EquipmentStatusEvent struct {
	EquipmentID     string     `json:"equipmentId"`
	EquipmentName   string     `json:"equipmentName"`
	Location        string     `json:"location"`
	Status          string     `json:"status"`
	Temperature     *float64   `json:"temperature,omitempty"`
	ProductionSpeed *int       `json:"productionSpeed,omitempty"`
	RecordedAt      *time.Time `json:"recordedAt,omitempty"`
}

// Alert severities published through the notifier.
const (
	AlertSeverityWarning = "WARNING"
	AlertSeverityError   = "ERROR"
)

// Notifier publishes production events to interested subscribers.
// Implementations must be best effort: delivery failures are logged by the
// implementation and never surfaced to callers, so a slow or absent
// subscriber cannot fail a business transaction.
type Notifier interface {
	// NotifyWorkProgress publishes a work order progress update.
	NotifyWorkProgress(ctx context.Context, event WorkProgressEvent)

	// NotifyEquipmentUpdate publishes an equipment status update.
	NotifyEquipmentUpdate(ctx context.Context, event EquipmentStatusEvent)

	// NotifyAlert publishes a quality or equipment alert message.
	NotifyAlert(ctx context.Context, severity string, message string)

	// NotifyDashboard publishes a dashboard snapshot. The payload is
	// serialized as JSON for subscribers.
	NotifyDashboard(ctx context.Context, snapshot any)
}
