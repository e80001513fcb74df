package index

// Stage names used in progress notifications.
const (
	StageBuild = "build"
	StageJSON  = "json"
	StageXML   = "xml"
	StageText  = "txt"
)

// Progress is one observability notification from a pipeline stage.
// Notifications for a given stage are strictly monotonically increasing in
// Processed and delivered in traversal order; the Done notification is
// always the last one for its stage. Reporting never changes the computed
// result.
type Progress struct {
	Stage     string
	Processed int
	Total     int
	Done      bool
}

// ProgressFunc receives notifications synchronously at yield points. A nil
// ProgressFunc disables reporting. The callback runs on the goroutine
// executing the pipeline, so it must not block for long.
type ProgressFunc func(Progress)

// NotifyChannel adapts a buffered channel into a ProgressFunc for async
// consumers. Intermediate sends never block: when the consumer lags they are
// dropped rather than stalling the run. Done notifications always go
// through, so a consumer draining the channel sees each stage finish.
// Delivered notifications keep their order.
func NotifyChannel(ch chan<- Progress) ProgressFunc {
	return func(p Progress) {
		if p.Done {
			ch <- p
			return
		}
		select {
		case ch <- p:
		default:
		}
	}
}
