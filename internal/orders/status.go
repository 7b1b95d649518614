package orders

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// ParseStatus validates a raw status value. Status is a flat field: any
// status may follow any other, there is no transition table.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}
