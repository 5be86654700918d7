package model

// StatusKind distinguishes the messages shown instead of a chart
type StatusKind string

const (
	StatusNoData StatusKind = "no-data"
	StatusFailed StatusKind = "failed"
)

const (
	noDataMessage  = "There is no burndown data for this milestone yet. Set a start and due date and add tickets to the milestone."
	failureMessage = "Failed to retrieve burndown data."
)

// Status is a user visible message replacing the chart
type Status struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message"`
}

// NoDataStatus is shown when the upstream has nothing to plot
func NoDataStatus() Status {
	return Status{Kind: StatusNoData, Message: noDataMessage}
}

// FailureStatus is shown when data could not be retrieved or was unusable
func FailureStatus() Status {
	return Status{Kind: StatusFailed, Message: failureMessage}
}
