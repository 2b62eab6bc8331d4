package timesheet

type ReportState string

const (
	ReportStateNone  = ReportState("none")
	ReportStateDraft = ReportState("draft")
	ReportStateSent  = ReportState("sent")
)
