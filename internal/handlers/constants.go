package handlers

// Common error message constants shared across handlers
const (
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgInvalidReportID    = "Invalid report ID"
	ErrMsgUnauthorized       = "Unauthorized"
	ErrMsgUserIDNotFound     = "User ID not found"
	ErrMsgReportNotFound     = "Report not found"
)
