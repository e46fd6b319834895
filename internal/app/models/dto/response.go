package dto

import "time"

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-04-23T12:01:05.123Z"`
}

// SuccessResponse represents a plain message response
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}
