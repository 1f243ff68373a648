package attendance

import "context"

// AttendanceService owns attendance input ahead of settlement runs.
type AttendanceService interface {
	// Upsert records a period, splitting it per calendar month when it
	// crosses a boundary. Returns one response per affected month.
	Upsert(ctx context.Context, req UpsertAttendanceRequest) ([]AttendanceResponse, error)
	ListByMonth(ctx context.Context, month string) ([]AttendanceResponse, error)
}
