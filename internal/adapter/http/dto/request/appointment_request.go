package request

import "time"

type ScheduleAppointmentRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Notes     string    `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

type UpdateAppointmentNotesRequest struct {
	Notes string `json:"notes"`
}
