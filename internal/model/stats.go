package model

// DashboardStats are the four counters on the super-admin landing page.
type DashboardStats struct {
	TotalClinics        int64 `json:"total_clinics"`
	TotalEmployees      int64 `json:"total_employees"`
	TodayAttendance     int64 `json:"today_attendance"`
	PendingAppointments int64 `json:"pending_appointments"`
}
