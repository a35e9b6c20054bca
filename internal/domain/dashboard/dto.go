package dashboard

// EmployeeBlock identifies the caller on the overview screen.
type EmployeeBlock struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// LeaveItem is an approved leave shown on the overview, joined with the
// owner's display name.
type LeaveItem struct {
	LeaveID   string `json:"leave_id"`
	Employee  string `json:"employee"`
	Reason    string `json:"reason"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type HolidayItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HolidayDate string `json:"holiday_date"`
	Description string `json:"description"`
}

type ProjectItem struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// OverviewResponse is the combined dashboard payload. Every list is computed
// fresh per call; nothing is cached.
type OverviewResponse struct {
	Employee         EmployeeBlock `json:"employee"`
	TodayLeaves      []LeaveItem   `json:"today_leaves"`
	UpcomingLeaves   []LeaveItem   `json:"upcoming_leaves"`
	UpcomingHolidays []HolidayItem `json:"upcoming_holidays"`
	MyProjects       []ProjectItem `json:"my_projects"`
}
