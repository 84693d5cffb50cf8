package constants

type TaskStatus string

const (
	StatusUnclaimed  TaskStatus = "Unclaimed"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusReviewed   TaskStatus = "Reviewed"
)

// AllStatuses lists every legal task status. Transitions form a free graph:
// any status may follow any other, including Reviewed back to Unclaimed.
var AllStatuses = []TaskStatus{
	StatusUnclaimed,
	StatusInProgress,
	StatusCompleted,
	StatusReviewed,
}

func IsValidStatus(s TaskStatus) bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

type Role string

const (
	RoleHunter Role = "hunter"
	RoleCoach  Role = "coach"
	RoleAdmin  Role = "admin"
)

// IsRegisterableRole reports whether a role may be chosen at registration.
// Admin accounts are seeded out of band, never self-registered.
func IsRegisterableRole(r Role) bool {
	return r == RoleHunter || r == RoleCoach
}

func IsValidRole(r Role) bool {
	return r == RoleHunter || r == RoleCoach || r == RoleAdmin
}

type TimeRange string

const (
	TimeRangeWeekly    TimeRange = "weekly"
	TimeRangeMonthly   TimeRange = "monthly"
	TimeRangeQuarterly TimeRange = "quarterly"
	TimeRangeAllTime   TimeRange = "all-time"
)
