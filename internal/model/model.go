package model

// ListQuery holds the filter/sort selections a page sends with its list
// request. Empty or "all" categorical values mean no constraint.
type ListQuery struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	Priority   string `form:"priority"`
	Department string `form:"department"`
	Category   string `form:"category"`
	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder"` // asc | desc
}

type BulkAction string

const (
	BulkSetStatus BulkAction = "status"
	BulkReassign  BulkAction = "reassign"
	BulkDelete    BulkAction = "delete"
)

type BulkRequest struct {
	Action     BulkAction `json:"action" binding:"required,oneof=status reassign delete"`
	IDs        []string   `json:"ids" binding:"required,min=1"`
	Status     string     `json:"status,omitempty"`
	AssignedTo string     `json:"assignedTo,omitempty"`
}

// BulkResult reports the outcome of a bulk fan-out per record, so a partial
// failure is never mistaken for full success.
type BulkResult struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"`
}

func (r BulkResult) AllOK() bool { return len(r.Failed) == 0 }

type InternStats struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"byStatus"`
	AverageProgress float64        `json:"averageProgress"`
	AverageRating   float64        `json:"averageRating"`
}

type TaskStats struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"byStatus"`
	Overdue         int            `json:"overdue"`
	AverageProgress float64        `json:"averageProgress"`
}

type CertificateStats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"byStatus"`
	AverageScore float64        `json:"averageScore"`
}

// ChartPoint is one slice/bar of a dashboard chart.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// WeekdayPoint is one bar group of the weekly task completion chart.
type WeekdayPoint struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}

type Activity struct {
	EntityType string `json:"entityType"` // intern | task | certificate
	EntityID   string `json:"entityId,omitempty"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Severity   string `json:"severity"` // success | info | warning | error
	Timestamp  string `json:"timestamp"`
}

type Dashboard struct {
	Interns           InternStats      `json:"interns"`
	Tasks             TaskStats        `json:"tasks"`
	Certificates      CertificateStats `json:"certificates"`
	Departments       []ChartPoint     `json:"departments"`
	CertificateStatus []ChartPoint     `json:"certificateStatus"`
	WeeklyCompletion  []WeekdayPoint   `json:"weeklyCompletion"`
	RecentActivity    []Activity       `json:"recentActivity"`
	GeneratedAt       string           `json:"generatedAt"`
}

type NavigationCounts struct {
	Interns      int `json:"interns"`
	Tasks        int `json:"tasks"`
	Certificates int `json:"certificates"`
}
