package model

import (
	"time"

	"gorm.io/datatypes"
)

// Base carries the store-assigned identity and audit columns shared by every
// collection record. ObjectID is empty until the first save.
type Base struct {
	ObjectID string    `gorm:"primaryKey;size:36" json:"objectId,omitempty"`
	Created  time.Time `gorm:"autoCreateTime" json:"created,omitempty"`
	Updated  time.Time `gorm:"autoUpdateTime" json:"updated,omitempty"`
}

func (b *Base) GetObjectID() string   { return b.ObjectID }
func (b *Base) SetObjectID(id string) { b.ObjectID = id }

// Stamp fills the audit columns for backends that have no server side to do
// it (the in-memory driver).
func (b *Base) Stamp(now time.Time) {
	if b.Created.IsZero() {
		b.Created = now
	}
	b.Updated = now
}

type Intern struct {
	Base
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Position       string  `json:"position"`
	Department     string  `json:"department"`
	StartDate      string  `gorm:"type:date" json:"startDate"`
	EndDate        string  `gorm:"type:date" json:"endDate"`
	Status         string  `gorm:"default:pending" json:"status" binding:"omitempty,oneof=active completed pending paused"`
	Progress       int     `json:"progress" binding:"min=0,max=100"`
	Avatar         string  `json:"avatar,omitempty"`
	Location       string  `json:"location"`
	Supervisor     string  `json:"supervisor"`
	TasksCompleted int     `json:"tasksCompleted"`
	TotalTasks     int     `json:"totalTasks"`
	Rating         float64 `json:"rating"`
}

type Task struct {
	Base
	Title          string                       `json:"title"`
	Description    string                       `json:"description"`
	AssignedTo     string                       `json:"assignedTo"`
	AssignedEmail  string                       `json:"assignedEmail"`
	AssignedPhone  string                       `json:"assignedPhone"`
	AssignedBy     string                       `json:"assignedBy"`
	Department     string                       `json:"department"`
	Category       string                       `json:"category"`
	Priority       string                       `gorm:"default:medium" json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status         string                       `gorm:"default:todo" json:"status" binding:"omitempty,oneof=todo in-progress review completed cancelled"`
	Progress       int                          `json:"progress" binding:"min=0,max=100"`
	StartDate      string                       `gorm:"type:date" json:"startDate"`
	DueDate        string                       `gorm:"type:date" json:"dueDate"`
	CompletedDate  string                       `gorm:"type:date" json:"completedDate,omitempty"`
	EstimatedHours float64                      `json:"estimatedHours"`
	ActualHours    float64                      `json:"actualHours"`
	Tags           datatypes.JSONSlice[string]  `json:"tags"`
	AttachmentURLs datatypes.JSONSlice[string]  `json:"attachmentUrls"`
	Comments       datatypes.JSONSlice[Comment] `json:"comments"`
	Subtasks       datatypes.JSONSlice[Subtask] `json:"subtasks"`
	CreatedAt      string                       `json:"createdAt"`
	UpdatedAt      string                       `json:"updatedAt"`
}

type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Certificate carries a snapshot of the intern's identity taken at issuance
// time. It is not a live reference: later edits to the Intern record do not
// propagate here.
type Certificate struct {
	Base
	InternName       string `json:"internName"`
	InternEmail      string `json:"internEmail"`
	InternPhone      string `json:"internPhone"`
	CourseName       string `json:"courseName"`
	CourseCategory   string `json:"courseCategory"`
	IssueDate        string `gorm:"type:date" json:"issueDate"`
	ExpiryDate       string `gorm:"type:date" json:"expiryDate"`
	Status           string `gorm:"default:pending" json:"status" binding:"omitempty,oneof=issued pending revoked expired"`
	CertificateID    string `gorm:"uniqueIndex;size:32" json:"certificateId"`
	CompletionScore  int    `json:"completionScore"`
	Grade            string `json:"grade"`
	Instructor       string `json:"instructor"`
	Department       string `json:"department"`
	VerificationCode string `json:"verificationCode"`
	Notes            string `json:"notes,omitempty"`
	Priority         string `gorm:"default:medium" json:"priority" binding:"omitempty,oneof=high medium low"`
	DocumentURL      string `json:"documentUrl,omitempty"`
}

type Notification struct {
	Base
	Title      string `json:"title"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Timestamp  string `json:"timestamp"`
	Read       bool   `json:"read"`
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId,omitempty"`
}

type SystemLog struct {
	Base
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	UserID    string `json:"userId,omitempty"`
	IPAddress string `json:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Details   string `json:"details,omitempty"`
}

func (Intern) TableName() string       { return "Interns" }
func (Task) TableName() string         { return "Tasks" }
func (Certificate) TableName() string  { return "Certificates" }
func (Notification) TableName() string { return "Notifications" }
func (SystemLog) TableName() string    { return "SystemLogs" }
