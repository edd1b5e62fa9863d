package types

import "time"

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProjectResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Service       string    `json:"service"`
	Status        string    `json:"status"`
	RequesterName string    `json:"requester_name"`
	UserID        uint      `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Done        bool       `json:"done"`
	Priority    int        `json:"priority"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`
	ProjectID   uint       `json:"project_id"`
	UserID      uint       `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TasksSummary struct {
	Total   int64 `json:"total"`
	Done    int64 `json:"done"`
	Pending int64 `json:"pending"`
}

type DashboardResponse struct {
	Project ProjectResponse `json:"project"`
	Summary TasksSummary    `json:"tasks_summary"`
	Tasks   []TaskResponse  `json:"tasks"`
}
