package clickup

// CreateTaskRequest is the body of POST /list/{list_id}/task
type CreateTaskRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Status      string   `json:"status,omitempty"`
}

type TaskStatus struct {
	Status string `json:"status"`
	Color  string `json:"color,omitempty"`
	Type   string `json:"type,omitempty"`
}

type TaskTag struct {
	Name string `json:"name"`
}

type TaskList struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Task is the subset of the ClickUp task object this site reads
type Task struct {
	ID          string     `json:"id"`
	CustomID    string     `json:"custom_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Tags        []TaskTag  `json:"tags,omitempty"`
	URL         string     `json:"url"`
	DateCreated string     `json:"date_created,omitempty"`
	List        TaskList   `json:"list"`
}

type errorResponse struct {
	Err  string `json:"err"`
	Code string `json:"ECODE"`
}
