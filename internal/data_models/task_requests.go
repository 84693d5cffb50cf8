package dto

type CreateTaskRequest struct {
	TaskID      string `json:"taskId"`
	ProjectName string `json:"projectName"`
	Industry    string `json:"industry"`
	ToolLink    string `json:"toolLink"`
	Batch       string `json:"batch"`
	Status      string `json:"status"`
	UpdatedBy   string `json:"updatedBy"`
}

type UpdateStatusRequest struct {
	Status    string `json:"status"`
	UpdatedBy string `json:"updatedBy"`
}
