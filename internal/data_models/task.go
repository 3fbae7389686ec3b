package dto

// TaskRequestData is the body of create and update requests.
// Fields are pointers so an absent field reaches the store as NULL.
type TaskRequestData struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

type CreateTaskRequest = TaskRequestData

type UpdateTaskRequest = TaskRequestData

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateTaskResponse struct {
	Message string `json:"message"`
	TaskID  uint   `json:"taskId"`
}
