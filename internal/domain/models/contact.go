package models

// ContactMessage 官网联系表单消息，只在转发期间存在，不落盘
type ContactMessage struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
