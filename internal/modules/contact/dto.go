package contact

// CreateContactDTO is bound from the public contact form body.
type CreateContactDTO struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

// UpdateContactDTO patches a message's read flag.
type UpdateContactDTO struct {
	IsRead *bool `json:"isRead"`
}

// ReplyDTO records an admin reply to a message.
type ReplyDTO struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

// ListQuery holds admin list filters.
type ListQuery struct {
	IsRead *bool `form:"isRead"`
}
