package meeting

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

// CreateActionRequest represents the request to add an action item
type CreateActionRequest struct {
	Text     string  `json:"text" validate:"required,min=1,max=500"`
	Assignee *string `json:"assignee,omitempty" validate:"omitempty,max=100"`
	DueDate  *string `json:"due_date,omitempty"`
	Status   string  `json:"status,omitempty" validate:"omitempty,action_status"`
}

// UpdateActionRequest represents a partial action item update. Omitted fields are unchanged;
// an empty assignee or due_date clears the field.
type UpdateActionRequest struct {
	Text     *string `json:"text,omitempty" validate:"omitempty,min=1,max=500"`
	Assignee *string `json:"assignee,omitempty" validate:"omitempty,max=100"`
	DueDate  *string `json:"due_date,omitempty"`
	Status   *string `json:"status,omitempty" validate:"omitempty,action_status"`
}

// ListActionsRequest represents query filters for listing action items
type ListActionsRequest struct {
	Status   string `query:"status" validate:"omitempty,action_status"`
	Assignee string `query:"assignee"`
}
