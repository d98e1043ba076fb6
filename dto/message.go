package dto

type SubmitMessageRequest struct {
	SenderName  string `json:"senderName" validate:"notblank,max=120"`
	SenderEmail string `json:"senderEmail" validate:"notblank,contact_email"`
	ServiceType string `json:"serviceType" validate:"notblank,max=60"`
	Budget      string `json:"budget" validate:"max=60"`
	Body        string `json:"body" validate:"notblank"`
	Locale      string `json:"locale" validate:"omitempty,oneof=ar en"`
}

func (r SubmitMessageRequest) Validate() error {
	return validate.Struct(r)
}

type SubmitMessageResponse struct {
	ID          string `json:"id"`
	EmailStatus string `json:"emailStatus"`
}

type MessageResponse struct {
	ID          string `json:"id"`
	SenderName  string `json:"senderName"`
	SenderEmail string `json:"senderEmail"`
	ServiceType string `json:"serviceType"`
	Budget      string `json:"budget"`
	Body        string `json:"body"`
	IsRead      bool   `json:"isRead"`
	EmailStatus string `json:"emailStatus"`
	Locale      string `json:"locale"`
	CreatedAt   string `json:"createdAt"`
}
