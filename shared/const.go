package shared

const (
	UserID = "user_id"

	LocaleArabic  = "ar"
	LocaleEnglish = "en"

	EmailStatusPending = "pending"
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"

	ServiceTypeMVP = "MVP"
	ServiceTypeSaaS = "SaaS"
	ServiceTypeAI   = "AI Integration"

	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeFreeText       = "free_text"
)
