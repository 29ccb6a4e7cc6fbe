package dto

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RegisterStep1Request struct {
	Email     string `json:"email" form:"email"`
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
}

type RegisterStep2Request struct {
	Password  string `json:"password" form:"password"`
	Password2 string `json:"password2" form:"password2"`
}

type CreateMessageRequest struct {
	Text string `json:"text" form:"text"`
}

type EditMessageRequest struct {
	Text string `json:"text"`
}

// DeleteManyRequest carries candidate ids; entries may arrive as
// numbers or strings and are coerced server-side.
type DeleteManyRequest struct {
	IDs []interface{} `json:"ids"`
}

type CreateMessageResponse struct {
	OK bool `json:"ok"`
	ID uint `json:"id"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type DeleteManyResponse struct {
	OK      bool  `json:"ok"`
	Deleted int64 `json:"deleted"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
