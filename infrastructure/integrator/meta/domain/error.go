package metadomain

// ErrorResponse representa o envelope de erro da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro retornados pela Graph API
type ErrorDetails struct {
	Message        string `json:"message"`
	Type           string `json:"type"`
	Code           int    `json:"code"`
	ErrorSubcode   int    `json:"error_subcode,omitempty"`
	ErrorUserTitle string `json:"error_user_title,omitempty"`
	ErrorUserMsg   string `json:"error_user_msg,omitempty"`
	FBTraceID      string `json:"fbtrace_id"`
}

// IsEmpty indica que o corpo de erro não pôde ser interpretado
func (e *ErrorDetails) IsEmpty() bool {
	return e.Message == "" && e.Code == 0 && e.FBTraceID == ""
}
