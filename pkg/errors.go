package pkg

// AppError is the HTTP-facing error envelope. Use cases return sentinel
// errors; handlers map them into AppErrors with stable machine codes so
// clients can branch without parsing messages.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`

	cause error
}

// HTTPError is the JSON body written for a failed request. Details carries
// structured payloads such as the list of missing checklist items.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, cause error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, cause: cause}
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Code + ": " + e.Message + ": " + e.cause.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// ToHTTPError converts the AppError into its response body. The cause is
// intentionally not exposed.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// ToHTTPErrorWithDetails attaches a structured payload to the response body.
func (e *AppError) ToHTTPErrorWithDetails(details any) HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: details}
}
