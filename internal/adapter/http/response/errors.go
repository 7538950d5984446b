package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func writeError(c echo.Context, status int, detail *ErrorDetail) error {
	return c.JSON(status, detail)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, &ErrorDetail{Code: CodeInvalidRequest, Message: MsgInvalidRequestBody})
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return writeError(c, http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, &ErrorDetail{Code: CodeValidationError, Message: message})
}

// PassengerValidationError writes a 422 response listing every missing passenger field.
func PassengerValidationError(c echo.Context, messages []string) error {
	return writeError(c, http.StatusUnprocessableEntity, &ErrorDetail{
		Code:     CodePassengerValidation,
		Message:  MsgPassengerValidation,
		Messages: messages,
	})
}

// SessionNotFound writes a 404 response for unknown or expired sessions.
func SessionNotFound(c echo.Context) error {
	return writeError(c, http.StatusNotFound, &ErrorDetail{Code: CodeSessionNotFound, Message: MsgSessionNotFound})
}

// NotFound writes a 404 response with the given message.
func NotFound(c echo.Context, message string) error {
	return writeError(c, http.StatusNotFound, &ErrorDetail{Code: CodeNotFound, Message: message})
}

// SearchFailed writes a 502 Bad Gateway response for failed flight searches.
func SearchFailed(c echo.Context, message string) error {
	if message == "" {
		message = MsgSearchFailed
	}
	return writeError(c, http.StatusBadGateway, &ErrorDetail{Code: CodeSearchFailed, Message: message})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, &ErrorDetail{Code: CodeTimeout, Message: MsgTimeout})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, &ErrorDetail{Code: CodeTimeout, Message: MsgRequestCancelled})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, &ErrorDetail{Code: CodeInternalError, Message: MsgInternalError})
}
