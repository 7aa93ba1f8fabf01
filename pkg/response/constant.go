package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode      = 400
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500

	DateTimeFormat = "2006-01-02 15:04:05"
)
