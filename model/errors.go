package model

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewAPIError(errReason error) APIError {
	switch errReason.Error() {
	case "RATE_LIMIT_REACHED":
		return APIError{
			Code:    "RATE_LIMIT_REACHED",
			Message: "github rate limit reached. consider using a token to increase the limit or wait few minutes and try again",
		}

	case "README_NOT_FOUND":
		return APIError{
			Code:    "README_NOT_FOUND",
			Message: "the repository has no readme or it could not be loaded",
		}

	case "FETCH_ERROR":
		return APIError{
			Code:    "FETCH_ERROR",
			Message: "unable to load the data from github, try again later",
		}

	case "INVALID_FORMAT":
		return APIError{
			Code:    "INVALID_FORMAT",
			Message: "unsupported export format, use json or yaml",
		}

	case "INVALID_QUERY":
		return APIError{
			Code:    "INVALID_QUERY",
			Message: "invalid query parameters",
		}

	default:
		return APIError{
			Code:    errReason.Error(),
			Message: "internal server error. contact our support with the reason code for assistance",
		}
	}
}
