package portfolio

import (
	"fmt"
	"net/http"
)

// PipelineError carries the user-facing status and message for a rejected or
// failed generation. None of these are retried anywhere in the pipeline.
type PipelineError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error { return e.Err }

var (
	ErrTooManyRequests = &PipelineError{Code: "TOO_MANY_REQUESTS", Status: http.StatusTooManyRequests,
		Message: "rate limit exceeded, please try again in a minute"}
	ErrCaptchaFailed = &PipelineError{Code: "CAPTCHA_FAILED", Status: http.StatusBadRequest,
		Message: "captcha verification failed"}
	ErrMissingFile = &PipelineError{Code: "MISSING_FILE", Status: http.StatusBadRequest,
		Message: "a PDF file is required"}
	ErrExtractionFailed = &PipelineError{Code: "EXTRACTION_FAILED", Status: http.StatusInternalServerError,
		Message: "could not extract text from the PDF"}
	ErrTooShort = &PipelineError{Code: "TOO_SHORT", Status: http.StatusBadRequest,
		Message: "the document contains too little text to be a resume"}
	ErrTooManyPages = &PipelineError{Code: "TOO_MANY_PAGES", Status: http.StatusBadRequest,
		Message: "the document has too many pages"}
	ErrTooLong = &PipelineError{Code: "TOO_LONG", Status: http.StatusBadRequest,
		Message: "the document contains too much text for this template"}
	ErrNotAResume = &PipelineError{Code: "NOT_A_RESUME", Status: http.StatusBadRequest,
		Message: "the document does not look like a resume"}
	ErrUnknownTemplate = &PipelineError{Code: "UNKNOWN_TEMPLATE", Status: http.StatusBadRequest,
		Message: "unknown template"}
	ErrMalformedModelOutput = &PipelineError{Code: "MALFORMED_MODEL_OUTPUT", Status: http.StatusInternalServerError,
		Message: "the model returned malformed output"}
)

// providerError wraps a model or storage backend failure. The underlying
// error is logged; the client sees a generic message.
func providerError(err error) *PipelineError {
	return &PipelineError{
		Code:    "PROVIDER_ERROR",
		Status:  http.StatusInternalServerError,
		Message: "generation backend failed",
		Err:     err,
	}
}
