package services

import "errors"

var (
	ErrNoStoresFound               = errors.New("no stores found for this brand and distributor")
	ErrNoAfterImagesFound          = errors.New("no stores have an after-execution image")
	ErrDocumentGenerationFailed    = errors.New("document generation failed")
	ErrSpreadsheetGenerationFailed = errors.New("spreadsheet generation failed")
	ErrSubmissionFailed            = errors.New("approval submission failed")
	ErrSubmissionInProgress        = errors.New("approval submission already in progress")

	// ErrMalformedInput is never returned: unparsable numbers count as zero.
	ErrMalformedInput = errors.New("malformed input")
)

// UserMessage maps a submission error onto the text shown in a toast.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoStoresFound):
		return "No stores found for the selected distributor."
	case errors.Is(err, ErrNoAfterImagesFound):
		return "No stores have after-execution images yet."
	case errors.Is(err, ErrDocumentGenerationFailed):
		return "Could not generate the PDF. Please try again."
	case errors.Is(err, ErrSubmissionInProgress):
		return "A submission for this distributor is already running."
	}
	return "Failed to submit for approval. Please try again."
}
