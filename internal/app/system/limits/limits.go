// internal/app/system/limits/limits.go
package limits

// Request size limits for the submission endpoints. Config values override
// these; they are what applies when a value is left at zero.
const (
	// MaxSubmissionBody is the maximum JSON body for any form submission.
	// Applications carry base64 attachments, so it is sized for those.
	MaxSubmissionBody = 20 << 20 // 20 MB

	// MaxAttachments is the number of files one application may carry.
	MaxAttachments = 3

	// MaxAttachmentSize is the decoded size limit for a single attachment.
	MaxAttachmentSize = 5 << 20 // 5 MB
)
