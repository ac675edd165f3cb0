package portfolio

import "time"

// GenerationRequest carries one upload through the pipeline. It is built per
// request and discarded when the pipeline completes.
type GenerationRequest struct {
	PDF           []byte
	FileName      string
	Template      string
	Image         []byte
	ImageFileName string
	CaptchaToken  string
	ClientID      string
	ClientIP      string
}

// Artifact describes one successful generation. Immutable once created.
type Artifact struct {
	ID          string    `json:"id"`
	HTMLURL     string    `json:"htmlUrl"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	MetadataURL string    `json:"metadataUrl"`
	Template    string    `json:"template"`
	CreatedAt   time.Time `json:"createdAt"`
	ClientID    string    `json:"clientId"`
	FileName    string    `json:"fileName"`
}

// Metadata is the JSON document persisted next to the generated page.
type Metadata struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	Template        string    `json:"template"`
	Version         string    `json:"version"`
	ClientID        string    `json:"clientId"`
	Assets          []string  `json:"assets"`
	HasImage        bool      `json:"hasImage"`
	FileName        string    `json:"fileName"`
	StorageProvider string    `json:"storageProvider"`
}

// structuredResumeKeys are the fixed top-level keys the structuring stage
// asks the model to produce. Output validity is only "is valid JSON"; the
// shape is never schema-enforced beyond that.
var structuredResumeKeys = []string{
	"personalInfo",
	"summary",
	"workExperience",
	"education",
	"skills",
	"projects",
}
