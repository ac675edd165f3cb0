package portfolio

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/captcha"
	"portfolio-backend/internal/extract"
	"portfolio-backend/internal/history"
	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/ratelimit"
	"portfolio-backend/internal/shared/storage/object"
	"portfolio-backend/internal/shared/telemetry"
	"portfolio-backend/internal/shared/util"
)

const minResumeChars = 100

const maxResumePages = 10

// Service orchestrates the generation pipeline. All stages run strictly
// sequentially per request; there is no retry anywhere.
type Service struct {
	Provider llm.Provider
	Store    object.Store
	History  *history.Store
	Limiter  *ratelimit.Limiter
	Captcha  captcha.Verifier

	// Extract turns PDF bytes into text + page count; injectable for tests.
	Extract func(data []byte) (extract.Document, error)

	// Version is recorded in artifact metadata.
	Version string
	// MaxCharsOverride replaces every template's text ceiling when > 0.
	MaxCharsOverride int
	// Rand drives the creative-variation pick; nil uses a time-seeded source.
	Rand *rand.Rand
}

// Generate runs the full pipeline for one request and returns the artifact.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) (*Artifact, error) {
	// Admission.
	allowed, err := s.Limiter.Allow(ctx, req.ClientID)
	if err != nil {
		return nil, providerError(err)
	}
	if !allowed {
		return nil, ErrTooManyRequests
	}
	if err := s.Captcha.Verify(ctx, req.CaptchaToken, req.ClientIP); err != nil {
		return nil, ErrCaptchaFailed
	}
	if len(req.PDF) == 0 {
		return nil, ErrMissingFile
	}
	tpl, ok := TemplateByID(req.Template)
	if !ok {
		return nil, ErrUnknownTemplate
	}

	// Extraction.
	doc, err := s.Extract(req.PDF)
	if err != nil || strings.TrimSpace(doc.Text) == "" {
		return nil, &PipelineError{Code: ErrExtractionFailed.Code, Status: ErrExtractionFailed.Status,
			Message: ErrExtractionFailed.Message, Err: err}
	}

	// Heuristic pre-validation; no model call has happened yet.
	trimmed := strings.TrimSpace(doc.Text)
	if len(trimmed) < minResumeChars {
		return nil, ErrTooShort
	}
	if doc.PageCount > maxResumePages {
		return nil, ErrTooManyPages
	}
	maxChars := tpl.MaxChars
	if s.MaxCharsOverride > 0 {
		maxChars = s.MaxCharsOverride
	}
	if len(trimmed) > maxChars {
		return nil, ErrTooLong
	}

	// Classification.
	verdict, err := s.Provider.GenerateText(ctx, classificationPrompt(doc.Text))
	if err != nil {
		return nil, providerError(err)
	}
	if !strings.Contains(verdict, validResumeToken) {
		return nil, ErrNotAResume
	}

	// Structuring. Malformed output is a hard failure, never retried.
	structured, err := s.Provider.GenerateText(ctx, structuringPrompt(doc.Text))
	if err != nil {
		return nil, providerError(err)
	}
	structuredJSON := stripFence(structured, "json")
	if !json.Valid([]byte(structuredJSON)) {
		return nil, ErrMalformedModelOutput
	}

	id := uuid.NewString()
	basePath := "portfolios/" + id
	createdAt := time.Now().UTC()

	// Optional image staging; uploaded before rendering so the prompt can
	// embed the final public URL.
	hasImage := len(req.Image) > 0
	var assets []string
	var imageKey, imageURL string
	if hasImage {
		ext := util.ImageExtension(req.ImageFileName)
		imageKey = basePath + "/assets/profile." + ext
		if err := s.Store.UploadFile(ctx, imageKey, imageContentType(ext), strings.NewReader(string(req.Image))); err != nil {
			return nil, providerError(err)
		}
		imageURL = s.Store.PublicURL(imageKey)
		assets = append(assets, "profile."+ext)
	}

	// Rendering.
	variation, seed := s.pickVariation()
	rendered, err := s.Provider.GenerateText(ctx, renderPrompt(structuredJSON, tpl, variation, seed, imageURL))
	if err != nil {
		return nil, providerError(err)
	}
	html := stripFence(rendered, "html")

	// Persistence.
	htmlKey := basePath + "/index.html"
	if err := s.Store.UploadFile(ctx, htmlKey, "text/html; charset=utf-8", strings.NewReader(html)); err != nil {
		return nil, providerError(err)
	}

	metaKey := basePath + "/metadata.json"
	meta := Metadata{
		ID:              id,
		CreatedAt:       createdAt,
		Template:        tpl.ID,
		Version:         s.Version,
		ClientID:        req.ClientID,
		Assets:          assets,
		HasImage:        hasImage,
		FileName:        req.FileName,
		StorageProvider: s.Store.Name(),
	}
	if meta.Assets == nil {
		meta.Assets = []string{}
	}
	if err := s.Store.UploadJSON(ctx, metaKey, meta); err != nil {
		return nil, providerError(err)
	}

	artifact := &Artifact{
		ID:          id,
		HTMLURL:     s.Store.PublicURL(htmlKey),
		MetadataURL: s.Store.PublicURL(metaKey),
		Template:    tpl.ID,
		CreatedAt:   createdAt,
		ClientID:    req.ClientID,
		FileName:    req.FileName,
	}
	if hasImage {
		artifact.ImageURL = imageURL
	}

	// History bookkeeping. A crash before this point leaves an orphaned
	// artifact with no history entry; acceptable, no compensating action.
	rec := history.Record{
		ID:        id,
		URL:       artifact.HTMLURL,
		Template:  tpl.ID,
		CreatedAt: createdAt,
		FileName:  req.FileName,
		HasImage:  hasImage,
	}
	if err := s.History.Append(ctx, req.ClientID, rec); err != nil {
		return nil, providerError(err)
	}

	telemetry.Info("portfolio.generated", map[string]any{
		"portfolio_id": id,
		"template":     tpl.ID,
		"provider":     s.Provider.Name(),
		"storage":      s.Store.Name(),
		"has_image":    hasImage,
		"pages":        doc.PageCount,
		"chars":        len(trimmed),
	})

	return artifact, nil
}

// HistoryFor returns the client's generation history, newest first.
func (s *Service) HistoryFor(ctx context.Context, clientID string) ([]history.Record, error) {
	return s.History.List(ctx, clientID)
}

func (s *Service) pickVariation() (string, int64) {
	r := s.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return creativeVariations[r.Intn(len(creativeVariations))], r.Int63()
}

func imageContentType(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
