package portfolio

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
	"portfolio-backend/internal/shared/telemetry"
)

const maxUploadSize = 15 << 20 // PDF plus optional image

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc         *Service
	proxyClient *http.Client
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{
		Svc: svc,
		proxyClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// RegisterRoutes attaches portfolio routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/generate", h.generate)
	r.GET("/history", h.history)
	r.GET("/proxy", h.proxy)
}

func (h *Handler) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	req := GenerationRequest{
		Template:     c.PostForm("template"),
		CaptchaToken: c.PostForm("recaptchaToken"),
		ClientID:     middleware.ClientIDFromContext(c),
		ClientIP:     c.ClientIP(),
	}

	// A missing file is rejected by the pipeline after the rate-limit and
	// captcha gates, so the form is read best-effort here.
	if fileHeader, err := c.FormFile("file"); err == nil {
		data, err := readUpload(fileHeader)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "unable to read file")
			return
		}
		req.PDF = data
		req.FileName = fileHeader.Filename
	}
	if imageHeader, err := c.FormFile("image"); err == nil {
		data, err := readUpload(imageHeader)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "unable to read image")
			return
		}
		req.Image = data
		req.ImageFileName = imageHeader.Filename
	}

	artifact, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Set("portfolioId", artifact.ID)
	c.Set("template", artifact.Template)
	respond.OK(c, gin.H{"url": artifact.HTMLURL})
}

func (h *Handler) history(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)
	records, err := h.Svc.HistoryFor(c.Request.Context(), clientID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"history": records})
}

// proxy re-serves a generated page as text/html so it can be embedded in an
// iframe without CORS friction. Not part of the core pipeline.
func (h *Handler) proxy(c *gin.Context) {
	raw := c.Query("url")
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		respond.Error(c, http.StatusBadRequest, "url must be an absolute http(s) URL")
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, parsed.String(), nil)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid url")
		return
	}
	resp, err := h.proxyClient.Do(req)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "failed to fetch url")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "failed to read url")
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func writeError(c *gin.Context, err error) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		if pe.Err != nil {
			telemetry.Error("pipeline.failed", map[string]any{
				"code":       pe.Code,
				"err":        pe.Err.Error(),
				"request_id": c.GetString("requestId"),
			})
		}
		respond.Error(c, pe.Status, pe.Message)
		return
	}
	telemetry.Error("pipeline.failed", map[string]any{
		"err":        err.Error(),
		"request_id": c.GetString("requestId"),
	})
	respond.Error(c, http.StatusInternalServerError, "internal error")
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
