package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// docxMIMEType is the Office Open XML word-processing content type.
const docxMIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DefaultMarginTwips is the uniform page margin sent to the conversion
// service: 720 twips, i.e. half an inch.
const DefaultMarginTwips = 720

// Margins are page margins in twips.
type Margins struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// ConvertOptions fix the page setup of a DOCX conversion. Orientation is
// always portrait; styling fidelity beyond that is best-effort.
type ConvertOptions struct {
	Orientation string  `json:"orientation"`
	Margins     Margins `json:"margins"`
}

// DefaultConvertOptions returns portrait orientation with half-inch margins
// on all four sides.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		Orientation: "portrait",
		Margins: Margins{
			Top:    DefaultMarginTwips,
			Bottom: DefaultMarginTwips,
			Left:   DefaultMarginTwips,
			Right:  DefaultMarginTwips,
		},
	}
}

// DocxClient converts rendered HTML to DOCX through a remote conversion
// service that returns the document as a base64 byte stream.
type DocxClient struct {
	baseURL string
	http    *http.Client
}

// NewDocxClient creates a client for the conversion service at baseURL.
func NewDocxClient(baseURL string) *DocxClient {
	return &DocxClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

type convertRequest struct {
	HTML    string         `json:"html"`
	Options ConvertOptions `json:"options"`
}

type convertResponse struct {
	Data string `json:"data"`
}

// Convert sends the markup to the conversion service and decodes the
// base64 response into DOCX bytes.
func (c *DocxClient) Convert(ctx context.Context, markup string, opts ConvertOptions) ([]byte, error) {
	body, err := json.Marshal(convertRequest{HTML: markup, Options: opts})
	if err != nil {
		return nil, &ExportError{Format: "docx", Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/convert", bytes.NewReader(body))
	if err != nil {
		return nil, &ExportError{Format: "docx", Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ExportError{Format: "docx", Message: "conversion service unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &ExportError{
			Format:  "docx",
			Message: fmt.Sprintf("conversion service returned %d: %s", resp.StatusCode, string(payload)),
		}
	}

	var out convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &ExportError{Format: "docx", Message: "invalid conversion response", Cause: err}
	}

	docx, err := base64.StdEncoding.DecodeString(out.Data)
	if err != nil {
		return nil, &ExportError{Format: "docx", Message: "invalid base64 payload", Cause: err}
	}
	if len(docx) == 0 {
		return nil, &ExportError{Format: "docx", Message: "conversion produced no data"}
	}
	return docx, nil
}
