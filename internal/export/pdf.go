package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Letter page size in inches.
const (
	letterWidthInches  = 8.5
	letterHeightInches = 11.0
)

// pdfMIMEType is the content type of a finished PDF artifact.
const pdfMIMEType = "application/pdf"

// PDFRenderer rasterizes rendered resume markup to PDF bytes using a
// headless Chrome instance. It blocks for the duration of the print.
type PDFRenderer struct {
	// ChromePath overrides Chrome discovery when set (CHROME_PATH).
	ChromePath string
	// Timeout bounds a single rasterization. Zero means the default.
	Timeout time.Duration
}

// NewPDFRenderer creates a renderer honoring the CHROME_PATH override.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{ChromePath: os.Getenv("CHROME_PATH")}
}

// Render prints the given HTML to PDF, portrait letter with backgrounds.
// The same markup always produces equivalent bytes, so repeated exports of
// an unchanged document yield interchangeable artifacts.
func (r *PDFRenderer) Render(ctx context.Context, markup string) ([]byte, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	chromeCtx, cancelChrome := chromedp.NewContext(allocCtx)
	defer cancelChrome()

	runCtx, cancelRun := context.WithTimeout(chromeCtx, timeout)
	defer cancelRun()

	// Chrome loads pages, not strings; stage the markup as a file URL.
	tmpDir, err := os.MkdirTemp("", "craftmycv-")
	if err != nil {
		return nil, &ExportError{Format: "pdf", Message: "failed to stage markup", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(markup), 0o644); err != nil {
		return nil, &ExportError{Format: "pdf", Message: "failed to stage markup", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(false).
				WithPaperWidth(letterWidthInches).
				WithPaperHeight(letterHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &ExportError{Format: "pdf", Message: "rasterization failed", Cause: err}
	}
	return pdf, nil
}
