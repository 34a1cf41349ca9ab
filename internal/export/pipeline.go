package export

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pipeline bundles the two export paths behind one surface. Both paths are
// idempotent and side-effect-free on the source document.
type Pipeline struct {
	pdf  *PDFRenderer
	docx *DocxClient
}

// NewPipeline wires the PDF renderer and DOCX client together.
func NewPipeline(pdf *PDFRenderer, docx *DocxClient) *Pipeline {
	return &Pipeline{pdf: pdf, docx: docx}
}

// PDF exports the markup to a PDF artifact named after the document owner.
func (p *Pipeline) PDF(ctx context.Context, markup, fullName string) (*Artifact, error) {
	data, err := p.pdf.Render(ctx, markup)
	if err != nil {
		return nil, err
	}
	return &Artifact{Filename: Filename(fullName, "pdf"), MIMEType: pdfMIMEType, Data: data}, nil
}

// DOCX exports the markup through the conversion service with the default
// portrait/720-twip page setup.
func (p *Pipeline) DOCX(ctx context.Context, markup, fullName string) (*Artifact, error) {
	data, err := p.docx.Convert(ctx, markup, DefaultConvertOptions())
	if err != nil {
		return nil, err
	}
	return &Artifact{Filename: Filename(fullName, "docx"), MIMEType: docxMIMEType, Data: data}, nil
}

// Bundle produces both artifacts concurrently. Either failure fails the
// bundle; no partial file is offered.
func (p *Pipeline) Bundle(ctx context.Context, markup, fullName string) (pdf, docx *Artifact, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pdf, err = p.PDF(ctx, markup, fullName)
		return err
	})
	g.Go(func() error {
		var err error
		docx, err = p.DOCX(ctx, markup, fullName)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pdf, docx, nil
}
