package export

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper and the 1cm page margin, in inches as the DevTools protocol expects.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	marginInches   = 0.3937
)

// DefaultTimeout bounds a single conversion, browser start-up included.
const DefaultTimeout = 30 * time.Second

// PDFOptions configures the headless browser.
type PDFOptions struct {
	Timeout time.Duration
	// ExecPath overrides the Chrome/Chromium binary lookup.
	ExecPath string
	Verbose  bool
}

// PDFConverter prints HTML documents to PDF with headless Chrome. Chrome or
// Chromium must be installed on the system.
type PDFConverter struct {
	opts PDFOptions
}

// NewPDFConverter creates a converter; a zero Timeout uses DefaultTimeout.
func NewPDFConverter(opts PDFOptions) *PDFConverter {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &PDFConverter{opts: opts}
}

func (c *PDFConverter) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.opts.ExecPath))
	}
	return opts
}

// PrintToPDF loads document into a blank page and prints it on A4 with 1cm
// margins, backgrounds included.
func (c *PDFConverter) PrintToPDF(ctx context.Context, document string) ([]byte, error) {
	if c.opts.Verbose {
		log.Printf("[export] starting headless browser (%d bytes of HTML)", len(document))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, c.allocatorOptions()...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, c.opts.Timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, document).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &Error{Message: "browser printing failed", Cause: err}
	}

	if c.opts.Verbose {
		log.Printf("[export] generated PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}
