// Package site turns a layout file into a rendered HTML page using the host
// and decorators selected by the project configuration.
package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/forge/internal/config"
	"github.com/vango-dev/forge/internal/errors"
	"github.com/vango-dev/forge/internal/layout"
	"github.com/vango-dev/forge/pkg/forge"
	"github.com/vango-dev/forge/pkg/htmlhost"
	"github.com/vango-dev/forge/pkg/middleware"
	"github.com/vango-dev/forge/pkg/render"
	"github.com/vango-dev/forge/pkg/vdom"
)

const tracerName = "github.com/vango-dev/forge/internal/site"

// Options configures a Site.
type Options struct {
	Config *config.Config

	// Logger receives debug records for every creation and attachment.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics, when set, records forge activity on the given collectors.
	Metrics *middleware.Metrics

	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Site renders layouts.
type Site struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *middleware.Metrics
	tp      trace.TracerProvider
}

// New creates a Site.
func New(opts Options) *Site {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Site{config: cfg, logger: logger, metrics: opts.Metrics, tp: tp}
}

// NewHost returns the host registered under name.
func NewHost(name string) (forge.TreeHost, error) {
	switch name {
	case config.HostVDOM, "":
		return vdom.NewDocument(), nil
	case config.HostHTML:
		return htmlhost.New(), nil
	}
	return nil, errors.New("E022").WithDetailf("host %q is not registered.", name)
}

// Page holds the output of a render.
type Page struct {
	Layout *layout.Layout
	Built  *layout.Page
	HTML   []byte
}

// Render loads the layout at path, builds it and renders a full document.
// bodyHTML is appended to the end of the document body.
func (s *Site) Render(ctx context.Context, path, bodyHTML string) (*Page, error) {
	ctx, span := s.tp.Tracer(tracerName).Start(ctx, "site.render",
		trace.WithAttributes(
			attribute.String("forge.layout", path),
			attribute.String("forge.host", s.config.Render.Host),
		))
	defer span.End()

	page, err := s.render(ctx, path, bodyHTML)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("forge.bytes", len(page.HTML)))
	return page, nil
}

func (s *Site) render(ctx context.Context, path, bodyHTML string) (*Page, error) {
	l, err := layout.Load(path)
	if err != nil {
		return nil, err
	}

	host, err := NewHost(s.config.Render.Host)
	if err != nil {
		return nil, err
	}
	host = s.decorate(ctx, host)

	built, err := l.Build(host)
	if err != nil {
		return nil, err
	}

	lang := l.Lang
	if lang == "" {
		lang = s.config.Render.Lang
	}

	var buf bytes.Buffer
	if err := s.write(&buf, built.Root, l.Title, lang, bodyHTML); err != nil {
		return nil, err
	}

	s.logger.Debug("rendered layout",
		"layout", path,
		"host", s.config.Render.Host,
		"nodes", len(built.Nodes),
		"bytes", buf.Len(),
	)
	return &Page{Layout: l, Built: built, HTML: buf.Bytes()}, nil
}

func (s *Site) decorate(ctx context.Context, host forge.TreeHost) forge.TreeHost {
	host = middleware.Logging(host, s.logger)
	if s.metrics != nil {
		host = s.metrics.Wrap(host)
	}
	return middleware.Tracing(ctx, host, middleware.WithTracerProvider(s.tp))
}

func (s *Site) write(w io.Writer, root forge.Node, title, lang, bodyHTML string) error {
	switch n := forge.Unwrap(root).(type) {
	case *vdom.VNode:
		r := render.NewRenderer(render.RendererConfig{
			Pretty: s.config.Render.Pretty,
			Indent: s.config.Render.Indent,
		})
		return r.RenderPage(w, render.PageData{
			Body:     n,
			Title:    title,
			Lang:     lang,
			BodyHTML: bodyHTML,
		})
	case *htmlhost.Node:
		return htmlhost.RenderPage(w, htmlhost.PageData{
			Body:     n,
			Title:    title,
			Lang:     lang,
			BodyHTML: bodyHTML,
		})
	default:
		return fmt.Errorf("site: cannot render %T", n)
	}
}
