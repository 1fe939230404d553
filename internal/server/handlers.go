package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/passport-scorer/scorer-ui/internal/buildinfo"
	"github.com/passport-scorer/scorer-ui/pkg/footer"
	"github.com/passport-scorer/scorer-ui/pkg/layout"
	"github.com/passport-scorer/scorer-ui/pkg/vdom"
)

const htmlContentType = "text/html; charset=utf-8"

// liveScript swaps the footer in place whenever the page's color scheme
// preference changes.
const liveScript = `(function(){var f=document.getElementById("footer");if(!f||!window.WebSocket)return;` +
	`var p=location.protocol==="https:"?"wss://":"ws://";var ws=new WebSocket(p+location.host+"/footer/live"+location.search);` +
	`ws.onmessage=function(e){var m=JSON.parse(e.data);if(m.html)f.innerHTML=m.html;};` +
	`var q=window.matchMedia&&window.matchMedia("(prefers-color-scheme: dark)");` +
	`if(q)q.addEventListener("change",function(ev){ws.send(JSON.stringify({mode:ev.matches?"dark":"light"}));});})();`

// props builds footer props from the request query. A missing mode falls
// back to the configured default; an explicit empty mode stays unset.
func (s *Server) props(r *http.Request) footer.Props {
	q := r.URL.Query()
	mode := footer.DisplayMode(s.config.Footer.DefaultMode)
	if q.Has("mode") {
		mode = footer.DisplayMode(q.Get("mode"))
	}
	return footer.Props{
		Mode:       mode,
		ClassName:  q.Get("class"),
		CommitHash: buildinfo.CommitOr(s.config.Footer.CommitHash),
	}
}

// renderFooter builds the footer tree inside a span and records metrics.
func (s *Server) renderFooter(ctx context.Context, f *footer.Footer, p footer.Props) (*vdom.VNode, bool) {
	_, span := otel.Tracer(tracerName).Start(ctx, "footer.render",
		trace.WithAttributes(
			attribute.String("footer.mode", p.Mode.String()),
			attribute.String("footer.variant", string(p.Mode.Variant())),
		),
	)
	defer span.End()

	node, reused := f.Build(p)
	span.SetAttributes(attribute.Bool("footer.bundle_reused", reused))
	s.metrics.observeRender(p.Mode, reused)
	return node, reused
}

func (s *Server) handleFooter(w http.ResponseWriter, r *http.Request) {
	p := s.props(r)
	node, _ := s.renderFooter(r.Context(), s.footer, p)

	var buf bytes.Buffer
	if err := s.renderer.RenderToWriter(&buf, node); err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.Header().Set("Vary", "Accept-Encoding")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p := s.props(r)
	node, _ := s.renderFooter(r.Context(), s.footer, p)
	footerNode := vdom.Footer(vdom.ID("footer"), node)

	page := layout.Page(layout.PageOptions{
		Title: "Passport Scorer",
		Dark:  p.Mode.IsDark(),
		Main: vdom.Div(
			vdom.H1(vdom.Class("text-2xl", "font-semibold"), vdom.Text("Passport Scorer")),
			vdom.P(vdom.Text("Build Sybil-resistant scoring into your application with the Scorer API.")),
		),
		Footer: footerNode,
	})
	page.Scripts = []string{liveScript}

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, page); err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(buildinfo.Get())
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("render failed", "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
