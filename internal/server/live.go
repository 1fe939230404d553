package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/passport-scorer/scorer-ui/pkg/footer"
)

const (
	liveReadTimeout  = 2 * time.Minute
	liveWriteTimeout = 10 * time.Second
)

// LiveRequest is sent by the client to change the footer. Absent fields keep
// their previous value.
type LiveRequest struct {
	Mode      *string `json:"mode,omitempty"`
	ClassName *string `json:"className,omitempty"`
}

// LiveUpdate is pushed to the client after every render.
type LiveUpdate struct {
	HTML    string `json:"html,omitempty"`
	Variant string `json:"variant,omitempty"`
	Reused  bool   `json:"reused"`
	Error   string `json:"error,omitempty"`
}

// handleLive upgrades to a websocket, sends the footer for the query props,
// then re-renders on each LiveRequest. Each connection owns its own footer
// so its memo tracks that client's last mode.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.metrics.sessionOpened()
	defer s.metrics.sessionClosed()

	f := footer.New(s.resolver)
	props := s.props(r)

	if err := s.pushFooter(r, conn, f, props); err != nil {
		return
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(liveReadTimeout))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("live read error", "error", err)
			}
			return
		}
		s.metrics.message("in")

		var req LiveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			if err := s.writeLive(conn, LiveUpdate{Error: "invalid request"}); err != nil {
				return
			}
			continue
		}
		if req.Mode != nil {
			props.Mode = footer.DisplayMode(*req.Mode)
		}
		if req.ClassName != nil {
			props.ClassName = *req.ClassName
		}

		if err := s.pushFooter(r, conn, f, props); err != nil {
			return
		}
	}
}

func (s *Server) pushFooter(r *http.Request, conn *websocket.Conn, f *footer.Footer, p footer.Props) error {
	node, reused := s.renderFooter(r.Context(), f, p)
	html, err := s.renderer.RenderToString(node)
	if err != nil {
		s.logger.Error("live render failed", "error", err)
		return s.writeLive(conn, LiveUpdate{Error: "render failed"})
	}

	return s.writeLive(conn, LiveUpdate{
		HTML:    html,
		Variant: string(p.Mode.Variant()),
		Reused:  reused,
	})
}

func (s *Server) writeLive(conn *websocket.Conn, u LiveUpdate) error {
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
	if err := conn.WriteJSON(u); err != nil {
		s.logger.Warn("live write failed", "error", err)
		return err
	}
	s.metrics.message("out")
	return nil
}
