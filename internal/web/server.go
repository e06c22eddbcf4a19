// Package web serves each page over HTTP on a local listener. A click on a
// link is answered with a redirect back to the index, which blocks until
// the next page is shown.
package web

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"fexplorer/internal/errors"
	"fexplorer/internal/explorer"
	"fexplorer/internal/log"
	"fexplorer/internal/render"
)

const shutdownTimeout = 5 * time.Second

// Server implements explorer.Display in a browser.
type Server struct {
	addr string
	log  *log.Logger

	mu    sync.Mutex
	page  explorer.Page
	ready chan struct{} // closed while a page is on show
	ln    net.Listener
	srv   *http.Server

	clicks chan string
	done   chan struct{}
	once   sync.Once
}

// NewServer creates a display listening on addr once started.
func NewServer(addr string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		addr:   addr,
		log:    logger,
		ready:  make(chan struct{}),
		clicks: make(chan string, 1),
		done:   make(chan struct{}),
	}
}

// Start binds the listener and returns the URL to open in a browser.
// Calling it again returns the same URL.
func (s *Server) Start() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.url(), nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", errors.WrapKind(err, errors.DisplayFailed, "listen on "+s.addr)
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Errorf("web display stopped: %v", err)
		}
	}()
	s.log.With(log.F("url", s.url())).Info("web display listening")
	return s.url(), nil
}

func (s *Server) url() string {
	return "http://" + s.ln.Addr().String() + "/"
}

// Show publishes page and waits for a click on one of its links.
func (s *Server) Show(page explorer.Page) (string, error) {
	if _, err := s.Start(); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.page = page
	close(s.ready)
	s.mu.Unlock()

	defer s.withdraw()

	select {
	case choice := <-s.clicks:
		return choice, nil
	case <-s.done:
		return "", nil
	}
}

// withdraw takes the page off show. Only a closed ready channel is
// replaced, so index requests waiting on the open one see the next page.
func (s *Server) withdraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.ready:
		s.ready = make(chan struct{})
	default:
	}
}

// Close stops the server. A pending Show returns as dismissed.
func (s *Server) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
	})
	return err
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handle)
	return mux
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	segment := strings.TrimPrefix(r.URL.EscapedPath(), "/")
	if segment == "" {
		s.serveIndex(w, r)
		return
	}

	page, ok := s.current()
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if name, isControl := strings.CutPrefix(segment, render.ControlPrefix); isControl {
		if segment == render.DismissSegment {
			s.click(w, r, "")
			return
		}
		if asset, found := page.Asset(name); found {
			w.Header().Set("Content-Type", asset.ContentType)
			_, _ = w.Write(asset.Data)
			return
		}
		http.NotFound(w, r)
		return
	}

	choice, found := linkFor(page, segment)
	if !found {
		s.log.With(log.F("path", r.URL.Path)).Debug("request for unknown link")
		http.NotFound(w, r)
		return
	}
	s.click(w, r, choice)
}

// linkFor returns the URL of the page link whose decoded segment matches
// segment. Browsers may escape a name differently than the page did.
func linkFor(page explorer.Page, segment string) (string, bool) {
	want := explorer.DecodeSegment(segment)
	for _, l := range page.Links {
		rest, ok := strings.CutPrefix(l.URL, page.Origin)
		if ok && explorer.DecodeSegment(rest) == want {
			return l.URL, true
		}
	}
	return "", false
}

func (s *Server) click(w http.ResponseWriter, r *http.Request, choice string) {
	s.log.With(log.F("choice", choice)).Debug("link clicked")
	if !s.report(choice) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if choice == "" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Closed. You can close this tab.\n"))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// current returns the page on show, if any.
func (s *Server) current() (explorer.Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.ready:
		return s.page, true
	default:
		return explorer.Page{}, false
	}
}

// report hands a click to the waiting Show. Only the first click on a
// page is taken.
func (s *Server) report(choice string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.ready:
	default:
		return false
	}
	select {
	case s.clicks <- choice:
		s.ready = make(chan struct{})
		return true
	default:
		return false
	}
}

// serveIndex waits until a page is on show and writes its markup.
func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	for {
		s.mu.Lock()
		ready := s.ready
		s.mu.Unlock()

		select {
		case <-ready:
		case <-s.done:
			http.Error(w, "display closed", http.StatusGone)
			return
		case <-r.Context().Done():
			return
		}

		// The page may have been taken by a click in the meantime.
		if page, ok := s.current(); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Cache-Control", "no-store")
			_, _ = w.Write([]byte(page.Markup))
			return
		}
	}
}
