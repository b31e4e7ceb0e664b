// Package serve provides the serve command for mdc, a local preview
// server that renders markdown files with callouts on demand.
package serve

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/open-doc-collective/mdc/internal/config"
	"github.com/open-doc-collective/mdc/pkg/callout"
)

type serveOptions struct {
	addr       string
	configPath string
}

// NewCmdServe creates the serve command.
func NewCmdServe() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve live HTML previews of markdown files",
		Long: `Start a local HTTP server that renders the markdown files in a
directory (default: the current directory) with callout styling.`,
		Example: `  # Preview the current directory on :8080
  mdc serve

  # Preview a docs tree on another port
  mdc serve ./docs --addr :9000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			if opts.configPath == "" {
				opts.configPath = config.DefaultConfigPath()
			}

			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runServe(dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")

	return cmd
}

func runServe(dir string, opts *serveOptions) error {
	cfg, err := config.LoadWithEnv(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'mdc init' to reconfigure)", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot serve %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot serve %s: not a directory", dir)
	}

	srv := newServer(dir, cfg)
	httpServer := &http.Server{
		Addr:         opts.addr,
		Handler:      srv,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	fmt.Printf("Serving %s on http://localhost%s\n", dir, opts.addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// server renders markdown files from a directory over HTTP.
type server struct {
	router chi.Router
	dir    string
	md     goldmark.Markdown
}

func newServer(dir string, cfg *config.Config) *server {
	s := &server{
		dir: dir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table, callout.New(cfg.Options()...)),
		),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Get("/*", s.handlePage)
	s.router = r
	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	var files []string
	_ = filepath.WalkDir(s.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.HasSuffix(p, ".md") || strings.HasSuffix(p, ".markdown") {
			if rel, err := filepath.Rel(s.dir, p); err == nil {
				files = append(files, filepath.ToSlash(rel))
			}
		}
		return nil
	})
	sort.Strings(files)

	var body bytes.Buffer
	body.WriteString("<h1>mdc preview</h1>\n<ul>\n")
	for _, f := range files {
		fmt.Fprintf(&body, "<li><a href=\"/%s\">%s</a></li>\n", html.EscapeString(f), html.EscapeString(f))
	}
	body.WriteString("</ul>\n")
	writePage(w, "mdc preview", body.Bytes())
}

func (s *server) handlePage(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	file, ok := s.resolve(rel)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	src, err := os.ReadFile(file)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := s.md.Convert(src, &buf); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	writePage(w, rel, buf.Bytes())
}

// resolve maps a request path to a markdown file inside the served
// directory, rejecting traversal attempts and other file types.
func (s *server) resolve(rel string) (string, bool) {
	if rel == "" || strings.Contains(rel, "..") {
		return "", false
	}
	if !strings.HasSuffix(rel, ".md") && !strings.HasSuffix(rel, ".markdown") {
		return "", false
	}
	return filepath.Join(s.dir, filepath.FromSlash(path.Clean(rel))), true
}

// previewStyle keeps callouts recognizable without external assets.
const previewStyle = `body{max-width:48rem;margin:2rem auto;padding:0 1rem;font-family:sans-serif;line-height:1.5}
.callout{border-left:4px solid #888;border-radius:4px;background:#f5f5f5;padding:.5rem 1rem;margin:1rem 0}
.callout-title{margin:.25rem 0;font-size:1rem}
.callout-symbol{margin-right:.5rem}`

func writePage(w http.ResponseWriter, title string, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<title>%s</title>\n<style>%s</style>\n</head>\n<body>\n",
		html.EscapeString(title), previewStyle)
	_, _ = w.Write(body)
	_, _ = w.Write([]byte("\n</body>\n</html>\n"))
}
