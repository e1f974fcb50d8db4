package cli

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ortfo/gui/internal/server"
	"github.com/ortfo/gui/pkg/config"
	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
	pkgio "github.com/ortfo/gui/pkg/io"
	"github.com/ortfo/gui/pkg/layoutsvc/local"
	"github.com/ortfo/gui/pkg/observability"
)

const workJSON = `{
  "metadata": {"layout": ["p1", ["m1", "l1"]], "Made With": ["go"]},
  "title": {"en": "Work", "fr": "Œuvre"},
  "paragraphs": {
    "en": [{"id": "intro", "content": "Hello"}],
    "fr": [{"id": "intro", "content": "Bonjour"}]
  },
  "mediaembeddeclarations": {
    "en": [{"alt": "cover", "source": "cover.png"}],
    "fr": [{"alt": "couverture", "source": "cover.png"}]
  },
  "links": {
    "en": [{"name": "Site", "url": "https://example.com"}],
    "fr": [{"name": "Site", "url": "https://example.com/fr"}]
  },
  "footnotes": {}
}`

type harness struct {
	t   *testing.T
	dir string
}

// newHarness isolates the command line from the user's configuration and
// cache.
func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, name := range []string{
		config.EnvLayoutService, config.EnvLayoutTimeout,
		config.EnvCacheBackend, config.EnvCacheDir, config.EnvCacheTTL,
		config.EnvCacheRedisAddr, config.EnvCacheRedisPrefix,
		config.EnvServerAddr, config.EnvLogLevel, config.EnvLogFile,
	} {
		t.Setenv(name, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Cleanup(observability.Reset)
	return &harness{t: t, dir: t.TempDir()}
}

func (h *harness) file(name, data string) string {
	h.t.Helper()
	path := filepath.Join(h.dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		h.t.Fatal(err)
	}
	return path
}

type result struct {
	stdout string
	stderr string
	err    error
}

func (h *harness) run(stdin string, args ...string) result {
	h.t.Helper()
	return h.runContext(context.Background(), stdin, args...)
}

func (h *harness) runContext(ctx context.Context, stdin string, args ...string) result {
	h.t.Helper()
	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(ctx)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func mustParse(t *testing.T, s string) layout.Layout {
	t.Helper()
	l, err := layout.Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse(%s): %v", s, err)
	}
	return l
}

func TestNormalizeStdin(t *testing.T) {
	h := newHarness(t)
	res := h.run(`[["p1","p1"],["m1","m1","l1","l1"]]`, "normalize")
	if res.err != nil {
		t.Fatalf("normalize: %v", res.err)
	}
	got := mustParse(t, res.stdout)
	if got.String() != `["p1",["m1","l1"]]` {
		t.Errorf("normalize = %s, want %s", got, `["p1",["m1","l1"]]`)
	}
}

func TestNormalizeYAML(t *testing.T) {
	h := newHarness(t)
	res := h.run("- [p, p]\n- m\n", "normalize", "--format", "yaml")
	if res.err != nil {
		t.Fatalf("normalize: %v", res.err)
	}
	got, err := pkgio.ParseLayout([]byte(res.stdout), pkgio.FormatYAML)
	if err != nil {
		t.Fatalf("ParseLayout(%q): %v", res.stdout, err)
	}
	if want := mustParse(t, `[["p1","p2"],"m1"]`); !got.Equal(want) {
		t.Errorf("normalize = %s, want %s", got, want)
	}
}

func TestNormalizeToFile(t *testing.T) {
	h := newHarness(t)
	in := h.file("layout.yaml", "- [p, m]\n- [l1, l1]\n")
	out := filepath.Join(h.dir, "layout.json")

	res := h.run("", "normalize", in, "-o", out)
	if res.err != nil {
		t.Fatalf("normalize: %v", res.err)
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want nothing", res.stdout)
	}
	if !strings.Contains(res.stderr, "Normalized") || !strings.Contains(res.stderr, out) {
		t.Errorf("stderr = %q, want a summary naming %s", res.stderr, out)
	}

	got, err := pkgio.ImportLayout(out)
	if err != nil {
		t.Fatalf("ImportLayout: %v", err)
	}
	if want := mustParse(t, `[["p1","m1"],"l1"]`); !got.Equal(want) {
		t.Errorf("written layout = %s, want %s", got, want)
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		code  errors.Code
	}{
		{"row does not divide capacity", `[["p","m","l"]]`, []string{"--capacity", "4"}, errors.ErrCodeIntegrity},
		{"negative capacity", `["p"]`, []string{"--capacity=-1"}, errors.ErrCodeInvalidInput},
		{"unknown format", `["p"]`, []string{"--format", "toml"}, errors.ErrCodeUnsupported},
		{"missing file", "", []string{"/does/not/exist.json"}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			res := h.run(tt.stdin, append([]string{"normalize"}, tt.args...)...)
			if got := errors.GetCode(res.err); got != tt.code {
				t.Errorf("normalize error = %v, want code %s", res.err, tt.code)
			}
		})
	}
}

func TestNormalizeRemote(t *testing.T) {
	h := newHarness(t)
	quiet := log.New(io.Discard)
	srv := httptest.NewServer(server.New(local.New(quiet), quiet).Handler())
	defer srv.Close()

	res := h.run(`[["p1","p1"],["m1","m1","l1","l1"]]`, "normalize", "--service", srv.URL)
	if res.err != nil {
		t.Fatalf("normalize: %v", res.err)
	}
	if got := mustParse(t, res.stdout); got.String() != `["p1",["m1","l1"]]` {
		t.Errorf("normalize = %s, want %s", got, `["p1",["m1","l1"]]`)
	}

	res = h.run(`[["p","m","l"]]`, "normalize", "--service", srv.URL, "--capacity", "4")
	if !errors.Is(res.err, errors.ErrCodeIntegrity) {
		t.Errorf("remote normalize error = %v, want %s", res.err, errors.ErrCodeIntegrity)
	}
}

func TestWidth(t *testing.T) {
	h := newHarness(t)
	res := h.run(`[["p","m"],["p","m","l"]]`, "width")
	if res.err != nil {
		t.Fatalf("width: %v", res.err)
	}
	if res.stdout != "6\n" {
		t.Errorf("width = %q, want %q", res.stdout, "6\n")
	}
}

func TestValidateLayout(t *testing.T) {
	h := newHarness(t)
	res := h.run(`["p",["m","l"]]`, "validate")
	if res.err != nil {
		t.Fatalf("validate: %v", res.err)
	}
	for _, want := range []string{"valid layout", "rows", "width"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("validate output = %q, want %q", res.stdout, want)
		}
	}

	if res := h.run(`["z"]`, "validate"); res.err == nil {
		t.Error("validate accepted an unknown token")
	}
}

func TestValidateDescription(t *testing.T) {
	h := newHarness(t)
	good := h.file("work.json", workJSON)
	res := h.run("", "validate", "--description", good)
	if res.err != nil {
		t.Fatalf("validate: %v", res.err)
	}
	if !strings.Contains(res.stdout, "valid layout") {
		t.Errorf("validate output = %q", res.stdout)
	}

	bad := h.file("bad.json", strings.Replace(workJSON, `["p1", ["m1", "l1"]]`, `["p2", ["m1", "l1"]]`, 1))
	res = h.run("", "validate", "--description", bad)
	if !errors.Is(res.err, errors.ErrCodeInvalidLayout) {
		t.Errorf("validate error = %v, want %s", res.err, errors.ErrCodeInvalidLayout)
	}
}

func TestBlocks(t *testing.T) {
	h := newHarness(t)
	work := h.file("work.json", workJSON)

	res := h.run("", "blocks", work)
	if res.err != nil {
		t.Fatalf("blocks: %v", res.err)
	}
	doc, err := pkgio.ReadBlocks(strings.NewReader(res.stdout))
	if err != nil {
		t.Fatalf("ReadBlocks: %v", err)
	}
	if doc.Capacity != 2 {
		t.Errorf("capacity = %d, want 2", doc.Capacity)
	}
	if got := doc.Blocks.Languages(); len(got) != 2 || got[0] != "en" || got[1] != "fr" {
		t.Errorf("languages = %v, want [en fr]", got)
	}
	en := doc.Blocks["en"]
	if len(en) != 3 {
		t.Fatalf("en blocks = %d, want 3", len(en))
	}
	p, ok := en[0].Placement(2)
	if en[0].ID.Kind != layout.KindParagraph || !ok || p.W != 2 || p.H != 1 {
		t.Errorf("first block = %s at %+v, want a full-width paragraph", en[0].ID, p)
	}
}

func TestBlocksLanguageFilter(t *testing.T) {
	h := newHarness(t)
	work := h.file("work.json", workJSON)

	res := h.run("", "blocks", work, "--lang", "fr")
	if res.err != nil {
		t.Fatalf("blocks: %v", res.err)
	}
	doc, err := pkgio.ReadBlocks(strings.NewReader(res.stdout))
	if err != nil {
		t.Fatalf("ReadBlocks: %v", err)
	}
	if got := doc.Blocks.Languages(); len(got) != 1 || got[0] != "fr" {
		t.Errorf("languages = %v, want [fr]", got)
	}

	res = h.run("", "blocks", work, "--lang", "de")
	if !errors.Is(res.err, errors.ErrCodeInvalidLanguage) {
		t.Errorf("blocks --lang de error = %v, want %s", res.err, errors.ErrCodeInvalidLanguage)
	}
}

func TestBlocksLayoutFailure(t *testing.T) {
	h := newHarness(t)
	work := h.file("work.json", strings.Replace(workJSON, `["p1", ["m1", "l1"]]`, `["p9"]`, 1))

	res := h.run("", "blocks", work)
	if !errors.Is(res.err, errors.ErrCodeLayoutService) {
		t.Errorf("blocks error = %v, want %s", res.err, errors.ErrCodeLayoutService)
	}
	if !strings.Contains(res.stderr, "layout computation failed") {
		t.Errorf("stderr = %q, want the logged cause", res.stderr)
	}
}

func TestBlocksAreCached(t *testing.T) {
	h := newHarness(t)
	work := h.file("work.json", workJSON)

	if res := h.run("", "blocks", work); res.err != nil {
		t.Fatalf("blocks: %v", res.err)
	}
	res := h.run("", "blocks", work, "-v")
	if res.err != nil {
		t.Fatalf("blocks: %v", res.err)
	}
	if !strings.Contains(res.stderr, "cache hit") {
		t.Errorf("second run log = %q, want a cache hit", res.stderr)
	}

	res = h.run("", "cache", "clear")
	if res.err != nil {
		t.Fatalf("cache clear: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Cleared 1 cached entries") {
		t.Errorf("cache clear = %q, want one entry cleared", res.stdout)
	}

	res = h.run("", "blocks", work, "--no-cache")
	if res.err != nil {
		t.Fatalf("blocks --no-cache: %v", res.err)
	}
	if res := h.run("", "cache", "clear"); !strings.Contains(res.stdout, "Cleared 0 cached entries") {
		t.Errorf("cache clear after --no-cache = %q, want nothing cleared", res.stdout)
	}
}

func TestRebuild(t *testing.T) {
	h := newHarness(t)
	work := h.file("work.json", workJSON)
	blocksFile := filepath.Join(h.dir, "blocks.json")

	res := h.run("", "blocks", work, "-o", blocksFile)
	if res.err != nil {
		t.Fatalf("blocks: %v", res.err)
	}
	if !strings.Contains(res.stderr, "rebuild") {
		t.Errorf("blocks summary = %q, want a rebuild hint", res.stderr)
	}

	out := filepath.Join(h.dir, "rebuilt.yaml")
	res = h.run("", "rebuild", blocksFile, "--base", work, "-o", out)
	if res.err != nil {
		t.Fatalf("rebuild: %v", res.err)
	}

	d, err := pkgio.ImportDescription(out)
	if err != nil {
		t.Fatalf("ImportDescription: %v", err)
	}
	l, err := d.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if l.String() != `["p1",["m1","l1"]]` {
		t.Errorf("rebuilt layout = %s, want %s", l, `["p1",["m1","l1"]]`)
	}
	if got := d.Paragraphs["fr"]; len(got) != 1 || got[0].Content != "Bonjour" {
		t.Errorf("fr paragraphs = %+v", got)
	}
	if d.Title["fr"] != "Œuvre" {
		t.Errorf("title = %v, want the base title", d.Title)
	}
}

func TestRebuildWithoutBase(t *testing.T) {
	h := newHarness(t)
	res := h.run(`{"capacity": 1, "blocks": {"en": []}}`, "rebuild")
	if !errors.Is(res.err, errors.ErrCodeMissingDocument) {
		t.Errorf("rebuild error = %v, want %s", res.err, errors.ErrCodeMissingDocument)
	}
}

func TestPreview(t *testing.T) {
	h := newHarness(t)
	work := h.file("work.json", workJSON)

	res := h.run("", "preview", work)
	if res.err != nil {
		t.Fatalf("preview: %v", res.err)
	}
	for _, want := range []string{"(en)", "paragraph:0", "media:0", "link:0", "3 blocks"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("preview = %q, want %q", res.stdout, want)
		}
	}

	res = h.run("", "preview", work, "--lang", "fr")
	if res.err != nil {
		t.Fatalf("preview --lang fr: %v", res.err)
	}
	if !strings.Contains(res.stdout, "(fr)") {
		t.Errorf("preview --lang fr = %q", res.stdout)
	}
}

func TestServe(t *testing.T) {
	h := newHarness(t)
	logFile := filepath.Join(h.dir, "serve.log")
	t.Setenv(config.EnvLogFile, logFile)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	res := h.runContext(ctx, "", "serve", "--addr", "127.0.0.1:0")
	if res.err != context.DeadlineExceeded {
		t.Errorf("serve = %v, want the context error", res.err)
	}
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file: %v", err)
	}
	if !strings.Contains(string(data), "starting layout service") {
		t.Errorf("log file = %q", data)
	}
}

func TestCachePath(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	t.Setenv(config.EnvCacheDir, dir)

	res := h.run("", "cache", "path")
	if res.err != nil {
		t.Fatalf("cache path: %v", res.err)
	}
	if res.stdout != dir+"\n" {
		t.Errorf("cache path = %q, want %q", res.stdout, dir+"\n")
	}
}

func TestCacheClearRedis(t *testing.T) {
	h := newHarness(t)
	t.Setenv(config.EnvCacheBackend, config.CacheRedis)
	t.Setenv(config.EnvCacheRedisAddr, "127.0.0.1:1")

	res := h.run("", "cache", "clear")
	if !errors.Is(res.err, errors.ErrCodeUnsupported) {
		t.Errorf("cache clear error = %v, want %s", res.err, errors.ErrCodeUnsupported)
	}
}

func TestGlobalFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad service", []string{"--service", "ftp://example.com", "width"}, errors.ErrCodeInvalidInput},
		{"missing config", []string{"--config", "/does/not/exist.toml", "width"}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			res := h.run(`["p"]`, tt.args...)
			if got := errors.GetCode(res.err); got != tt.code {
				t.Errorf("error = %v, want code %s", res.err, tt.code)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	cfg := h.file("layout.toml", "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n")

	res := h.run("", "--config", cfg, "cache", "path")
	if res.err != nil {
		t.Fatalf("cache path: %v", res.err)
	}
	if strings.TrimSpace(res.stdout) != filepath.ToSlash(dir) {
		t.Errorf("cache path = %q, want %q", res.stdout, dir)
	}
}
