package batch

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	iconpad "github.com/gcslaoli/iconpad-go"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func writeIcon(t *testing.T, path string, w, h int, content image.Rectangle) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := content.Min.Y; y < content.Max.Y; y++ {
		for x := content.Min.X; x < content.Max.X; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 120, G: 30, B: 200, A: 220})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readSize(t *testing.T, path string) image.Point {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return image.Pt(cfg.Width, cfg.Height)
}

// setupTree creates icons/a.png, icons/bad.png, icons/sub/b.PNG and a
// non-PNG file that must be ignored.
func setupTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "icons")
	writeIcon(t, filepath.Join(root, "a.png"), 64, 40, image.Rect(10, 5, 30, 25))
	writeIcon(t, filepath.Join(root, "sub", "b.PNG"), 20, 50, image.Rect(0, 10, 10, 40))
	if err := os.WriteFile(filepath.Join(root, "bad.png"), []byte("corrupt"), 0o644); err != nil {
		t.Fatalf("write bad.png: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatalf("write notes.txt: %v", err)
	}
	return root
}

func TestDiscover(t *testing.T) {
	root := setupTree(t)

	src, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	want := []string{
		filepath.Join(root, "a.png"),
		filepath.Join(root, "bad.png"),
		filepath.Join(root, "sub", "b.PNG"),
	}
	if diff := cmp.Diff(want, src.Files); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
	if src.IsFile {
		t.Fatalf("directory reported as file")
	}

	single, err := Discover(filepath.Join(root, "a.png"))
	if err != nil {
		t.Fatalf("Discover file error: %v", err)
	}
	if !single.IsFile || len(single.Files) != 1 {
		t.Fatalf("single file source = %+v", single)
	}

	txt, err := Discover(filepath.Join(root, "notes.txt"))
	if err != nil {
		t.Fatalf("Discover txt error: %v", err)
	}
	if len(txt.Files) != 0 {
		t.Fatalf("non-PNG file selected: %v", txt.Files)
	}

	if _, err := Discover(filepath.Join(root, "missing")); err == nil {
		t.Fatalf("expected error for missing input")
	}
}

func TestDestination(t *testing.T) {
	root := setupTree(t)
	out := filepath.Join(t.TempDir(), "out")
	file := filepath.Join(root, "sub", "b.PNG")

	dir := Source{Root: root}
	got, err := dir.Destination(file, out, false)
	if err != nil {
		t.Fatalf("Destination error: %v", err)
	}
	if want := filepath.Join(out, "sub", "b.PNG"); got != want {
		t.Fatalf("Destination = %s, want %s", got, want)
	}

	single := Source{Root: file, IsFile: true}
	if got, _ := single.Destination(file, filepath.Join(out, "x.png"), false); got != filepath.Join(out, "x.png") {
		t.Fatalf("file Destination = %s", got)
	}
	if got, _ := dir.Destination(file, "", true); got != file {
		t.Fatalf("in-place Destination = %s, want %s", got, file)
	}
	if _, err := dir.Destination(file, "", false); err == nil {
		t.Fatalf("expected error without output or in-place")
	}
}

func TestRunMirrorsTree(t *testing.T) {
	for _, jobs := range []int{0, 1, 4} {
		root := setupTree(t)
		out := filepath.Join(t.TempDir(), "out")

		src, err := Discover(root)
		if err != nil {
			t.Fatalf("Discover error: %v", err)
		}
		results, err := Run(context.Background(), src, Options{
			Output: out,
			Jobs:   jobs,
			Config: iconpad.Config{AlphaThreshold: 8, PadRatio: 0.1, MinSize: 1},
			Logger: quietLogger(),
		})
		if err != nil {
			t.Fatalf("jobs=%d: Run error: %v", jobs, err)
		}
		if len(results) != 3 {
			t.Fatalf("jobs=%d: got %d results, want 3", jobs, len(results))
		}

		if diff := cmp.Diff(Summary{Processed: 2, Failed: 1}, Summarize(results)); diff != "" {
			t.Fatalf("jobs=%d: summary mismatch (-want +got):\n%s", jobs, diff)
		}
		if results[1].Err == nil {
			t.Fatalf("jobs=%d: expected bad.png to fail", jobs)
		}

		a := results[0]
		if a.Original != image.Pt(64, 40) || a.Before == 0 || a.After == 0 {
			t.Fatalf("jobs=%d: a.png result = %+v", jobs, a)
		}
		if got := readSize(t, filepath.Join(out, "a.png")); got != image.Pt(22, 22) {
			t.Fatalf("jobs=%d: a.png output size %v, want 22x22", jobs, got)
		}
		if got := readSize(t, filepath.Join(out, "sub", "b.PNG")); got != image.Pt(33, 33) {
			t.Fatalf("jobs=%d: b.PNG output size %v, want 33x33", jobs, got)
		}
		if _, err := os.Stat(filepath.Join(out, "bad.png")); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("jobs=%d: failed file should not be written, stat err %v", jobs, err)
		}
	}
}

func TestRunInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	writeIcon(t, path, 50, 30, image.Rect(5, 5, 15, 15))

	src, err := Discover(path)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	results, err := Run(context.Background(), src, Options{InPlace: true, Config: iconpad.DefaultConfig(), Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if results[0].Err != nil || results[0].Dst != path {
		t.Fatalf("result = %+v", results[0])
	}
	if got := readSize(t, path); got != image.Pt(11, 11) {
		t.Fatalf("in-place output size %v, want 11x11", got)
	}
}

func TestRunCheckWritesNothing(t *testing.T) {
	root := setupTree(t)
	before, err := os.ReadFile(filepath.Join(root, "a.png"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	src, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	results, err := Run(context.Background(), src, Options{Check: true, Config: iconpad.DefaultConfig(), Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	a := results[0]
	if a.Err != nil || a.Report == nil || a.Dst != "" {
		t.Fatalf("check result = %+v", a)
	}
	if a.Report.Normalized || a.Report.Side != 21 {
		t.Fatalf("report = %+v, want side 21 and not normalized", *a.Report)
	}

	after, err := os.ReadFile(filepath.Join(root, "a.png"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Fatalf("check mode modified the source")
	}
}

func TestRunRequiresDestination(t *testing.T) {
	src := Source{Files: []string{"x.png"}}
	if _, err := Run(context.Background(), src, Options{Logger: quietLogger()}); err == nil {
		t.Fatalf("expected error without output or in-place")
	}
}

func TestRunCancelled(t *testing.T) {
	root := setupTree(t)
	src, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, src, Options{Output: t.TempDir(), Logger: quietLogger()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Fatalf("result %s error = %v, want context.Canceled", r.Src, r.Err)
		}
	}
	if s := Summarize(results); s.Processed != 0 || s.Failed != 3 {
		t.Fatalf("summary = %+v", s)
	}
}
