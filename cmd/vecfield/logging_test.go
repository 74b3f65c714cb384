package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdirTemp runs the test inside a scratch directory so logs/ never lands in the package
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		_ = os.Chdir(wd)
	})
}

func TestSetupLoggingDisabled(t *testing.T) {
	chdirTemp(t)
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("expected nil file when debug is off")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory should not be created when debug is off")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	chdirTemp(t)
	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("log output must not reach the terminal")
	}

	log.Printf("frame %d", 42)
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "frame 42") {
		t.Errorf("log file missing message, got %q", data)
	}
}

func TestSetupLoggingRotates(t *testing.T) {
	chdirTemp(t)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected active and rotated log, got %d entries", len(entries))
	}
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("active log not rotated, size %d", info.Size())
	}
}

func TestClosersReleaseLogFile(t *testing.T) {
	chdirTemp(t)
	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected log file")
	}

	var order []string
	var c closers
	c.add(func() error { order = append(order, "log"); return f.Close() })
	c.add(func() error { order = append(order, "speaker"); return nil })

	c.run()
	log.SetOutput(io.Discard)
	if strings.Join(order, ",") != "speaker,log" {
		t.Errorf("close order = %v, want reverse of acquisition", order)
	}
	if _, err := f.WriteString("after close"); err == nil {
		t.Error("log file still writable after run")
	}

	c.run()
	if len(order) != 2 {
		t.Errorf("second run closed again: %v", order)
	}
}
