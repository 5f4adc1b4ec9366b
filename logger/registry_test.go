package logger

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/philipp01105/buildlog/core"
)

func newTestRegistry(buf *bytes.Buffer, level core.Level) *Registry {
	return NewRegistry(
		WithHandler(newTextHandler(buf)),
		WithLevel(level),
	)
}

func TestRegistry_GetLoggerIdentity(t *testing.T) {
	r := newTestRegistry(&bytes.Buffer{}, InfoLevel)

	a1 := r.GetLogger("a")
	a2 := r.GetLogger("a")
	b := r.GetLogger("b")

	if a1 != a2 {
		t.Error("GetLogger should return the same instance for the same name")
	}
	if a1 == b {
		t.Error("GetLogger should return different instances for different names")
	}
	if a1.Name() != "a" || b.Name() != "b" {
		t.Errorf("Unexpected names %q and %q", a1.Name(), b.Name())
	}

	other := newTestRegistry(&bytes.Buffer{}, InfoLevel)
	if other.GetLogger("a") == a1 {
		t.Error("Registries must not share loggers")
	}
}

func TestRegistry_Names(t *testing.T) {
	r := newTestRegistry(&bytes.Buffer{}, InfoLevel)
	if len(r.Names()) != 0 {
		t.Errorf("Expected no loggers, got %v", r.Names())
	}

	r.GetLogger("org.example.b")
	r.GetLogger("org.example.a")
	r.GetLogger("org.example.b")

	want := []string{"org.example.a", "org.example.b"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistry_Template(t *testing.T) {
	rec := &recordingHandler{}
	r := NewRegistry(WithHandler(rec), WithLevel(DebugLevel), WithCaller(true), WithCoarseClock(true))

	l := r.GetLogger("tpl")
	if l.Level() != DebugLevel {
		t.Errorf("Expected DebugLevel, got %v", l.Level())
	}
	if r.Handler() != rec {
		t.Error("Expected the configured handler")
	}

	l.Debug("visible")
	if len(rec.entries) != 1 || !rec.entries[0].Caller.Defined {
		t.Fatalf("Expected one entry with caller info, got %+v", rec.entries)
	}
	if rec.entries[0].Logger != "tpl" {
		t.Errorf("Expected logger name on entry, got %q", rec.entries[0].Logger)
	}
}

func TestRegistry_DefaultHandler(t *testing.T) {
	r := NewRegistry()
	if r.Handler() == nil {
		t.Fatal("Expected a default handler")
	}
}

func TestRegistry_UnconfiguredNeverBreaches(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRegistry(&buf, InfoLevel)

	l := r.GetLogger("x")
	l.Warn("warning")
	l.Error("error")

	if r.ThrewLogsOfBreakingLevel() {
		t.Error("Unconfigured registry must never report a breach")
	}
	if strings.Contains(buf.String(), BreakingLogMessage) {
		t.Error("Unconfigured registry must not announce")
	}
}

func TestRegistry_BreakOnLogsOfLevel(t *testing.T) {
	r := newTestRegistry(&bytes.Buffer{}, InfoLevel)

	if err := r.BreakOnLogsOfLevel("INFO"); !IsLevelTooLow(err) {
		t.Errorf("Expected ErrLevelTooLow, got %v", err)
	}
	if err := r.BreakOnLogsOfLevel("NOT_A_LEVEL"); !IsInvalidLevel(err) {
		t.Errorf("Expected ErrInvalidLevel, got %v", err)
	}
	if err := r.BreakOnLogsOfLevel("WARN"); err != nil {
		t.Fatalf("BreakOnLogsOfLevel(WARN) error = %v", err)
	}
	if err := r.BreakOnLogsOfLevel("ERROR"); !IsAlreadyConfigured(err) {
		t.Errorf("Expected ErrAlreadyConfigured, got %v", err)
	}
	if got, _ := r.BreakState().Threshold(); got != WarnLevel {
		t.Errorf("Expected WARN threshold, got %v", got)
	}
}

func TestRegistry_ErrorThresholdScenario(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRegistry(&buf, InfoLevel)
	if err := r.BreakOnLogsOfLevel("ERROR"); err != nil {
		t.Fatalf("BreakOnLogsOfLevel() error = %v", err)
	}

	r.GetLogger("X").Warn("first warning")
	if r.ThrewLogsOfBreakingLevel() {
		t.Fatal("WARN must not breach an ERROR threshold")
	}

	r.GetLogger("X").Error("compilation failed")
	if !r.ThrewLogsOfBreakingLevel() {
		t.Fatal("ERROR should breach an ERROR threshold")
	}

	r.GetLogger("X").Warn("second warning")
	r.GetLogger("Y").Error("another failure")
	if !r.ThrewLogsOfBreakingLevel() {
		t.Error("Breach must be monotonic")
	}

	expected := "[WARNING] X - first warning\n" +
		"[ERROR] X - compilation failed\n" +
		"[INFO] X - Breaking log occurred\n" +
		"[WARNING] X - second warning\n" +
		"[ERROR] Y - another failure\n"
	if buf.String() != expected {
		t.Errorf("Unexpected output:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

func TestRegistry_FilteredLogsStillBreach(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRegistry(&buf, ErrorLevel)
	r.BreakOnLogsOfLevel("WARN")

	r.GetLogger("quiet").Warn("not printed")
	r.GetLogger("quiet").Warnf("not printed %d", 2)

	if !r.ThrewLogsOfBreakingLevel() {
		t.Error("A filtered WARN must still breach a WARN threshold")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output at ERROR level, got: %s", buf.String())
	}
}

func TestRegistry_AnnouncementNotTracked(t *testing.T) {
	rec := &recordingHandler{}
	r := NewRegistry(WithHandler(rec))
	r.BreakOnLogsOfLevel("WARN")

	r.GetLogger("x").Log(WarnLevel, "deprecated")

	if got := rec.count(InfoLevel, BreakingLogMessage); got != 1 {
		t.Errorf("Expected one INFO announcement, got %d", got)
	}
	if len(rec.entries) != 2 {
		t.Errorf("Expected warning plus announcement, got %d entries", len(rec.entries))
	}
}

func TestRegistry_ConcurrentSameName(t *testing.T) {
	rec := &recordingHandler{}
	r := NewRegistry(WithHandler(rec))
	if err := r.BreakOnLogsOfLevel("WARN"); err != nil {
		t.Fatalf("BreakOnLogsOfLevel() error = %v", err)
	}

	const goroutines = 100
	loggers := make([]*Logger, goroutines)
	var start sync.WaitGroup
	var wg sync.WaitGroup
	start.Add(1)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start.Wait()
			l := r.GetLogger("same-name")
			loggers[i] = l
			l.Error(fmt.Sprintf("failure %d", i))
		}(i)
	}
	start.Done()
	wg.Wait()

	for i, l := range loggers {
		if l != loggers[0] {
			t.Fatalf("goroutine %d got a different logger instance", i)
		}
	}
	if got := rec.count(InfoLevel, BreakingLogMessage); got != 1 {
		t.Errorf("Expected exactly one announcement, got %d", got)
	}
	if !r.ThrewLogsOfBreakingLevel() {
		t.Error("Expected breach")
	}
	if got := len(r.Names()); got != 1 {
		t.Errorf("Expected one cached logger, got %d", got)
	}
}

func TestRegistry_StandaloneLoggerNotTracked(t *testing.T) {
	r := newTestRegistry(&bytes.Buffer{}, InfoLevel)
	r.BreakOnLogsOfLevel("WARN")

	standalone := NewBuilder().WithHandler(r.Handler()).Build()
	standalone.Error("outside the registry")

	if r.ThrewLogsOfBreakingLevel() {
		t.Error("Loggers built without the break state must not breach")
	}
}

func TestRegistry_Close(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRegistry(&buf, InfoLevel)
	l := r.GetLogger("x")

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	l.Info("after close")
	if buf.Len() != 0 {
		t.Errorf("Expected no output after Close, got: %s", buf.String())
	}
}

func TestDefaultRegistry(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	var buf bytes.Buffer
	r := newTestRegistry(&buf, InfoLevel)
	SetDefault(r)

	if Default() != r {
		t.Fatal("SetDefault did not replace the default registry")
	}
	if GetLogger("pkg") != r.GetLogger("pkg") {
		t.Error("GetLogger should use the default registry")
	}
	if err := BreakOnLogsOfLevel("ERROR"); err != nil {
		t.Fatalf("BreakOnLogsOfLevel() error = %v", err)
	}
	GetLogger("pkg").Error("boom")
	if !ThrewLogsOfBreakingLevel() {
		t.Error("Expected breach on the default registry")
	}
	if !strings.Contains(buf.String(), "[INFO] pkg - Breaking log occurred") {
		t.Errorf("Expected announcement, got: %s", buf.String())
	}
}
