// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/ethersphere/clg/pkg/console"
	"github.com/ethersphere/clg/pkg/console/mock"
	"github.com/ethersphere/clg/pkg/log"
)

func TestRegistryInstallOnce(t *testing.T) {
	t.Parallel()

	r := log.NewRegistry()
	if _, ok := r.Logger(); ok {
		t.Fatal("empty registry must not report a logger")
	}
	if have := r.MaxLevel(); have != log.LevelOff {
		t.Fatalf("MaxLevel(): want Off before install; have %s", have)
	}

	first, firstSink := newLogger(t, log.LevelWarn)
	if err := r.Install(first); err != nil {
		t.Fatalf("Install(...): unexpected error: %v", err)
	}

	second, secondSink := newLogger(t, log.LevelTrace)
	if err := r.Install(second); !errors.Is(err, log.ErrAlreadyInstalled) {
		t.Fatalf("second Install(...): want %v; have %v", log.ErrAlreadyInstalled, err)
	}

	if l, ok := r.Logger(); !ok || l != first {
		t.Fatal("Logger(): want the first logger to stay installed")
	}
	if have := r.MaxLevel(); have != log.LevelWarn {
		t.Errorf("MaxLevel(): want Warn; have %s", have)
	}

	// A logger that lost the installation remains usable on its own.
	second.Tracef("direct")
	if n := len(secondSink.Entries()); n != 1 {
		t.Errorf("direct use of a non-installed logger: want 1 entry; have %d", n)
	}

	r.Log(log.Record{Level: log.LevelError, Message: "routed"})
	r.Log(log.Record{Level: log.LevelInfo, Message: "filtered"})
	if have := firstSink.Lines(console.ChannelError); len(have) != 1 || !strings.HasSuffix(have[0], "routed") {
		t.Errorf("want the error routed to the installed logger; have %v", have)
	}
	if n := len(firstSink.Entries()); n != 1 {
		t.Errorf("want 1 entry on the installed logger; have %d", n)
	}
	if n := len(secondSink.Entries()); n != 1 {
		t.Errorf("installed sink routing must not touch other loggers; have %d entries", n)
	}

	if !r.Enabled(log.LevelWarn) || r.Enabled(log.LevelInfo) || r.Enabled(log.LevelOff) {
		t.Error("Enabled(...) must follow the installed threshold")
	}

	for _, lv := range outOfRange {
		if r.Enabled(lv) {
			t.Errorf("Enabled(%s): want false", lv)
		}
		r.Log(log.Record{Level: lv, Message: "out of range"})
	}
	if n := len(firstSink.Entries()); n != 1 {
		t.Errorf("out of range levels must not be written; have %d entries", n)
	}
}

func TestRegistryInstallNil(t *testing.T) {
	t.Parallel()

	r := log.NewRegistry()
	if err := r.Install(nil); !errors.Is(err, log.ErrNilLogger) {
		t.Fatalf("Install(nil): want %v; have %v", log.ErrNilLogger, err)
	}
	if _, ok := r.Logger(); ok {
		t.Fatal("Install(nil) must not install anything")
	}

	l, _ := newLogger(t, log.LevelInfo)
	if err := r.Install(l); err != nil {
		t.Fatalf("Install(...) after a nil logger: unexpected error: %v", err)
	}
	if have, ok := r.Logger(); !ok || have != l {
		t.Error("Logger(): want the logger installed after the rejected nil")
	}
}

func TestRegistryConcurrentInstall(t *testing.T) {
	t.Parallel()

	r := log.NewRegistry()

	const n = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := log.NewLogger(log.WithSink(mock.NewSink()))
			if err := r.Install(l); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Errorf("want exactly one successful install; have %d", succeeded)
	}
}

func TestRegistryInitOff(t *testing.T) {
	t.Parallel()

	r := log.NewRegistry()
	sink := mock.NewSink()
	l := r.Init(log.WithLevel(log.LevelOff), log.WithSink(sink))

	if l.Level() != log.LevelOff {
		t.Errorf("want Off; have %s", l.Level())
	}
	if _, ok := r.Logger(); ok {
		t.Error("Init with Off must not install")
	}
	for _, lv := range log.Levels() {
		if l.Enabled(lv) {
			t.Errorf("Enabled(%s) under Off: want false", lv)
		}
	}

	// Off leaves the slot free for a later logger.
	r.Init(log.WithSink(sink))
	if have := r.MaxLevel(); have != log.LevelInfo {
		t.Errorf("MaxLevel(): want Info; have %s", have)
	}
}

func TestRegistryInitConflict(t *testing.T) {
	t.Parallel()

	r := log.NewRegistry()
	r.Init(log.WithLevel(log.LevelDebug), log.WithSink(mock.NewSink()))

	sink := mock.NewSink()
	var line int
	defer func() {
		v := recover()
		err, ok := v.(error)
		if !ok || !errors.Is(err, log.ErrAlreadyInstalled) {
			t.Fatalf("want panic with %v; have %v", log.ErrAlreadyInstalled, v)
		}
		lines := sink.Lines(console.ChannelError)
		if len(lines) != 1 || !strings.Contains(lines[0], log.ErrAlreadyInstalled.Error()) {
			t.Fatalf("want one diagnostic on the error channel; have %v", sink.Entries())
		}
		if want := fmt.Sprintf("[Error] %s:%d ", testModule, line+1); !strings.Contains(lines[0], want) {
			t.Errorf("diagnostic %q does not contain %q", lines[0], want)
		}
		if have := r.MaxLevel(); have != log.LevelDebug {
			t.Errorf("MaxLevel(): want Debug kept; have %s", have)
		}
	}()
	_, _, line, _ = runtime.Caller(0)
	r.Init(log.WithSink(sink))
}

// TestDefaultRegistry is the only test touching the process-wide
// registry; it must not run in parallel with anything installing there.
func TestDefaultRegistry(t *testing.T) {
	log.Infof("dropped before installation")
	if log.Enabled(log.LevelError) {
		t.Fatal("nothing is installed yet")
	}

	sink := mock.NewSink()
	l := log.Init(log.WithLevel(log.LevelDebug), log.WithSink(sink), log.WithClock(utcClock))
	if have, ok := log.DefaultRegistry().Logger(); !ok || have != l {
		t.Fatal("Init must install into the default registry")
	}
	if err := log.Install(log.NewLogger(log.WithSink(mock.NewSink()))); !errors.Is(err, log.ErrAlreadyInstalled) {
		t.Fatalf("Install(...): want %v; have %v", log.ErrAlreadyInstalled, err)
	}

	diag := mock.NewSink()
	func() {
		var line int
		defer func() {
			if v := recover(); v == nil {
				t.Error("second Init: want panic")
				return
			}
			lines := diag.Lines(console.ChannelError)
			if len(lines) != 1 {
				t.Errorf("want one diagnostic; have %v", diag.Entries())
				return
			}
			if want := fmt.Sprintf("[Error] %s:%d ", testModule, line+1); !strings.Contains(lines[0], want) {
				t.Errorf("diagnostic %q does not contain %q", lines[0], want)
			}
		}()
		_, _, line, _ = runtime.Caller(0)
		log.Init(log.WithSink(diag), log.WithClock(utcClock))
	}()

	_, _, line, _ := runtime.Caller(0)
	log.Errorf("e%d", 1)
	log.Warnf("w")
	log.Infof("i")
	log.Debugf("d")
	log.Tracef("t")

	entries := sink.Entries()
	if len(entries) != 4 {
		t.Fatalf("want 4 entries; have %d: %v", len(entries), entries)
	}
	if want := fmt.Sprintf("[Error] %s:%d e1", testModule, line+1); !strings.HasSuffix(entries[0].Line, want) {
		t.Errorf("want %q suffix; have %q", want, entries[0].Line)
	}
	if want := fmt.Sprintf("[Debug] %s:%d d", testModule, line+4); !strings.HasSuffix(entries[3].Line, want) {
		t.Errorf("want %q suffix; have %q", want, entries[3].Line)
	}
	if !log.Enabled(log.LevelDebug) || log.Enabled(log.LevelTrace) {
		t.Error("Enabled(...) must follow the installed threshold")
	}
}
