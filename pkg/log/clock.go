// Copyright 2026 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Timestamp is the wall-clock time of a record as shown in a log line.
type Timestamp struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	// UTC is set when the time is expressed with a zero offset.
	UTC bool
}

// Clock produces timestamps in the local time zone.
// The zero value is ready to use.
type Clock struct {
	now    func() time.Time
	locate func() (*time.Location, error)
}

var defaultClock Clock

// NewClock returns a Clock reading the time from now and the local zone
// from locate. A nil argument selects time.Now or LocalLocation.
func NewClock(now func() time.Time, locate func() (*time.Location, error)) Clock {
	return Clock{now: now, locate: locate}
}

// Now returns the current local time. If the local zone cannot be
// resolved, universal time is used instead and the failure is dropped.
func (c Clock) Now() Timestamp {
	now, locate := c.now, c.locate
	if now == nil {
		now = time.Now
	}
	if locate == nil {
		locate = LocalLocation
	}

	loc, err := locate()
	if err != nil || loc == nil {
		loc = time.UTC
	}
	t := now().In(loc)
	_, offset := t.Zone()
	return Timestamp{
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
		UTC:         offset == 0,
	}
}

// LocalLocation resolves the local time zone. A zone named by the TZ
// environment variable must be loadable, otherwise time.Local is used.
func LocalLocation() (*time.Location, error) {
	tz, ok := os.LookupEnv("TZ")
	if !ok {
		return time.Local, nil
	}
	tz = strings.TrimPrefix(tz, ":")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("log: resolve local offset %q: %w", tz, err)
	}
	return loc, nil
}
