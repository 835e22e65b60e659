// util/error_test.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mmp/flyable/log"
)

func TestErrorLogger(t *testing.T) {
	var e ErrorLogger
	if e.HaveErrors() || e.Err() != nil {
		t.Fatalf("new ErrorLogger should have no errors")
	}

	e.Push("flyers")
	e.Push("quad")
	e.ErrorString("drone speed %d must be positive", -3)
	e.Pop()
	e.Error(errors.New("duplicate name"))
	e.Pop()
	e.ErrorString("no legs")

	if !e.HaveErrors() {
		t.Fatalf("expected errors")
	}
	expected := "flyers / quad: drone speed -3 must be positive\nflyers: duplicate name\nno legs"
	if e.String() != expected {
		t.Errorf("got %q, expected %q", e.String(), expected)
	}
	if err := e.Err(); err == nil || err.Error() != expected {
		t.Errorf("got Err() %v, expected %q", err, expected)
	}

	var buf bytes.Buffer
	e.PrintErrors(log.NewWriter(&buf, "info"))
	if n := strings.Count(buf.String(), `"level":"ERROR"`); n != 3 {
		t.Errorf("expected 3 error records, got %d: %s", n, buf.String())
	}
}
