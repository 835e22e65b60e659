// log/stack.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// StackFrame is one entry of the "callstack" attribute on log records.
type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

const maxStackDepth = 16

// Callstack returns up to maxStackDepth frames starting with the caller
// of the Logger method that is logging, innermost first. It stops at
// main.main.
func Callstack() []StackFrame {
	pc := make([]uintptr, maxStackDepth)
	// Skip runtime.Callers, Callstack, and the Logger method.
	pc = pc[:runtime.Callers(3, pc)]
	if len(pc) == 0 {
		return nil
	}

	var stack []StackFrame
	frames := runtime.CallersFrames(pc)
	for {
		frame, more := frames.Next()
		stack = append(stack, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: shortFunctionName(frame.Function),
		})
		if !more || frame.Function == "main.main" {
			return stack
		}
	}
}

// shortFunctionName drops the module path, or "main.", from a fully
// qualified function name.
func shortFunctionName(fn string) string {
	if s, ok := strings.CutPrefix(fn, "github.com/mmp/flyable/"); ok {
		return s
	}
	return strings.TrimPrefix(fn, "main.")
}

func (f StackFrame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":" + f.Function
}
