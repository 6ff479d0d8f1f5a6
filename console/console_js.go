//go:build js && wasm

package console

import (
	"fmt"
	"syscall/js"
)

func Log(args ...any) {
	js.Global().Get("console").Call("log", jsArgs(args)...)
}

func Debug(args ...any) {
	js.Global().Get("console").Call("debug", jsArgs(args)...)
}

func Warn(args ...any) {
	js.Global().Get("console").Call("warn", jsArgs(args)...)
}

func Error(args ...any) {
	js.Global().Get("console").Call("error", jsArgs(args)...)
}

// jsArgs stringifies values js.ValueOf cannot convert, such as errors.
func jsArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch a.(type) {
		case nil, js.Value, js.Func, string, bool,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64, uintptr,
			float32, float64:
			out[i] = a
		default:
			out[i] = fmt.Sprint(a)
		}
	}
	return out
}
