//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/userwidgets/console"
)

// callOnInit invokes the OnInit lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnInit panic in component", key, fmt.Sprint(rec))
		}
	}()
	initializer.OnInit()
}

// callOnParametersSet invokes the OnParametersSet lifecycle method in production mode.
func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnParametersSet panic in component", key, fmt.Sprint(rec))
		}
	}()
	receiver.OnParametersSet()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnDestroy panic in component", key, fmt.Sprint(rec))
		}
	}()
	cleaner.OnDestroy()
}
