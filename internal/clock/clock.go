// Package clock wraps time.Now so event timestamps can be frozen in tests.
package clock

import "time"

// NowFunc returns the current time; tests replace it for determinism.
var NowFunc = time.Now

// Now returns the current time through NowFunc.
func Now() time.Time { return NowFunc() }
