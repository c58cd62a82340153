// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package fifo

// RaceEnabled is true when the race detector is active.
// Tests use it to skip producer/consumer runs: slot and block-link
// accesses are ordered only through the atomix tail cursor, which the
// race detector cannot observe.
const RaceEnabled = true
