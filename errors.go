// errors.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file defines the error types returned across the Engine
// boundary. Internal invariant violations (score asked to count a
// play placing zero or more than RackSize new letters, a panic inside
// a search worker, which FindPlay re-raises) remain panics, on the
// theory that they indicate a bug in this package rather than a
// caller mistake.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package skrafl

// InvalidPlayError reports that a proposed play fails one of the
// rules checked by Valid.
type InvalidPlayError struct {
	Reason string
}

func (e *InvalidPlayError) Error() string {
	return "invalid play: " + e.Reason
}

// NoMoveError reports that FindMove exhausted its search without
// finding any legal play at all.
type NoMoveError struct{}

func (e *NoMoveError) Error() string {
	return "no legal move found for this rack"
}

// InitializationError wraps a failure to load or parse a
// dictionary during Engine.Init.
type InitializationError struct {
	Cause error
}

func (e *InitializationError) Error() string {
	return "failed to initialize engine: " + e.Cause.Error()
}

func (e *InitializationError) Unwrap() error {
	return e.Cause
}
