// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package treeline

import "errors"

var (
	// ErrInvalidIterator is returned when an operation receives an
	// iterator that belongs to a different tree, was created before the
	// tree's last structural change, or denotes a sentinel position
	// where a concrete element is required.
	ErrInvalidIterator = errors.New("treeline: invalid iterator")

	// ErrElementNotFound is returned when dereferencing an iterator
	// that does not sit on an element.
	ErrElementNotFound = errors.New("treeline: element not found")

	// ErrIllegalOperation is returned when stepping an iterator past a
	// structural bound that has no successor or predecessor.
	ErrIllegalOperation = errors.New("treeline: illegal operation")
)
