// Copyright 2025 fdio Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fdio

import "errors"

// Sentinel errors reported by the full-transfer calls. Both are returned
// wrapped by Exception; match them with errors.Is.
var (
	// ErrEOF means the stream ended while ReadFull still had data
	// outstanding. The count returned alongside it holds the bytes that
	// arrived before the close.
	ErrEOF = errors.New("EOF with data outstanding")

	// ErrNoProgress means the descriptor accepted zero bytes from
	// WriteFull or SendFull. A zero-length write result is only
	// meaningful on regular files, so the transfer is abandoned rather
	// than retried.
	ErrNoProgress = errors.New("sink accepted no data")
)

// Exception annotates err with the operation that hit it. The cause stays
// reachable through errors.Is and errors.Unwrap, including raw errnos, so
// callers can still test for e.g. syscall.EPIPE.
func Exception(err error, suffix string) error {
	return &exception{err: err, suffix: suffix}
}

type exception struct {
	err    error
	suffix string
}

func (e *exception) Error() string {
	if e.suffix == "" {
		return e.err.Error()
	}
	return e.err.Error() + " " + e.suffix
}

func (e *exception) Unwrap() error {
	return e.err
}
