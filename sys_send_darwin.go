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

//go:build darwin
// +build darwin

package fdio

import "golang.org/x/sys/unix"

// rawSend transfers p over a connected socket without raising SIGPIPE.
// Darwin has no MSG_NOSIGNAL; SO_NOSIGPIPE on the descriptor gives the
// same EPIPE-instead-of-signal behavior. Setting it on every call is
// idempotent and keeps the suppression scoped to descriptors this
// package actually sends on.
func rawSend(fd int, p []byte) (n int, err error) {
	if err = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_NOSIGPIPE, 1); err != nil {
		return 0, err
	}
	return unix.SendmsgN(fd, p, nil, nil, 0)
}
