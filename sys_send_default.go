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

//go:build netbsd || freebsd || openbsd || dragonfly || linux
// +build netbsd freebsd openbsd dragonfly linux

package fdio

import "golang.org/x/sys/unix"

// rawSend transfers p over a connected socket without raising SIGPIPE.
// MSG_NOSIGNAL converts a closed peer into an EPIPE return at this call
// site only, leaving process-wide signal disposition alone.
func rawSend(fd int, p []byte) (n int, err error) {
	return unix.SendmsgN(fd, p, nil, nil, unix.MSG_NOSIGNAL)
}
