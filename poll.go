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

//go:build darwin || netbsd || freebsd || openbsd || dragonfly || linux
// +build darwin netbsd freebsd openbsd dragonfly linux

package fdio

import "golang.org/x/sys/unix"

// waitReady suspends the caller until fd reports the given poll events,
// with no timeout. The outcome is deliberately ignored: whatever poll
// returns, the caller retries the transfer and lets the syscall itself
// reclassify the descriptor state. This is the only point in the package
// where a call can block on anything other than the transfer syscall.
func waitReady(fd int, events int16) {
	pfds := []unix.PollFd{{Fd: int32(fd), Events: events}}
	_, _ = sysPoll(pfds, -1)
}
