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

// fdcat relays stdin to stdout through the fdio transfer primitives. It
// exists mostly as a working reference for how the library is consumed:
// best-effort reads on the source, full writes on the sink.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/fdlib/fdio"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type Params struct {
	ChunkSizeBytes boa.Required[int]  `descr:"Read chunk size in bytes" default:"65536"`
	Quiet          boa.Optional[bool] `descr:"Suppress the transfer summary"`
}

func (p *Params) WithValidation() *Params {
	p.ChunkSizeBytes.CustomValidator = func(i int) error {
		if i <= 0 {
			return fmt.Errorf("chunk size must be greater than 0")
		}
		return nil
	}
	return p
}

func main() {
	params := new(Params).WithValidation()
	cmd := boa.Wrap{
		Use:    "fdcat",
		Short:  "relay stdin to stdout through transacted descriptor transfers",
		Params: params,
		ParamEnrich: boa.ParamEnricherCombine(
			boa.ParamEnricherName,
			boa.ParamEnricherShort,
			boa.ParamEnricherBool,
		),
		Run: func(cmd *cobra.Command, args []string) {
			logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

			// The library clamps per call anyway; this just keeps the
			// relay buffer within a sane range.
			buf := make([]byte, lo.Clamp(params.ChunkSizeBytes.Value(), 1, 1<<20))

			var total int64
			start := time.Now()
			for {
				n, err := fdio.Read(int(os.Stdin.Fd()), buf)
				if err != nil {
					logger.Fatal().Err(err).Msg("read failed")
				}
				if n == 0 {
					break
				}
				if _, err := fdio.WriteFull(int(os.Stdout.Fd()), buf[:n]); err != nil {
					logger.Fatal().Err(err).Msg("write failed")
				}
				total += int64(n)
			}

			quiet := params.Quiet.HasValue() && *params.Quiet.Value()
			if !quiet {
				logger.Info().
					Int64("bytes", total).
					Dur("elapsed", time.Since(start)).
					Msg("transfer complete")
			}
		},
	}.ToCmd()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
