//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config holds the editor's small set of runtime knobs,
// populated from CLI flags.
package config

import "flag"

// Config is the process-wide configuration the main loop builds once
// at startup.
type Config struct {
	// InitialFile is the optional positional filename argument.
	InitialFile string
	// Debug enables a verbose log line for every parsed input event.
	Debug bool
	// ScrollAmount is the count last given to Ctrl-D/Ctrl-U; 0 means
	// "use view_rows/2".
	ScrollAmount int
}

// Parse builds a Config from args (normally os.Args[1:]).
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("vige", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "log every parsed event to the log file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{Debug: *debug}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.InitialFile = rest[0]
	}
	return cfg, nil
}
