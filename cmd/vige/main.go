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

// Command vige is a modal, vi-family terminal text editor.
package main

import (
	"log"
	"os"

	"github.com/arnvald/vige/internal/config"
	"github.com/arnvald/vige/internal/editor"
	"github.com/arnvald/vige/internal/term"
)

func main() {
	// Route log output to a file since stdout/stderr are the terminal
	// the editor itself is drawing into.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.vigelog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Println(err)
		return
	}
	log.SetOutput(f)
	defer f.Close()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Println(err)
		return
	}

	driver := term.NewDriver()
	if err := driver.Enable(); err != nil {
		log.Println(err)
		return
	}
	defer driver.Restore()

	cols, rows := driver.Size()
	renderer := term.NewRenderer(os.Stdout, cols, rows)
	renderer.ClearScreen()
	defer renderer.ShowCursor()

	e, err := editor.New(cfg, cols, rows)
	if err != nil {
		log.Println(err)
		return
	}

	for {
		cursorX, cursorY := e.Render(renderer)
		if err := renderer.Flush(cursorX, cursorY); err != nil {
			log.Println(err)
			return
		}

		b, err := driver.ReadByte()
		if err != nil {
			log.Println(err)
			return
		}
		if cfg.Debug {
			log.Printf("byte=%q mode=%v", b, e.Parser.Mode)
		}
		if e.HandleByte(b) {
			return
		}
	}
}
