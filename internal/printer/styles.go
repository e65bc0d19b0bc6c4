// Copyright 2025 Florian Zenker (flo@znkr.io)
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


package printer

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
	"znkr.io/outdiff/internal/config"
)

// role is the semantic role of a piece of output.
type role int

const (
	plain role = iota
	removed
	added
	changed
	warning
	numRoles
)

type styles struct {
	profile termenv.Profile
	colors  [numRoles]termenv.Color
}

func newStyles(w io.Writer, cfg config.Config) *styles {
	var opts []termenv.OutputOption
	switch cfg.Color {
	case config.ColorAuto:
		// termenv inspects w and the environment (NO_COLOR, CLICOLOR_FORCE, TERM).
	case config.ColorAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI))
	case config.ColorNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	default:
		panic("never reached")
	}
	profile := termenv.NewOutput(w, opts...).Profile

	s := &styles{profile: profile}
	s.colors[removed] = profile.Color(cfg.Colors.Delete)
	s.colors[added] = profile.Color(cfg.Colors.Insert)
	s.colors[changed] = profile.Color(cfg.Colors.Change)
	s.colors[warning] = profile.Color(cfg.Colors.Warning)
	return s
}

func (s *styles) paint(r role, text string) string {
	if r == plain || text == "" {
		return text
	}
	return s.profile.String(text).Foreground(s.colors[r]).String()
}

// builder assembles a line from pieces of text. Adjacent pieces with the same role are painted
// as one.
type builder struct {
	styles *styles
	buf    strings.Builder
	role   role
	run    strings.Builder
}

func (b *builder) add(r role, text string) {
	if r != b.role {
		b.flush()
		b.role = r
	}
	b.run.WriteString(text)
}

func (b *builder) flush() {
	b.buf.WriteString(b.styles.paint(b.role, b.run.String()))
	b.run.Reset()
}

func (b *builder) String() string {
	b.flush()
	return b.buf.String()
}
