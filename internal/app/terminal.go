package app

import (
	"os"

	"golang.org/x/term"
)

// Terminals records which standard descriptors are attached to a terminal.
// Run uses it to decide where options and keys come from; main logs it.
type Terminals struct {
	Size    *TerminalSize `json:"size,omitempty"`
	Streams []StreamProbe `json:"streams"`
}

// TerminalSize is the first size any stream reported.
type TerminalSize struct {
	Stream string `json:"stream"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type StreamProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ProbeTerminals inspects stdin, stdout and stderr.
func ProbeTerminals() Terminals {
	return probeStreams([]*os.File{os.Stdin, os.Stdout, os.Stderr}, []string{"stdin", "stdout", "stderr"})
}

func probeStreams(files []*os.File, names []string) Terminals {
	var out Terminals
	for i, f := range files {
		probe := StreamProbe{Name: names[i]}
		fd := int(f.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			probe.Terminal = true
			width, height, err := term.GetSize(fd)
			if err != nil {
				probe.Error = err.Error()
			} else {
				probe.Width, probe.Height = width, height
				if out.Size == nil {
					out.Size = &TerminalSize{Stream: probe.Name, Width: width, Height: height}
				}
			}
		}
		out.Streams = append(out.Streams, probe)
	}
	return out
}

// IsTerminal reports whether the named stream is a terminal.
func (t Terminals) IsTerminal(name string) bool {
	for _, s := range t.Streams {
		if s.Name == name {
			return s.Terminal
		}
	}
	return false
}
