package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/cadet/config"
)

const (
	historyFile = ".cadet_history"
	prompt      = "cadet> "
)

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// evalLine handles one REPL line. Lines starting with ':' change the
// settings for the rest of the session.
func evalLine(s *config.Settings, line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		fields := strings.Fields(line[1:])
		if len(fields) != 2 {
			return "usage: :mode <expression|type|argument> or :format <canonical|repr>"
		}
		next := *s
		switch fields[0] {
		case "mode":
			next.Mode = fields[1]
		case "format":
			next.Format = fields[1]
		default:
			return fmt.Sprintf("unknown command :%s", fields[0])
		}
		if err := next.Validate(); err != nil {
			return "error: " + message(err)
		}
		*s = next
		return fmt.Sprintf("%s set to %s", fields[0], fields[1])
	}

	n, err := parseSource(s.Mode, []byte(line))
	if err != nil {
		return "error: " + message(err)
	}
	return render(n, s.Format)
}

type historyReader interface {
	ReadHistory(r io.Reader) (int, error)
}

// readHistory loads saved lines; a damaged file only costs the history.
func readHistory(h historyReader, r io.Reader) int {
	n, err := h.ReadHistory(r)
	if err != nil {
		plog.Warningf("could not read history: %v", err)
	}
	return n
}

func runRepl(s config.Settings, out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath()
	if f, err := os.Open(hist); err == nil {
		readHistory(ln, f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			break
		}
		if err != nil {
			return tracerr.Wrap(err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		ln.AppendHistory(line)
		fmt.Fprintln(out, evalLine(&s, line))
	}

	if hist == "" {
		return nil
	}
	f, err := os.Create(hist)
	if err != nil {
		plog.Warningf("could not save history: %v", err)
		return nil
	}
	defer f.Close()
	_, err = ln.WriteHistory(f)
	return tracerr.Wrap(err)
}
