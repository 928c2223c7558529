package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"arcc/build"
	"arcc/logging"
	"arcc/mods"
	"arcc/report"
	"arcc/syntax"

	"github.com/peterh/liner"
)

const (
	replPrompt      = "arc> "
	replContinue    = "...  "
	replHistoryFile = ".arcc_history"
)

// execReplCommand runs an interactive session.  Each entry is compiled along
// with every entry before it and only the IR that the entry adds is printed.
func execReplCommand() {
	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return
	}

	cfg, err := mods.LoadConfig(workDir)
	if err != nil {
		logging.PrintErrorMessage("Project Load Error", err)
		return
	}

	c, err := build.NewCompiler(cfg)
	if err != nil {
		logging.PrintErrorMessage("Cache Error", err)
		return
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, replHistoryFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var session []string
	printed := 0
	for {
		entry, ok := readEntry(ln)
		if !ok {
			fmt.Println()
			return
		}

		if strings.TrimSpace(entry) == "" {
			continue
		}

		if strings.TrimSpace(entry) == ":quit" {
			return
		}

		src := strings.Join(append(session, entry), "\n")
		out, err := c.CompileSource("<repl>", src)
		if err != nil {
			report.Display("<repl>", src, err)
			continue
		}

		session = append(session, entry)
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))

		lines := strings.Split(out.String(), "\n")
		if printed < len(lines) {
			fmt.Println(strings.Join(lines[printed:], "\n"))
		}

		printed = len(lines)
	}
}

// readEntry reads lines until they form a complete entry: one that parses or
// fails to parse before reaching the end of its text.
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := replPrompt
		if b.Len() > 0 {
			prompt = replContinue
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}

		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := syntax.Parse("<repl>", src)

		var se *report.SyntaxError
		if errors.As(perr, &se) && se.AtEOF() {
			continue
		}

		return src, true
	}
}
