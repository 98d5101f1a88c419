package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/exprc/exprc/usecases"
)

const (
	historyFile = ".exprc_history"
	promptMain  = "==> "
)

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

// runRepl reads expressions line by line and prints the emitted code followed
// by the value. Errors are reported and the loop continues with the next
// expression; Ctrl+D or :quit exits.
func runRepl(ctx context.Context, u usecases.Usecases) {
	fmt.Println("exprc REPL. Ctrl+D exits. Type :quit to exit.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(historyPath()); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath()); err == nil {
			_, _ = ln.WriteHistory(f)
			f.Close()
		}
	}()

	compilerUsecase := u.NewCompilerUsecase()

	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			// liner.ErrPromptAborted on Ctrl+C, io.EOF on Ctrl+D.
			if err == liner.ErrPromptAborted {
				continue
			}
			fmt.Println()
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			return
		}
		ln.AppendHistory(line)

		result, err := compilerUsecase.Compile(ctx, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if len(result.Code) > 0 {
			fmt.Println(result.Code.String())
		}
		fmt.Println(result.Value)
	}
}
