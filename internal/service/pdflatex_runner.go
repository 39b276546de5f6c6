package service

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// pdflatexRunner shells out to a local pdflatex binary.
type pdflatexRunner struct {
	bin string
}

func NewPdflatexRunner(bin string) CompilerRunner {
	if bin == "" {
		bin = "pdflatex"
	}
	return &pdflatexRunner{bin: bin}
}

func (r *pdflatexRunner) CheckAvailable(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, r.bin, "--version").Output()
	if err != nil {
		return fmt.Errorf("%s not reachable: %w", r.bin, err)
	}
	if !strings.Contains(string(out), "pdfTeX") {
		return fmt.Errorf("%s does not look like a pdfTeX binary", r.bin)
	}
	return nil
}

func (r *pdflatexRunner) Compile(ctx context.Context, workDir, texFile string) (string, error) {
	cmd := exec.CommandContext(ctx, r.bin, "-interaction=nonstopmode", texFile)
	cmd.Dir = workDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("pdflatex failed: %w", err)
	}
	return string(out), nil
}
