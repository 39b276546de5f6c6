package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tdnghia/jobportal/internal/apperror"
	"github.com/tdnghia/jobportal/internal/dto"
	"github.com/tdnghia/jobportal/internal/latex"
)

// CompilerRunner invokes the external typesetting compiler. It is an
// interface so the pipeline can be exercised without a TeX installation.
type CompilerRunner interface {
	// CheckAvailable verifies the compiler binary is installed and usable.
	CheckAvailable(ctx context.Context) error
	// Compile runs one compiler pass over texFile inside workDir and
	// returns the combined compiler output.
	Compile(ctx context.Context, workDir, texFile string) (string, error)
}

// RenderedResume is the finished artifact handed back to the HTTP layer.
type RenderedResume struct {
	Filename string
	PDF      []byte
}

type ResumeService interface {
	GenerateResume(ctx context.Context, payload dto.ResumePayload) (*RenderedResume, error)
}

type resumeService struct {
	runner  CompilerRunner
	timeout time.Duration
}

func NewResumeService(runner CompilerRunner, timeout time.Duration) ResumeService {
	return &resumeService{runner: runner, timeout: timeout}
}

// GenerateResume runs the full pipeline: validate, pre-check the compiler,
// escape and assemble the document, compile it twice in a request-private
// working directory, and return the PDF. The working directory is removed on
// every exit path before the result or error is surfaced.
func (s *resumeService) GenerateResume(ctx context.Context, payload dto.ResumePayload) (*RenderedResume, error) {
	fullName := strings.TrimSpace(payload.PersonalInfo.FullName)
	if fullName == "" {
		return nil, apperror.Validation("full name is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Availability is checked before any file I/O.
	if err := s.runner.CheckAvailable(ctx); err != nil {
		log.Error().Err(err).Msg("GenerateResume: typesetting compiler unavailable")
		return nil, apperror.Unavailable("resume generation is temporarily unavailable")
	}

	workDir := filepath.Join(os.TempDir(), "resume-"+uuid.NewString())
	if err := os.Mkdir(workDir, 0o700); err != nil {
		log.Error().Err(err).Str("workDir", workDir).Msg("GenerateResume: failed to create working directory")
		return nil, apperror.Internal("failed to generate resume", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			log.Error().Err(err).Str("workDir", workDir).Msg("GenerateResume: failed to clean up working directory")
		}
	}()

	document := latex.BuildResume(payload)
	texFile := filepath.Join(workDir, "resume.tex")
	if err := os.WriteFile(texFile, []byte(document), 0o600); err != nil {
		log.Error().Err(err).Str("texFile", texFile).Msg("GenerateResume: failed to write document")
		return nil, apperror.Internal("failed to generate resume", err)
	}

	// Two sequential passes; the second resolves layout and cross-references
	// the first could not finalize. Warnings are logged, not fatal.
	for pass := 1; pass <= 2; pass++ {
		output, err := s.runner.Compile(ctx, workDir, "resume.tex")
		if err != nil {
			log.Error().Err(err).Int("pass", pass).Str("output", output).Msg("GenerateResume: compilation failed")
			return nil, apperror.Internal("failed to compile resume document", err)
		}
		if output != "" {
			log.Debug().Int("pass", pass).Str("output", output).Msg("GenerateResume: compiler output")
		}
	}

	pdf, err := os.ReadFile(filepath.Join(workDir, "resume.pdf"))
	if err != nil {
		log.Error().Err(err).Str("workDir", workDir).Msg("GenerateResume: compiled PDF missing")
		return nil, apperror.Internal("failed to generate resume", err)
	}

	return &RenderedResume{
		Filename: resumeFilename(fullName),
		PDF:      pdf,
	}, nil
}

// resumeFilename collapses whitespace in the candidate's name to underscores.
func resumeFilename(fullName string) string {
	return strings.Join(strings.Fields(fullName), "_") + "_resume.pdf"
}
