package code_analyzer

import (
	"context"
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// CleanupFunc releases any temporary resources owned by a source
// acquisition. It is safe to call on every exit path, including
// cancellation; for local sources it is a no-op.
type CleanupFunc func()

// AcquireSource resolves the request's source to a local root directory.
// Remote sources are cloned into a fresh temporary directory which the
// returned cleanup function removes. Local sources are returned verbatim
// and not owned by the caller.
//
// The exactly-one-source contract is checked before any I/O occurs;
// violations return ErrInvalidRequest.
func AcquireSource(ctx context.Context, request models.AnalysisRequest, githubToken string) (string, CleanupFunc, error) {
	hasRemote := request.RepoURL != ""
	hasLocal := request.LocalPath != ""
	if hasRemote == hasLocal {
		return "", nil, ErrInvalidRequest
	}

	if hasLocal {
		return request.LocalPath, func() {}, nil
	}

	tempDir, err := os.MkdirTemp("", "codetutor-clone-")
	if err != nil {
		return "", nil, &AcquisitionError{Source: request.RepoURL, Err: fmt.Errorf("failed to create temporary directory: %w", err)}
	}
	cleanup := func() {
		_ = os.RemoveAll(tempDir)
	}

	cloneURL := request.RepoURL
	if githubToken != "" {
		cloneURL = strings.Replace(cloneURL, "https://github.com/", fmt.Sprintf("https://%s@github.com/", githubToken), 1)
	}

	if _, err := git.PlainCloneContext(ctx, tempDir, false, &git.CloneOptions{URL: cloneURL}); err != nil {
		cleanup()
		return "", nil, &AcquisitionError{Source: request.RepoURL, Err: err}
	}

	return tempDir, cleanup, nil
}
