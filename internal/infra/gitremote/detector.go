// Package gitremote infers the source repository from a local git checkout.
package gitremote

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/runoshun/issue-import/internal/domain"
)

// RemoteName is the remote consulted for the repository.
const RemoteName = "origin"

// Ensure Detector implements domain.RepoDetector.
var _ domain.RepoDetector = (*Detector)(nil)

// Detector reads the origin remote of the repository containing a directory.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectRepo returns "owner/repo" of the origin remote of the repository
// containing dir. It returns "" with no error when dir is not inside a git
// repository or the repository has no origin remote.
func (d *Detector) DetectRepo(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("open repository at %s: %w", dir, err)
	}

	remote, err := repo.Remote(RemoteName)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s remote: %w", RemoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return RepoFromURL(urls[0])
}

// RepoFromURL extracts "owner/repo" from a remote URL. Supported forms:
//
//	https://github.com/owner/repo.git
//	ssh://git@github.com/owner/repo.git
//	git@github.com:owner/repo.git
func RepoFromURL(raw string) (string, error) {
	ep, err := transport.NewEndpoint(raw)
	if err != nil {
		return "", fmt.Errorf("%w: remote URL %q: %w", domain.ErrInvalidRepo, raw, err)
	}
	if ep.Protocol == "file" {
		return "", fmt.Errorf("%w: local remote %q has no owner", domain.ErrInvalidRepo, raw)
	}

	path := strings.TrimSuffix(strings.Trim(ep.Path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", fmt.Errorf("%w: remote URL %q has no owner/repo path", domain.ErrInvalidRepo, raw)
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1], nil
}
