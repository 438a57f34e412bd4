package git

import (
	stderrors "errors"

	gogit "github.com/go-git/go-git/v5"

	"github.com/sviosdi/svldoc/internal/foundation/errors"
)

// classifyGitError translates go-git errors into classified errors.
func classifyGitError(err error, op, dir string) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsClassified(err); ok {
		return err
	}

	builder := errors.GitError("git operation failed")
	switch {
	case stderrors.Is(err, gogit.ErrRepositoryNotExists):
		builder = errors.NotFoundError("not a git repository")
	case stderrors.Is(err, gogit.ErrRemoteNotFound):
		builder = errors.NotFoundError("git remote not found")
	}
	return builder.
		WithCause(err).
		WithContext("op", op).
		WithContext("path", dir).
		Build()
}
