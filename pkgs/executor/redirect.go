package executor

import (
	"os"
	"os/exec"

	"github.com/flucium/fsh/pkgs/ast"
	"github.com/flucium/fsh/pkgs/errors"
	"github.com/flucium/fsh/pkgs/vars"
)

// applyRedirects wires each of cmd's redirects onto the about-to-spawn
// exec.Cmd. Both '>' and '<' are applied identically — the target file is
// opened read/write/create and installed at the left-hand fd slot; only the
// fd numbers the user chose convey intended direction. This mirrors the
// original pre_exec closure in exec.rs, which calls the same dup2(right,
// left) regardless of RedirectOperator; Go has no pre_exec equivalent for
// exec.Cmd, so the dup2 is emulated here, before Start, by directly
// assigning the opened *os.File to the child's fd slot.
func applyRedirects(cmd *exec.Cmd, redirects []ast.Redirect, store *vars.Store) error {
	for _, r := range redirects {
		file, err := openRedirectTarget(cmd, r, store)
		if err != nil {
			return err
		}
		if err := assignFD(cmd, r.Left.FD, file); err != nil {
			return err
		}
	}
	return nil
}

// openRedirectTarget resolves a redirect's right-hand side to the *os.File
// that should occupy its left-hand fd slot. A FileDescriptor right-hand
// side reuses whatever file already occupies that fd slot (e.g. "redirect
// fd 2 to wherever fd 1 currently points"); any other expression is opened
// as a path.
func openRedirectTarget(cmd *exec.Cmd, r ast.Redirect, store *vars.Store) (*os.File, error) {
	if fd, ok := r.Right.(ast.FileDescriptor); ok {
		file := fdSlot(cmd, fd.FD)
		if file == nil {
			return nil, errors.Newf(errors.InvalidInput, "redirect: fd %d has no open file to alias", fd.FD)
		}
		return file, nil
	}

	path, err := resolveRedirectTarget(r.Right, store)
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, errors.Wrap(errors.NotFound, "redirect: cannot open "+path, err)
	}
	return file, nil
}

// assignFD installs file at fd's slot on cmd: 0/1/2 map to Stdin/Stdout/
// Stderr, anything higher lands in ExtraFiles (fd 3 is ExtraFiles[0], fd 4
// is ExtraFiles[1], and so on — the standard os/exec convention).
func assignFD(cmd *exec.Cmd, fd int, file *os.File) error {
	switch fd {
	case 0:
		cmd.Stdin = file
	case 1:
		cmd.Stdout = file
	case 2:
		cmd.Stderr = file
	default:
		idx := fd - 3
		if idx < 0 {
			return errors.Newf(errors.InvalidInput, "redirect: invalid file descriptor %d", fd)
		}
		for len(cmd.ExtraFiles) <= idx {
			cmd.ExtraFiles = append(cmd.ExtraFiles, nil)
		}
		cmd.ExtraFiles[idx] = file
	}
	return nil
}

// fdSlot returns whatever *os.File currently occupies fd's slot on cmd, or
// nil if none has been assigned yet.
func fdSlot(cmd *exec.Cmd, fd int) *os.File {
	switch fd {
	case 0:
		f, _ := cmd.Stdin.(*os.File)
		return f
	case 1:
		f, _ := cmd.Stdout.(*os.File)
		return f
	case 2:
		f, _ := cmd.Stderr.(*os.File)
		return f
	default:
		idx := fd - 3
		if idx < 0 || idx >= len(cmd.ExtraFiles) {
			return nil
		}
		return cmd.ExtraFiles[idx]
	}
}
