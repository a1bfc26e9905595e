package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Path is a structured filesystem path parsed from a raw CLI string.
// Construction is a representation change only: the raw argument keeps
// its meaning, it just stops being a bare string.
type Path struct {
	Raw   string
	Clean string
}

func (p Path) String() string {
	return p.Clean
}

// PathConstraints declares what a path argument must point at. The
// zero value accepts any path, existing or not.
type PathConstraints struct {
	Exists    bool
	AllowFile bool
	AllowDir  bool
}

// CheckPath validates a raw path string against the declared
// constraints without constructing anything.
func CheckPath(raw string, constraints PathConstraints) error {
	if strings.TrimSpace(raw) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("path is empty")
	}
	info, err := os.Stat(raw)
	if err != nil {
		if os.IsNotExist(err) {
			if constraints.Exists {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("Path %q does not exist.", raw))
			}
			return nil
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat path").
			WithCause(err)
	}
	if constraints.AllowFile || constraints.AllowDir {
		if info.IsDir() && !constraints.AllowDir {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("Path %q is a directory.", raw))
		}
		if !info.IsDir() && !constraints.AllowFile {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("Path %q is a file.", raw))
		}
	}
	return nil
}

// NewPath runs the constraint checks and then constructs the
// structured path value. It fails with exactly the error the checks
// raise.
func NewPath(raw string, constraints PathConstraints) (Path, error) {
	if err := CheckPath(raw, constraints); err != nil {
		return Path{}, err
	}
	return Path{Raw: raw, Clean: filepath.Clean(raw)}, nil
}
