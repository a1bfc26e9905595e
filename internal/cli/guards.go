package cli

import (
	"fmt"
	"os"
	"regexp"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// versionPattern accepts at least a two-component dotted numeric
// version. It is anchored at the start only; a partial-start match
// such as "1.2b" is accepted.
var versionPattern = regexp.MustCompile(`^\d+(?:\.\d+)+`)

// ValidateNewOutputPath rejects an output path that already names an
// existing regular file. Directories pass; the path comes back
// unchanged otherwise. Only an existence check, no mutation.
func ValidateNewOutputPath(path Path) (Path, error) {
	info, err := os.Stat(path.String())
	if err == nil && info.Mode().IsRegular() {
		return Path{}, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("File %q already exists.", path))
	}
	return path, nil
}

// ValidateVersionString rejects a value that does not look like a
// dotted numeric version. The rejected value itself is the message, as
// the argument parser renders it to the user. An empty value gets a
// descriptive message instead: the error type rewrites an empty
// message to an internal error.
func ValidateVersionString(value string) (string, error) {
	if !versionPattern.MatchString(value) {
		message := value
		if message == "" {
			message = "version must not be empty"
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(message)
	}
	return value, nil
}
